package commission

import (
	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// Calculate runs a payment through VAT extraction, commission, the waterfall
// split and the owner net, then validates the result. Configuration problems
// abort before anything is computed.
func Calculate(in domain.PaymentInput) (domain.CommissionAllocation, error) {
	if err := checkInput(in); err != nil {
		return domain.CommissionAllocation{}, err
	}

	taxableBase, vatAmount := ExtractVAT(in.GrossAmount, in.VATIncluded, in.VATRatePercent)

	total, err := ComputeCommission(taxableBase, in.Config.CommissionPercent)
	if err != nil {
		return domain.CommissionAllocation{}, err
	}

	split, err := SplitCommission(total, in.Config.PREAPercentOfCommission, in.Config.AgencyPercentRemaining, in.Config.AgentPercentRemaining())
	if err != nil {
		return domain.CommissionAllocation{}, err
	}

	owner, vatOnCommission := ComputeOwnerAmount(in.GrossAmount, vatAmount, total, in.Config.VATRateOnCommission)

	allocation := domain.CommissionAllocation{
		GrossAmount:     in.GrossAmount,
		TaxableBase:     taxableBase,
		VATAmount:       vatAmount,
		TotalCommission: total,
		RegulatoryFee:   split.RegulatoryFee,
		AgencyShare:     split.AgencyShare,
		AgentShare:      split.AgentShare,
		VATOnCommission: vatOnCommission,
		OwnerAmount:     owner,
	}
	if err := Validate(allocation); err != nil {
		return domain.CommissionAllocation{}, err
	}
	return allocation, nil
}

func checkInput(in domain.PaymentInput) error {
	if in.GrossAmount.IsNegative() {
		return &domain.ConfigurationError{Field: "grossAmount", Value: in.GrossAmount.String(), Reason: "must not be negative"}
	}
	switch in.Mode {
	case "", domain.ModeQuick, domain.ModeInstallment:
	default:
		return &domain.ConfigurationError{Field: "mode", Value: string(in.Mode), Reason: "must be QUICK or INSTALLMENT"}
	}
	return in.Config.Validate()
}
