package commission

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// Split is the waterfall division of a total commission.
type Split struct {
	RegulatoryFee decimal.Decimal
	AgencyShare   decimal.Decimal
	AgentShare    decimal.Decimal
}

// SplitCommission takes the regulatory fee off the top, then divides the
// remainder between agency and agent. agentPercentRemaining is accepted but
// always recomputed as 100 - agencyPercentRemaining, so a stale or
// inconsistent value cannot skew the split.
//
// The fee and remainder are computed at full precision and each share is
// rounded on its own, so the three may differ from the total by a few
// hundredths. Validate tolerates that.
func SplitCommission(totalCommission, preaPercentOfCommission, agencyPercentRemaining, agentPercentRemaining decimal.Decimal) (Split, error) {
	if err := domain.CheckPercent("preaPercentOfCommission", preaPercentOfCommission); err != nil {
		return Split{}, err
	}
	if err := domain.CheckPercent("agencyPercentRemaining", agencyPercentRemaining); err != nil {
		return Split{}, err
	}
	agentPercentRemaining = hundred.Sub(agencyPercentRemaining)

	fee := totalCommission.Mul(preaPercentOfCommission).Div(hundred)
	remainder := floorZero(totalCommission.Sub(fee))

	return Split{
		RegulatoryFee: RoundMoney(fee),
		AgencyShare:   RoundMoney(remainder.Mul(agencyPercentRemaining).Div(hundred)),
		AgentShare:    RoundMoney(remainder.Mul(agentPercentRemaining).Div(hundred)),
	}, nil
}
