package mapping

import (
	"github.com/SscSPs/estate_commission/internal/core/domain"
	"github.com/SscSPs/estate_commission/internal/models"
)

// ToModelPayment flattens a domain Payment into a payments row.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		CompanyID:      d.CompanyID,
		PropertyID:     d.PropertyID,
		AgentID:        d.AgentID,
		SaleContractID: d.SaleContractID,
		TotalSalePrice: d.TotalSalePrice,
		Kind:           string(d.Kind),
		Mode:           string(d.Input.Mode),
		PaymentDate:    d.PaymentDate,
		CurrencyCode:   d.Input.Currency,
		VATIncluded:    d.Input.VATIncluded,
		VATRatePercent: d.Input.VATRatePercent,

		CommissionPercent:       d.Input.Config.CommissionPercent,
		PREAPercentOfCommission: d.Input.Config.PREAPercentOfCommission,
		AgencyPercentRemaining:  d.Input.Config.AgencyPercentRemaining,
		VATRateOnCommission:     d.Input.Config.VATRateOnCommission,

		GrossAmount:     d.Allocation.GrossAmount,
		TaxableBase:     d.Allocation.TaxableBase,
		VATAmount:       d.Allocation.VATAmount,
		TotalCommission: d.Allocation.TotalCommission,
		RegulatoryFee:   d.Allocation.RegulatoryFee,
		AgencyShare:     d.Allocation.AgencyShare,
		AgentShare:      d.Allocation.AgentShare,
		VATOnCommission: d.Allocation.VATOnCommission,
		OwnerAmount:     d.Allocation.OwnerAmount,

		Status:             string(d.Status),
		OriginalPaymentID:  d.OriginalPaymentID,
		ReversingPaymentID: d.ReversingPaymentID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment rebuilds a domain Payment from a payments row.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:      m.PaymentID,
		CompanyID:      m.CompanyID,
		PropertyID:     m.PropertyID,
		AgentID:        m.AgentID,
		SaleContractID: m.SaleContractID,
		TotalSalePrice: m.TotalSalePrice,
		Kind:           domain.PaymentKind(m.Kind),
		PaymentDate:    m.PaymentDate,
		Input: domain.PaymentInput{
			GrossAmount:    m.GrossAmount,
			Currency:       m.CurrencyCode,
			VATIncluded:    m.VATIncluded,
			VATRatePercent: m.VATRatePercent,
			Mode:           domain.SaleMode(m.Mode),
			Config: domain.CommissionConfig{
				CommissionPercent:       m.CommissionPercent,
				PREAPercentOfCommission: m.PREAPercentOfCommission,
				AgencyPercentRemaining:  m.AgencyPercentRemaining,
				VATRateOnCommission:     m.VATRateOnCommission,
			},
		},
		Allocation: domain.CommissionAllocation{
			GrossAmount:     m.GrossAmount,
			TaxableBase:     m.TaxableBase,
			VATAmount:       m.VATAmount,
			TotalCommission: m.TotalCommission,
			RegulatoryFee:   m.RegulatoryFee,
			AgencyShare:     m.AgencyShare,
			AgentShare:      m.AgentShare,
			VATOnCommission: m.VATOnCommission,
			OwnerAmount:     m.OwnerAmount,
		},
		Status:             domain.PaymentStatus(m.Status),
		OriginalPaymentID:  m.OriginalPaymentID,
		ReversingPaymentID: m.ReversingPaymentID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of payments rows.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}

// ToDomainPropertyTotals converts a property_totals row.
func ToDomainPropertyTotals(m models.PropertyTotals) domain.PropertyTotals {
	return domain.PropertyTotals{
		PropertyID:      m.PropertyID,
		CompanyID:       m.CompanyID,
		Currency:        m.CurrencyCode,
		TotalCollected:  m.TotalCollected,
		TotalCommission: m.TotalCommission,
		TotalOwnerNet:   m.TotalOwnerNet,
		PaymentCount:    m.PaymentCount,
	}
}
