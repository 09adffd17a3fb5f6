package mapping

import (
	"github.com/SscSPs/estate_commission/internal/core/domain"
	"github.com/SscSPs/estate_commission/internal/models"
)

// ToModelCommissionSettings converts domain settings to a commission_settings row.
func ToModelCommissionSettings(d domain.CommissionSettings) models.CommissionSettings {
	propertyID := ""
	if d.PropertyID != nil {
		propertyID = *d.PropertyID
	}
	return models.CommissionSettings{
		CompanyID:               d.CompanyID,
		PropertyID:              propertyID,
		CommissionPercent:       d.Config.CommissionPercent,
		PREAPercentOfCommission: d.Config.PREAPercentOfCommission,
		AgencyPercentRemaining:  d.Config.AgencyPercentRemaining,
		VATRateOnCommission:     d.Config.VATRateOnCommission,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCommissionSettings converts a commission_settings row to domain settings.
func ToDomainCommissionSettings(m models.CommissionSettings) domain.CommissionSettings {
	var propertyID *string
	if m.PropertyID != "" {
		p := m.PropertyID
		propertyID = &p
	}
	return domain.CommissionSettings{
		CompanyID:  m.CompanyID,
		PropertyID: propertyID,
		Config: domain.CommissionConfig{
			CommissionPercent:       m.CommissionPercent,
			PREAPercentOfCommission: m.PREAPercentOfCommission,
			AgencyPercentRemaining:  m.AgencyPercentRemaining,
			VATRateOnCommission:     m.VATRateOnCommission,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
