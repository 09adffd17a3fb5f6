package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// CommissionConfigRequest sets the stored percentages for a company or property.
// agentPercentRemaining is optional and must complement agencyPercentRemaining to 100.
type CommissionConfigRequest struct {
	CommissionPercent       decimal.Decimal  `json:"commissionPercent" binding:"percent"`
	PREAPercentOfCommission decimal.Decimal  `json:"preaPercentOfCommission" binding:"percent"`
	AgencyPercentRemaining  decimal.Decimal  `json:"agencyPercentRemaining" binding:"percent"`
	AgentPercentRemaining   *decimal.Decimal `json:"agentPercentRemaining,omitempty" binding:"omitempty,percent"`
	VATRateOnCommission     decimal.Decimal  `json:"vatRateOnCommission" binding:"fraction"`
}

// ToConfig validates the request into a domain config.
func (r CommissionConfigRequest) ToConfig() (domain.CommissionConfig, error) {
	return domain.NewCommissionConfig(r.CommissionPercent, r.PREAPercentOfCommission, r.AgencyPercentRemaining, r.AgentPercentRemaining, r.VATRateOnCommission)
}

// CommissionConfigResponse mirrors domain.CommissionConfig with the derived agent share.
type CommissionConfigResponse struct {
	CommissionPercent       decimal.Decimal `json:"commissionPercent"`
	PREAPercentOfCommission decimal.Decimal `json:"preaPercentOfCommission"`
	AgencyPercentRemaining  decimal.Decimal `json:"agencyPercentRemaining"`
	AgentPercentRemaining   decimal.Decimal `json:"agentPercentRemaining"`
	VATRateOnCommission     decimal.Decimal `json:"vatRateOnCommission"`
}

// ToCommissionConfigResponse converts a domain.CommissionConfig to its response DTO.
func ToCommissionConfigResponse(c domain.CommissionConfig) CommissionConfigResponse {
	return CommissionConfigResponse{
		CommissionPercent:       c.CommissionPercent,
		PREAPercentOfCommission: c.PREAPercentOfCommission,
		AgencyPercentRemaining:  c.AgencyPercentRemaining,
		AgentPercentRemaining:   c.AgentPercentRemaining(),
		VATRateOnCommission:     c.VATRateOnCommission,
	}
}

// CommissionSettingsResponse is a stored settings row.
type CommissionSettingsResponse struct {
	CompanyID     string                   `json:"companyID"`
	PropertyID    *string                  `json:"propertyID,omitempty"`
	Config        CommissionConfigResponse `json:"config"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy string                   `json:"lastUpdatedBy"`
}

// ToCommissionSettingsResponse converts domain.CommissionSettings to its response DTO.
func ToCommissionSettingsResponse(s *domain.CommissionSettings) CommissionSettingsResponse {
	return CommissionSettingsResponse{
		CompanyID:     s.CompanyID,
		PropertyID:    s.PropertyID,
		Config:        ToCommissionConfigResponse(s.Config),
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}
