package services

import (
	"context"

	"github.com/SscSPs/estate_commission/internal/core/domain"
	"github.com/SscSPs/estate_commission/internal/dto"
)

// CommissionConfigResolver returns the config snapshot that applies to a property.
type CommissionConfigResolver interface {
	// ResolveConfig prefers the property override and falls back to the company default.
	ResolveConfig(ctx context.Context, companyID, propertyID string) (domain.CommissionConfig, error)
}

// CommissionSettingsSvcFacade manages stored commission settings.
type CommissionSettingsSvcFacade interface {
	CommissionConfigResolver

	GetCompanySettings(ctx context.Context, companyID string) (*domain.CommissionSettings, error)
	GetPropertySettings(ctx context.Context, companyID, propertyID string) (*domain.CommissionSettings, error)
	UpsertCompanySettings(ctx context.Context, companyID string, req dto.CommissionConfigRequest, userID string) (*domain.CommissionSettings, error)
	UpsertPropertySettings(ctx context.Context, companyID, propertyID string, req dto.CommissionConfigRequest, userID string) (*domain.CommissionSettings, error)

	// SeedCompanyDefaults stores company defaults that do not exist yet and returns how many were inserted.
	SeedCompanyDefaults(ctx context.Context, defaults []domain.CommissionSettings) (int, error)
}
