package repositories

import (
	"context"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

// CommissionSettingsReader defines read operations for stored commission settings.
type CommissionSettingsReader interface {
	// FindCompanySettings returns the company default. Returns apperrors.ErrNotFound when absent.
	FindCompanySettings(ctx context.Context, companyID string) (*domain.CommissionSettings, error)

	// FindPropertySettings returns a property override. Returns apperrors.ErrNotFound when absent.
	FindPropertySettings(ctx context.Context, companyID, propertyID string) (*domain.CommissionSettings, error)
}

// CommissionSettingsWriter defines write operations for stored commission settings.
type CommissionSettingsWriter interface {
	// UpsertSettings creates or replaces the company default (PropertyID nil) or a property override.
	UpsertSettings(ctx context.Context, settings domain.CommissionSettings) error

	// InsertCompanySettingsIfAbsent stores a company default unless one exists and reports whether it inserted.
	InsertCompanySettingsIfAbsent(ctx context.Context, settings domain.CommissionSettings) (bool, error)
}

// CommissionSettingsRepositoryFacade combines all settings repository interfaces.
type CommissionSettingsRepositoryFacade interface {
	CommissionSettingsReader
	CommissionSettingsWriter
}
