package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/estate_commission/internal/apperrors"
	"github.com/SscSPs/estate_commission/internal/core/domain"
	portsrepo "github.com/SscSPs/estate_commission/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/dto"
)

// seedUserID is recorded as the author of settings loaded from commission profiles.
const seedUserID = "system"

type commissionSettingsService struct {
	BaseService
	settingsRepo portsrepo.CommissionSettingsRepositoryFacade
	now          func() time.Time
}

// NewCommissionSettingsService creates the service managing stored commission percentages.
func NewCommissionSettingsService(settingsRepo portsrepo.CommissionSettingsRepositoryFacade) portssvc.CommissionSettingsSvcFacade {
	return &commissionSettingsService{
		settingsRepo: settingsRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.CommissionSettingsSvcFacade = (*commissionSettingsService)(nil)

func (s *commissionSettingsService) GetCompanySettings(ctx context.Context, companyID string) (*domain.CommissionSettings, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.FindCompanySettings(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load company commission settings", slog.String("company_id", companyID))
		}
		return nil, err
	}
	return settings, nil
}

func (s *commissionSettingsService) GetPropertySettings(ctx context.Context, companyID, propertyID string) (*domain.CommissionSettings, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.FindPropertySettings(ctx, companyID, propertyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load property commission settings", slog.String("company_id", companyID), slog.String("property_id", propertyID))
		}
		return nil, err
	}
	return settings, nil
}

func (s *commissionSettingsService) UpsertCompanySettings(ctx context.Context, companyID string, req dto.CommissionConfigRequest, userID string) (*domain.CommissionSettings, error) {
	return s.upsert(ctx, companyID, nil, req, userID)
}

func (s *commissionSettingsService) UpsertPropertySettings(ctx context.Context, companyID, propertyID string, req dto.CommissionConfigRequest, userID string) (*domain.CommissionSettings, error) {
	return s.upsert(ctx, companyID, &propertyID, req, userID)
}

func (s *commissionSettingsService) upsert(ctx context.Context, companyID string, propertyID *string, req dto.CommissionConfigRequest, userID string) (*domain.CommissionSettings, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	cfg, err := req.ToConfig()
	if err != nil {
		s.LogInfo(ctx, "Rejected commission settings", slog.String("company_id", companyID), slog.String("error", err.Error()))
		return nil, err
	}

	settings := domain.CommissionSettings{
		CompanyID:   companyID,
		PropertyID:  propertyID,
		Config:      cfg,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.settingsRepo.UpsertSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to store commission settings", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to store commission settings: %w", err)
	}

	s.LogInfo(ctx, "Commission settings updated", slog.String("company_id", companyID), slog.Bool("property_override", propertyID != nil))
	return &settings, nil
}

// ResolveConfig does not authorize; callers have already checked company access.
func (s *commissionSettingsService) ResolveConfig(ctx context.Context, companyID, propertyID string) (domain.CommissionConfig, error) {
	if propertyID != "" {
		override, err := s.settingsRepo.FindPropertySettings(ctx, companyID, propertyID)
		if err == nil {
			return override.Config, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return domain.CommissionConfig{}, err
		}
	}

	defaults, err := s.settingsRepo.FindCompanySettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.CommissionConfig{}, fmt.Errorf("%w: no commission settings for company %s", apperrors.ErrNotFound, companyID)
		}
		return domain.CommissionConfig{}, err
	}
	return defaults.Config, nil
}

func (s *commissionSettingsService) SeedCompanyDefaults(ctx context.Context, defaults []domain.CommissionSettings) (int, error) {
	inserted := 0
	for _, d := range defaults {
		if err := d.Config.Validate(); err != nil {
			return inserted, fmt.Errorf("commission profile for company %s: %w", d.CompanyID, err)
		}
		d.PropertyID = nil
		d.AuditFields = domain.NewAuditFields(seedUserID, s.now())
		ok, err := s.settingsRepo.InsertCompanySettingsIfAbsent(ctx, d)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed commission settings for company %s: %w", d.CompanyID, err)
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}
