package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/estate_commission/internal/apperrors"
	"github.com/SscSPs/estate_commission/internal/core/domain"
	portsrepo "github.com/SscSPs/estate_commission/internal/core/ports/repositories"
	"github.com/SscSPs/estate_commission/internal/models"
	"github.com/SscSPs/estate_commission/internal/utils/mapping"
)

const companyDefaultPropertyID = ""

type PgxCommissionSettingsRepository struct {
	BaseRepository
}

func newPgxCommissionSettingsRepository(pool *pgxpool.Pool) portsrepo.CommissionSettingsRepositoryFacade {
	return &PgxCommissionSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CommissionSettingsRepositoryFacade = (*PgxCommissionSettingsRepository)(nil)

func (r *PgxCommissionSettingsRepository) FindCompanySettings(ctx context.Context, companyID string) (*domain.CommissionSettings, error) {
	return r.find(ctx, companyID, companyDefaultPropertyID)
}

func (r *PgxCommissionSettingsRepository) FindPropertySettings(ctx context.Context, companyID, propertyID string) (*domain.CommissionSettings, error) {
	if propertyID == companyDefaultPropertyID {
		return nil, apperrors.ErrNotFound
	}
	return r.find(ctx, companyID, propertyID)
}

func (r *PgxCommissionSettingsRepository) find(ctx context.Context, companyID, propertyID string) (*domain.CommissionSettings, error) {
	query := `
		SELECT company_id, property_id, commission_percent, prea_percent_of_commission,
		       agency_percent_remaining, vat_rate_on_commission,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM commission_settings
		WHERE company_id = $1 AND property_id = $2;`

	var m models.CommissionSettings
	err := r.Pool.QueryRow(ctx, query, companyID, propertyID).Scan(
		&m.CompanyID,
		&m.PropertyID,
		&m.CommissionPercent,
		&m.PREAPercentOfCommission,
		&m.AgencyPercentRemaining,
		&m.VATRateOnCommission,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find commission settings for company "+companyID, err)
	}

	settings := mapping.ToDomainCommissionSettings(m)
	return &settings, nil
}

// UpsertSettings replaces the percentages and keeps the original creation audit columns.
func (r *PgxCommissionSettingsRepository) UpsertSettings(ctx context.Context, settings domain.CommissionSettings) error {
	m := mapping.ToModelCommissionSettings(settings)
	query := `
		INSERT INTO commission_settings (
			company_id, property_id, commission_percent, prea_percent_of_commission,
			agency_percent_remaining, vat_rate_on_commission,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, property_id) DO UPDATE SET
			commission_percent         = EXCLUDED.commission_percent,
			prea_percent_of_commission = EXCLUDED.prea_percent_of_commission,
			agency_percent_remaining   = EXCLUDED.agency_percent_remaining,
			vat_rate_on_commission     = EXCLUDED.vat_rate_on_commission,
			last_updated_at            = EXCLUDED.last_updated_at,
			last_updated_by            = EXCLUDED.last_updated_by;`

	_, err := r.Pool.Exec(ctx, query, settingsArgs(m)...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert commission settings for company "+m.CompanyID, err)
	}
	return nil
}

// InsertCompanySettingsIfAbsent leaves an existing company default untouched.
func (r *PgxCommissionSettingsRepository) InsertCompanySettingsIfAbsent(ctx context.Context, settings domain.CommissionSettings) (bool, error) {
	m := mapping.ToModelCommissionSettings(settings)
	m.PropertyID = companyDefaultPropertyID
	query := `
		INSERT INTO commission_settings (
			company_id, property_id, commission_percent, prea_percent_of_commission,
			agency_percent_remaining, vat_rate_on_commission,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, property_id) DO NOTHING;`

	tag, err := r.Pool.Exec(ctx, query, settingsArgs(m)...)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to seed commission settings for company "+m.CompanyID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func settingsArgs(m models.CommissionSettings) []any {
	return []any{
		m.CompanyID,
		m.PropertyID,
		m.CommissionPercent,
		m.PREAPercentOfCommission,
		m.AgencyPercentRemaining,
		m.VATRateOnCommission,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}
