package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/estate_commission/internal/apperrors"
	"github.com/SscSPs/estate_commission/internal/core/domain"
	portsrepo "github.com/SscSPs/estate_commission/internal/core/ports/repositories"
	"github.com/SscSPs/estate_commission/internal/models"
	"github.com/SscSPs/estate_commission/internal/utils/mapping"
	"github.com/SscSPs/estate_commission/internal/utils/pagination"
)

const paymentColumns = `
	payment_id, company_id, property_id, agent_id, sale_contract_id, total_sale_price,
	kind, mode, payment_date, currency_code, vat_included, vat_rate_percent,
	commission_percent, prea_percent_of_commission, agency_percent_remaining, vat_rate_on_commission,
	gross_amount, taxable_base, vat_amount, total_commission, regulatory_fee,
	agency_share, agent_share, vat_on_commission, owner_amount,
	status, original_payment_id, reversing_payment_id,
	created_at, created_by, last_updated_at, last_updated_by`

const insertPaymentQuery = `
	INSERT INTO payments (` + paymentColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32);`

// Adds one payment (or, with negated amounts and a count of -1, one reversal) to the running totals.
const upsertPropertyTotalsQuery = `
	INSERT INTO property_totals (company_id, property_id, currency_code, total_collected, total_commission, total_owner_net, payment_count, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (company_id, property_id, currency_code) DO UPDATE SET
		total_collected  = property_totals.total_collected + EXCLUDED.total_collected,
		total_commission = property_totals.total_commission + EXCLUDED.total_commission,
		total_owner_net  = property_totals.total_owner_net + EXCLUDED.total_owner_net,
		payment_count    = property_totals.payment_count + EXCLUDED.payment_count,
		last_updated_at  = EXCLUDED.last_updated_at;`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payments and property totals.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

// SavePayment inserts the payment and adds it to the property running totals in one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	m := mapping.ToModelPayment(payment)

	batch := &pgx.Batch{}
	batch.Queue(insertPaymentQuery, paymentArgs(m)...)
	batch.Queue(upsertPropertyTotalsQuery, totalsArgs(m, 1)...)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "payment "+m.PaymentID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit payment "+m.PaymentID, err)
	}
	return nil
}

// SaveReversal inserts the reversal, flips the original to REVERSED and subtracts it from the totals.
func (r *PgxPaymentRepository) SaveReversal(ctx context.Context, reversal domain.Payment) error {
	if reversal.OriginalPaymentID == nil {
		return apperrors.NewAppError(500, "reversal "+reversal.PaymentID+" has no original payment", apperrors.ErrInternal)
	}
	originalID := *reversal.OriginalPaymentID

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPayment(reversal)

	// The partial unique index on original_payment_id rejects a second reversal.
	if _, err := tx.Exec(ctx, insertPaymentQuery, paymentArgs(m)...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "payment "+originalID+" is already reversed", apperrors.ErrConflict)
		}
		return apperrors.NewAppError(500, "failed to insert reversal "+m.PaymentID, err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE payments
		SET status = 'REVERSED', reversing_payment_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE payment_id = $4 AND company_id = $5 AND status = 'POSTED' AND original_payment_id IS NULL;`,
		m.PaymentID, m.CreatedAt, m.CreatedBy, originalID, m.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark payment "+originalID+" as reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "payment "+originalID+" is not reversible", apperrors.ErrConflict)
	}

	if _, err := tx.Exec(ctx, upsertPropertyTotalsQuery, totalsArgs(m, -1)...); err != nil {
		return apperrors.NewAppError(500, "failed to update property totals for reversal "+m.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit reversal "+m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID within a company.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, companyID, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE company_id = $1 AND payment_id = $2;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, companyID, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPayments retrieves a page of payments newest first using keyset pagination.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, companyID string, filter portsrepo.PaymentFilter, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE company_id = $1`
	args := []any{companyID}

	if filter.PropertyID != "" {
		args = append(args, filter.PropertyID)
		query += ` AND property_id = $` + strconv.Itoa(len(args))
	}
	if filter.AgentID != "" {
		args = append(args, filter.AgentID)
		query += ` AND agent_id = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, decodeErr))
		}
		n := len(args)
		query += ` AND (payment_date, created_at, payment_id) < ($` + strconv.Itoa(n+1) + `, $` + strconv.Itoa(n+2) + `, $` + strconv.Itoa(n+3) + `)`
		args = append(args, cursor.PaymentDate, cursor.CreatedAt, cursor.PaymentID)
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY payment_date DESC, created_at DESC, payment_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payments for company "+companyID, err)
	}
	defer rows.Close()

	modelPayments := make([]models.Payment, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan payment row for company "+companyID, scanErr)
		}
		modelPayments = append(modelPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating payment rows for company "+companyID, err)
	}

	var nextTokenVal *string
	results := modelPayments
	if len(modelPayments) > limit {
		last := modelPayments[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			PaymentDate: last.PaymentDate,
			CreatedAt:   last.CreatedAt,
			PaymentID:   last.PaymentID,
		})
		nextTokenVal = &token
		results = modelPayments[:limit]
	}

	return mapping.ToDomainPaymentSlice(results), nextTokenVal, nil
}

// ListPaymentsBySaleContract returns every payment recorded against a sale contract, oldest first.
func (r *PgxPaymentRepository) ListPaymentsBySaleContract(ctx context.Context, companyID, saleContractID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE company_id = $1 AND sale_contract_id = $2
		ORDER BY payment_date, created_at;`

	rows, err := r.Pool.Query(ctx, query, companyID, saleContractID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for sale contract "+saleContractID, err)
	}
	defer rows.Close()

	modelPayments := []models.Payment{}
	for rows.Next() {
		m, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row for sale contract "+saleContractID, scanErr)
		}
		modelPayments = append(modelPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows for sale contract "+saleContractID, err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// ListAllocationRecords returns every allocation in the period, reversals included.
func (r *PgxPaymentRepository) ListAllocationRecords(ctx context.Context, companyID string, period domain.Period) ([]domain.AllocationRecord, error) {
	query := `
		SELECT payment_id, company_id, property_id, agent_id, currency_code, payment_date,
		       gross_amount, taxable_base, vat_amount, total_commission, regulatory_fee,
		       agency_share, agent_share, vat_on_commission, owner_amount
		FROM payments
		WHERE company_id = $1
		  AND ($2::date IS NULL OR payment_date >= $2::date)
		  AND ($3::date IS NULL OR payment_date <= $3::date)
		ORDER BY payment_date, created_at, payment_id;`

	rows, err := r.Pool.Query(ctx, query, companyID, nullableDate(period.From), nullableDate(period.To))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query allocation records for company "+companyID, err)
	}
	defer rows.Close()

	records := []domain.AllocationRecord{}
	for rows.Next() {
		var rec domain.AllocationRecord
		a := &rec.Allocation
		if err := rows.Scan(
			&rec.PaymentID, &rec.CompanyID, &rec.PropertyID, &rec.AgentID, &rec.Currency, &rec.PaymentDate,
			&a.GrossAmount, &a.TaxableBase, &a.VATAmount, &a.TotalCommission, &a.RegulatoryFee,
			&a.AgencyShare, &a.AgentShare, &a.VATOnCommission, &a.OwnerAmount,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan allocation record for company "+companyID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating allocation records for company "+companyID, err)
	}
	return records, nil
}

// FindPropertyTotals returns the running totals of a property, one row per currency.
func (r *PgxPaymentRepository) FindPropertyTotals(ctx context.Context, companyID, propertyID string) ([]domain.PropertyTotals, error) {
	query := `
		SELECT company_id, property_id, currency_code, total_collected, total_commission, total_owner_net, payment_count, last_updated_at
		FROM property_totals
		WHERE company_id = $1 AND property_id = $2
		ORDER BY currency_code;`

	rows, err := r.Pool.Query(ctx, query, companyID, propertyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query totals for property "+propertyID, err)
	}
	defer rows.Close()

	totals := []domain.PropertyTotals{}
	for rows.Next() {
		var m models.PropertyTotals
		if err := rows.Scan(
			&m.CompanyID, &m.PropertyID, &m.CurrencyCode,
			&m.TotalCollected, &m.TotalCommission, &m.TotalOwnerNet,
			&m.PaymentCount, &m.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan totals row for property "+propertyID, err)
		}
		totals = append(totals, mapping.ToDomainPropertyTotals(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating totals rows for property "+propertyID, err)
	}
	return totals, nil
}

func scanPayment(row rowScanner) (models.Payment, error) {
	var m models.Payment
	var saleContractID, originalID, reversingID sql.NullString
	var totalSalePrice decimal.NullDecimal

	err := row.Scan(
		&m.PaymentID, &m.CompanyID, &m.PropertyID, &m.AgentID, &saleContractID, &totalSalePrice,
		&m.Kind, &m.Mode, &m.PaymentDate, &m.CurrencyCode, &m.VATIncluded, &m.VATRatePercent,
		&m.CommissionPercent, &m.PREAPercentOfCommission, &m.AgencyPercentRemaining, &m.VATRateOnCommission,
		&m.GrossAmount, &m.TaxableBase, &m.VATAmount, &m.TotalCommission, &m.RegulatoryFee,
		&m.AgencyShare, &m.AgentShare, &m.VATOnCommission, &m.OwnerAmount,
		&m.Status, &originalID, &reversingID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return models.Payment{}, err
	}

	if saleContractID.Valid {
		m.SaleContractID = &saleContractID.String
	}
	if totalSalePrice.Valid {
		m.TotalSalePrice = &totalSalePrice.Decimal
	}
	if originalID.Valid {
		m.OriginalPaymentID = &originalID.String
	}
	if reversingID.Valid {
		m.ReversingPaymentID = &reversingID.String
	}
	return m, nil
}

func paymentArgs(m models.Payment) []any {
	var totalSalePrice decimal.NullDecimal
	if m.TotalSalePrice != nil {
		totalSalePrice = decimal.NewNullDecimal(*m.TotalSalePrice)
	}
	return []any{
		m.PaymentID, m.CompanyID, m.PropertyID, m.AgentID, m.SaleContractID, totalSalePrice,
		m.Kind, m.Mode, m.PaymentDate, m.CurrencyCode, m.VATIncluded, m.VATRatePercent,
		m.CommissionPercent, m.PREAPercentOfCommission, m.AgencyPercentRemaining, m.VATRateOnCommission,
		m.GrossAmount, m.TaxableBase, m.VATAmount, m.TotalCommission, m.RegulatoryFee,
		m.AgencyShare, m.AgentShare, m.VATOnCommission, m.OwnerAmount,
		m.Status, m.OriginalPaymentID, m.ReversingPaymentID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func totalsArgs(m models.Payment, countDelta int64) []any {
	return []any{
		m.CompanyID, m.PropertyID, m.CurrencyCode,
		m.GrossAmount, m.TotalCommission, m.OwnerAmount,
		countDelta, m.CreatedAt,
	}
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
