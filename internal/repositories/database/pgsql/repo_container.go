package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/estate_commission/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PaymentRepo:  newPgxPaymentRepository(dbPool),
		SettingsRepo: newPgxCommissionSettingsRepository(dbPool),
	}
}
