package services

import (
	portsrepo "github.com/SscSPs/estate_commission/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/observability/metrics"
	"github.com/SscSPs/estate_commission/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, m *metrics.Metrics, events *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first: payments resolve their config snapshot through it.
	container.Settings = NewCommissionSettingsService(repos.SettingsRepo)
	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		container.Settings,
		WithPaymentMetrics(m),
		WithPaymentEvents(events),
	)
	container.Report = NewCommissionReportService(repos.PaymentRepo, m)

	return container
}
