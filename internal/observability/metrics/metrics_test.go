package metrics

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

func TestCalculationResult(t *testing.T) {
	assert.Equal(t, ResultSuccess, CalculationResult(nil))
	assert.Equal(t, ResultConfigurationError, CalculationResult(&domain.ConfigurationError{Field: "commissionPercent"}))
	assert.Equal(t, ResultReconciliationError, CalculationResult(fmt.Errorf("wrapped: %w", &domain.ReconciliationError{Check: domain.CheckSharesVsTotal})))
	assert.Equal(t, ResultError, CalculationResult(errors.New("boom")))
}

func TestObserveCalculation(t *testing.T) {
	m := New()
	m.ObserveCalculation(nil)
	m.ObserveCalculation(nil)
	m.ObserveCalculation(&domain.ConfigurationError{Field: "mode"})

	body := scrape(m)
	assert.Contains(t, body, `commission_calculations_total{result="success"} 2`)
	assert.Contains(t, body, `commission_calculations_total{result="configuration_error"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCalculation(nil)
		m.ObserveReport(domain.GroupByAgent)
		m.ObserveExport("xlsx", nil)
		m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveReport(domain.GroupByProperty)
	m.ObserveHTTP("POST", "/api/v1/companies/:company_id/payments", 201, 20*time.Millisecond)

	body := scrape(m)
	assert.Contains(t, body, `commission_report_generations_total{group_by="property"} 1`)
	assert.Contains(t, body, `commission_http_request_duration_seconds_count{method="POST",route="/api/v1/companies/:company_id/payments",status="201"} 1`)
}

func scrape(m *Metrics) string {
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	return rec.Body.String()
}
