package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SscSPs/estate_commission/internal/core/domain"
)

const (
	metricPrefix = "commission_"

	ResultSuccess             = "success"
	ResultConfigurationError  = "configuration_error"
	ResultReconciliationError = "reconciliation_error"
	ResultError               = "error"
)

// Metrics bundles the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	CalculationsTotal     *prometheus.CounterVec
	ReportGenerationTotal *prometheus.CounterVec
	ReportExportTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
}

// New constructs and registers metrics, including the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CalculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculations_total",
				Help: "Total commission calculations by result",
			},
			[]string{"result"},
		),
		ReportGenerationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_generations_total",
				Help: "Total commission reports generated by grouping",
			},
			[]string{"group_by"},
		),
		ReportExportTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_exports_total",
				Help: "Total commission report exports by format and result",
			},
			[]string{"format", "result"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.CalculationsTotal,
		m.ReportGenerationTotal,
		m.ReportExportTotal,
		m.HTTPRequestDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// CalculationResult maps an engine error to a result label.
func CalculationResult(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrConfiguration):
		return ResultConfigurationError
	case errors.Is(err, domain.ErrReconciliation):
		return ResultReconciliationError
	default:
		return ResultError
	}
}

// ObserveCalculation counts one engine run. Safe on a nil receiver.
func (m *Metrics) ObserveCalculation(err error) {
	if m == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(CalculationResult(err)).Inc()
}

// ObserveReport counts one report aggregation.
func (m *Metrics) ObserveReport(groupBy domain.GroupBy) {
	if m == nil {
		return
	}
	m.ReportGenerationTotal.WithLabelValues(string(groupBy)).Inc()
}

// ObserveExport counts one rendered report file.
func (m *Metrics) ObserveExport(format string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.ReportExportTotal.WithLabelValues(format, result).Inc()
}

// ObserveHTTP records the latency of one request against its route template.
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
