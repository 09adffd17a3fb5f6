package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/estate_commission/internal/core/domain"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/dto"
	"github.com/SscSPs/estate_commission/internal/export"
	"github.com/SscSPs/estate_commission/internal/middleware"
	"github.com/SscSPs/estate_commission/internal/observability/metrics"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests related to commission reports
type reportingHandler struct {
	reportService portssvc.CommissionReportSvc
	metrics       *metrics.Metrics
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.CommissionReportSvc, m *metrics.Metrics) *reportingHandler {
	return &reportingHandler{
		reportService: rs,
		metrics:       m,
	}
}

// registerReportingRoutes registers routes related to commission reports
func registerReportingRoutes(rg *gin.RouterGroup, reportService portssvc.CommissionReportSvc, m *metrics.Metrics) {
	h := newReportingHandler(reportService, m)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/commissions", h.getCommissionReport)
	}
}

// getCommissionReport godoc
// @Summary Generate commission report
// @Description Totals commission shares per agent, agency, regulatory body or property over a period, with monthly and cumulative totals
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param company_id path string true "Company ID"
// @Param groupBy query string true "Grouping" Enums(agent, agency, regulatoryBody, property)
// @Param from query string false "First day (YYYY-MM-DD), inclusive"
// @Param to query string false "Last day (YYYY-MM-DD), inclusive"
// @Param format query string false "Output format" Enums(json, xlsx, pdf) default(json)
// @Success 200 {object} domain.ReportTotals
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (User not authorized)"
// @Failure 422 {object} dto.ErrorResponse "Unknown grouping"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/commissions [get]
func (h *reportingHandler) getCommissionReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var params dto.CommissionReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "CommissionReport query")
		return
	}

	period, err := parsePeriod(params.From, params.To)
	if err != nil {
		logger.Warn("Invalid report period", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	format := export.Format(params.Format)
	if format == "" {
		format = export.FormatJSON
	}

	logger = logger.With(
		slog.String("company_id", companyID),
		slog.String("group_by", params.GroupBy),
		slog.String("format", string(format)),
	)
	logger.Info("Received request to generate commission report")

	report, err := h.reportService.GenerateReport(c.Request.Context(), companyID, domain.GroupBy(params.GroupBy), period)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate commission report")
		return
	}
	rounded := report.Rounded()
	report = &rounded

	if format == export.FormatJSON {
		c.JSON(http.StatusOK, report)
		return
	}

	var data []byte
	switch format {
	case export.FormatXLSX:
		data, err = export.BuildReportXLSX(report)
	case export.FormatPDF:
		data, err = export.BuildReportPDF(report)
	}
	h.metrics.ObserveExport(string(format), err)
	if err != nil {
		logger.Error("Failed to render commission report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to render commission report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(report, format)))
	c.Data(http.StatusOK, format.ContentType(), data)
}

func parsePeriod(from, to string) (domain.Period, error) {
	var period domain.Period
	var err error
	if from != "" {
		if period.From, err = time.Parse(reportDateLayout, from); err != nil {
			return domain.Period{}, err
		}
	}
	if to != "" {
		if period.To, err = time.Parse(reportDateLayout, to); err != nil {
			return domain.Period{}, err
		}
	}
	return period, nil
}
