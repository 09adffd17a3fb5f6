package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/estate_commission/internal/core/domain"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/dto"
	"github.com/SscSPs/estate_commission/internal/middleware"
)

// settingsHandler handles HTTP requests for stored commission percentages.
type settingsHandler struct {
	settingsService portssvc.CommissionSettingsSvcFacade
}

func newSettingsHandler(ss portssvc.CommissionSettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers company default and property override settings routes.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.CommissionSettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	rg.GET("/commission-settings", h.getCompanySettings)
	rg.PUT("/commission-settings", h.putCompanySettings)
	rg.GET("/properties/:property_id/commission-settings", h.getPropertySettings)
	rg.PUT("/properties/:property_id/commission-settings", h.putPropertySettings)
}

// getCompanySettings godoc
// @Summary Get company commission settings
// @Tags settings
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.CommissionSettingsResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No settings stored"
// @Security BearerAuth
// @Router /companies/{company_id}/commission-settings [get]
func (h *settingsHandler) getCompanySettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	settings, err := h.settingsService.GetCompanySettings(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("company_id", companyID)), err, "Failed to retrieve commission settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionSettingsResponse(settings))
}

// putCompanySettings godoc
// @Summary Set company commission settings
// @Description Creates or replaces the company default percentages. agentPercentRemaining is derived.
// @Tags settings
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param settings body dto.CommissionConfigRequest true "Percentages"
// @Success 200 {object} dto.CommissionSettingsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 422 {object} dto.ErrorResponse "Inconsistent percentages"
// @Security BearerAuth
// @Router /companies/{company_id}/commission-settings [put]
func (h *settingsHandler) putCompanySettings(c *gin.Context) {
	h.upsert(c, nil)
}

// getPropertySettings godoc
// @Summary Get a property commission override
// @Tags settings
// @Produce json
// @Param company_id path string true "Company ID"
// @Param property_id path string true "Property ID"
// @Success 200 {object} dto.CommissionSettingsResponse
// @Failure 404 {object} dto.ErrorResponse "No override stored"
// @Security BearerAuth
// @Router /companies/{company_id}/properties/{property_id}/commission-settings [get]
func (h *settingsHandler) getPropertySettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	propertyID := c.Param("property_id")

	settings, err := h.settingsService.GetPropertySettings(c.Request.Context(), companyID, propertyID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("property_id", propertyID)), err, "Failed to retrieve commission settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionSettingsResponse(settings))
}

// putPropertySettings godoc
// @Summary Set a property commission override
// @Tags settings
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param property_id path string true "Property ID"
// @Param settings body dto.CommissionConfigRequest true "Percentages"
// @Success 200 {object} dto.CommissionSettingsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Inconsistent percentages"
// @Security BearerAuth
// @Router /companies/{company_id}/properties/{property_id}/commission-settings [put]
func (h *settingsHandler) putPropertySettings(c *gin.Context) {
	propertyID := c.Param("property_id")
	h.upsert(c, &propertyID)
}

func (h *settingsHandler) upsert(c *gin.Context, propertyID *string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CommissionConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "CommissionConfig request")
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	var settings *domain.CommissionSettings
	var err error
	if propertyID == nil {
		settings, err = h.settingsService.UpsertCompanySettings(c.Request.Context(), companyID, req, userID)
	} else {
		logger = logger.With(slog.String("property_id", *propertyID))
		settings, err = h.settingsService.UpsertPropertySettings(c.Request.Context(), companyID, *propertyID, req, userID)
	}
	if err != nil {
		respondServiceError(c, logger, err, "Failed to store commission settings")
		return
	}

	logger.Info("Commission settings stored")
	c.JSON(http.StatusOK, dto.ToCommissionSettingsResponse(settings))
}
