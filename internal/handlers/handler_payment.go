package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/dto"
	"github.com/SscSPs/estate_commission/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments and their allocations.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers payment, sale progress and property totals routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.submitPayment)
		payments.POST("/preview", h.previewPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:payment_id", h.getPayment)
		payments.POST("/:payment_id/reverse", h.reversePayment)
	}
	rg.GET("/sales/:contract_id/progress", h.getSaleProgress)
	rg.GET("/properties/:property_id/totals", h.getPropertyTotals)
}

// submitPayment godoc
// @Summary Post a payment
// @Description Computes the commission allocation of a payment and stores it together with the property running totals
// @Tags payments
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param payment body dto.SubmitPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No commission settings for company"
// @Failure 422 {object} dto.ErrorResponse "Configuration or reconciliation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to post payment"
// @Security BearerAuth
// @Router /companies/{company_id}/payments [post]
func (h *paymentHandler) submitPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "SubmitPayment request")
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("property_id", req.PropertyID))
	logger.Info("Received request to post payment", slog.String("kind", string(req.Kind)), slog.String("gross_amount", req.GrossAmount.String()))

	payment, err := h.paymentService.SubmitPayment(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post payment")
		return
	}

	logger.Info("Payment posted successfully", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// previewPayment godoc
// @Summary Preview a payment allocation
// @Description Computes the commission allocation without storing anything
// @Tags payments
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param payment body dto.SubmitPaymentRequest true "Payment details"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 422 {object} dto.ErrorResponse "Configuration or reconciliation error"
// @Security BearerAuth
// @Router /companies/{company_id}/payments/preview [post]
func (h *paymentHandler) previewPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "PreviewPayment request")
		return
	}

	payment, err := h.paymentService.PreviewPayment(c.Request.Context(), companyID, req)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("company_id", companyID)), err, "Failed to preview payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Lists payments of a company newest first, using token pagination
// @Tags payments
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param propertyID query string false "Filter by property"
// @Param agentID query string false "Filter by agent"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "ListPayments query")
		return
	}

	res, err := h.paymentService.ListPayments(c.Request.Context(), companyID, params)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("company_id", companyID)), err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param company_id path string true "Company ID"
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /companies/{company_id}/payments/{payment_id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	paymentID := c.Param("payment_id")

	payment, err := h.paymentService.GetPayment(c.Request.Context(), companyID, paymentID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("payment_id", paymentID)), err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// reversePayment godoc
// @Summary Reverse a payment
// @Description Posts a payment with the negated allocation and marks the original as reversed
// @Tags payments
// @Produce json
// @Param company_id path string true "Company ID"
// @Param payment_id path string true "Payment ID"
// @Success 201 {object} dto.PaymentResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Failure 409 {object} dto.ErrorResponse "Payment already reversed"
// @Security BearerAuth
// @Router /companies/{company_id}/payments/{payment_id}/reverse [post]
func (h *paymentHandler) reversePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	paymentID := c.Param("payment_id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("payment_id", paymentID))
	logger.Info("Received request to reverse payment")

	reversal, err := h.paymentService.ReversePayment(c.Request.Context(), companyID, paymentID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reverse payment")
		return
	}

	logger.Info("Payment reversed successfully", slog.String("reversal_id", reversal.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(reversal))
}

// getSaleProgress godoc
// @Summary Installment sale progress
// @Description Sums the installments paid against a sale contract
// @Tags sales
// @Produce json
// @Param company_id path string true "Company ID"
// @Param contract_id path string true "Sale contract ID"
// @Success 200 {object} domain.SaleProgress
// @Failure 404 {object} dto.ErrorResponse "No payments for contract"
// @Security BearerAuth
// @Router /companies/{company_id}/sales/{contract_id}/progress [get]
func (h *paymentHandler) getSaleProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	contractID := c.Param("contract_id")

	progress, err := h.paymentService.GetSaleProgress(c.Request.Context(), companyID, contractID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("sale_contract_id", contractID)), err, "Failed to load sale progress")
		return
	}
	c.JSON(http.StatusOK, progress.Rounded())
}

// getPropertyTotals godoc
// @Summary Property running totals
// @Description Returns collected, commission and owner net totals of a property per currency
// @Tags properties
// @Produce json
// @Param company_id path string true "Company ID"
// @Param property_id path string true "Property ID"
// @Success 200 {object} dto.PropertyTotalsResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/properties/{property_id}/totals [get]
func (h *paymentHandler) getPropertyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	propertyID := c.Param("property_id")

	totals, err := h.paymentService.GetPropertyTotals(c.Request.Context(), companyID, propertyID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("property_id", propertyID)), err, "Failed to load property totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToPropertyTotalsResponse(propertyID, totals))
}
