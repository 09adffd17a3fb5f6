package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/estate_commission/internal/apperrors"
	"github.com/SscSPs/estate_commission/internal/core/domain"
	"github.com/SscSPs/estate_commission/internal/dto"
	"github.com/SscSPs/estate_commission/internal/middleware"
)

// respondServiceError maps a service error to its HTTP status and body.
// failureMsg is returned for unexpected errors so internals do not leak.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	var cfgErr *domain.ConfigurationError
	var recErr *domain.ReconciliationError

	switch {
	case errors.As(err, &cfgErr):
		logger.Warn("Commission configuration rejected", slog.String("field", cfgErr.Field), slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Field: cfgErr.Field, Details: cfgErr.Reason})
	case errors.As(err, &recErr):
		logger.Error("Commission allocation failed reconciliation", slog.String("check", string(recErr.Check)), slog.String("delta", recErr.Delta.String()))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Check: string(recErr.Check), Delta: recErr.Delta.String()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "You do not have permission to act for this company"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failureMsg})
	}
}

// respondBindError reports a request that failed binding or validation tags.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format", Details: err.Error()})
}

// requireUser returns the authenticated user or writes 401.
func requireUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
