package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/estate_commission/internal/apperrors"
	"github.com/SscSPs/estate_commission/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeCompany checks that the authenticated user may act for companyID.
func (s *BaseService) AuthorizeCompany(ctx context.Context, companyID string) error {
	if middleware.CanAccessCompany(ctx, companyID) {
		return nil
	}
	userID, _ := middleware.GetUserIDFromCtx(ctx)
	s.LogWarn(ctx, "Company access denied", slog.String("user_id", userID), slog.String("company_id", companyID))
	return fmt.Errorf("%w: user may not act for company %s", apperrors.ErrForbidden, companyID)
}
