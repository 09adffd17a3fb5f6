package middleware

import (
	"context"
	"slices"

	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	userIDKey       = contextKey("userID")
	companyIDsKey   = contextKey("companyIDs")
	allCompaniesKey = "*"
)

// WithUser stores the authenticated user and the companies they may act for.
func WithUser(ctx context.Context, userID string, companyIDs []string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, companyIDsKey, companyIDs)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin request.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok
	}
	return GetUserIDFromCtx(c.Request.Context())
}

// GetUserIDFromCtx retrieves the authenticated user ID from a standard context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// CanAccessCompany reports whether the authenticated user may act for companyID.
// A "*" entry in the token grants every company.
func CanAccessCompany(ctx context.Context, companyID string) bool {
	ids, _ := ctx.Value(companyIDsKey).([]string)
	return slices.Contains(ids, allCompaniesKey) || slices.Contains(ids, companyID)
}
