package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/estate_commission/internal/utils"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/companies/:company_id", AuthMiddleware(testSecret, "estate-commission"), func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{
			"user":    userID,
			"allowed": CanAccessCompany(c.Request.Context(), c.Param("company_id")),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT("user-1", []string{"company-1"}, testSecret, time.Hour, "estate-commission")
	require.NoError(t, err)
	admin, err := utils.GenerateJWT("admin", []string{"*"}, testSecret, time.Hour, "estate-commission")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-1", nil, testSecret, -time.Hour, "estate-commission")
	require.NoError(t, err)
	wrongIssuer, err := utils.GenerateJWT("user-1", nil, testSecret, time.Hour, "elsewhere")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", path: "/companies/company-1", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "bad scheme", header: "Token " + valid, path: "/companies/company-1", wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + expired, path: "/companies/company-1", wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer, path: "/companies/company-1", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "own company", header: "Bearer " + valid, path: "/companies/company-1", wantStatus: http.StatusOK, wantBody: `"allowed":true`},
		{name: "other company", header: "Bearer " + valid, path: "/companies/company-2", wantStatus: http.StatusOK, wantBody: `"allowed":false`},
		{name: "wildcard", header: "Bearer " + admin, path: "/companies/company-2", wantStatus: http.StatusOK, wantBody: `"allowed":true`},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestStructuredLoggingMiddleware_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.GET("/ping", func(c *gin.Context) {
		assert.NotNil(t, GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l, err := NewLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/limited", RateLimit(l), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewLimiter("lots")
	assert.Error(t, err)
}
