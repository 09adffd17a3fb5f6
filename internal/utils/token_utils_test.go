package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", []string{"company-1"}, "secret", time.Hour, "estate-commission")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "estate-commission")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, []string{"company-1"}, claims.Companies)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("user-1", nil, "secret", time.Hour, "estate-commission")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret", "")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	expired, err := GenerateJWT("user-1", nil, "secret", -time.Minute, "")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret", "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
