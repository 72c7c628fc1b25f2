package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfarerhq/wayfarer_backend/internal/utils"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("alice", "secret", time.Hour, "wayfarer-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "wayfarer-backend", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("alice", "secret", time.Hour, "wayfarer-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("alice", "secret", -time.Minute, "wayfarer-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 64)

	other, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestGenerateSecureRandomString_InvalidLength(t *testing.T) {
	_, err := utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
