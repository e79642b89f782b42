package auth

import (
	"testing"
	"time"

	"vegete-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-chars-long!!"

func parseClaims(t *testing.T, tokenStr, secret string) (*JWTCustomClaims, error) {
	t.Helper()
	claims := &JWTCustomClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	return claims, err
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	branchID := "b1"
	user := &models.User{
		ID:       "u1",
		Username: "manager1",
		Role:     models.RoleBranchManager,
		BranchID: &branchID,
	}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := parseClaims(t, tokenStr, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "manager1", claims.Username)
	assert.Equal(t, models.RoleBranchManager, claims.Role)
	require.NotNil(t, claims.BranchID)
	assert.Equal(t, "b1", *claims.BranchID)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestGenerateTokenNilBranch(t *testing.T) {
	user := &models.User{ID: "u2", Username: "admin", Role: models.RoleSuperAdmin}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	claims, err := parseClaims(t, tokenStr, testSecret)
	require.NoError(t, err)
	assert.Nil(t, claims.BranchID)
}

func TestWrongSecretRejected(t *testing.T) {
	user := &models.User{ID: "u1", Username: "admin", Role: models.RoleSuperAdmin}

	tokenStr, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	_, err = parseClaims(t, tokenStr, "another-secret-that-is-also-long-enough")
	assert.Error(t, err)
}
