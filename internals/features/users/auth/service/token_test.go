package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansarullah_backend/internals/configs"
	subUserModel "ansarullah_backend/internals/features/users/subuser/model"
)

func TestIssueAccessTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := &subUserModel.SubUserModel{
		SubUserID:       uuid.New(),
		SubUserUsername: "talim.clerk",
		SubUserRole:     "talim",
	}

	raw, expiresAt, err := IssueAccessToken(user)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)

	assert.Equal(t, user.SubUserID.String(), claims["sub"])
	assert.Equal(t, "talim.clerk", claims["username"])
	assert.Equal(t, "talim", claims["role"])
}

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := &subUserModel.SubUserModel{SubUserID: uuid.New(), SubUserUsername: "x", SubUserRole: "maal"}
	raw, expiresAt, err := IssueAccessToken(user)
	require.NoError(t, err)

	got := TokenExpiry(raw)
	assert.WithinDuration(t, expiresAt, got, time.Second)
}

func TestTokenExpiryGarbageFallsBackToTTL(t *testing.T) {
	got := TokenExpiry("not-a-jwt")
	assert.True(t, got.After(time.Now()), "unparseable tokens still get a retention window")
}
