//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, username string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration)
	token, err := service.GenerateAccessToken(userID, username)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, -time.Minute)
	token, err := service.GenerateAccessToken(userID, username)
	require.NoError(t, err)
	return token
}

// signs with a different secret so the signature check fails
func (h *JWTHelper) CreateForgedToken(t *testing.T, userID int64, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-forged", h.cfg.Issuer, time.Minute)
	token, err := service.GenerateAccessToken(userID, username)
	require.NoError(t, err)
	return token
}
