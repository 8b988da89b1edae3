//go:build unit

package config_test

import (
	"testing"

	"hotel-admin/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults are applied when only required values are set", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_USER", "hotel")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "hotels")
		t.Setenv("JWT_SECRET", "signing-key")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.Equal(t, "UTC", cfg.Server.BusinessTimeZone)
		assert.Equal(t, "30m", cfg.JWT.AccessTokenDuration)
		assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000", "http://frontend"}, cfg.CORS.AllowOrigins)
		assert.False(t, cfg.Seed.Enabled())
	})

	t.Run("missing secret is rejected", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_USER", "hotel")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "hotels")
		t.Setenv("JWT_SECRET", "")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestBuildDSN(t *testing.T) {
	db := config.DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "hotels", SSLMode: "disable", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://u:p@db:5432/hotels?sslmode=disable&timezone=UTC", db.BuildDSN())
}

func TestSeedEnabled(t *testing.T) {
	assert.True(t, config.SeedConfig{AdminUsername: "admin", AdminPassword: "password123"}.Enabled())
	assert.False(t, config.SeedConfig{AdminUsername: "admin"}.Enabled())
}
