package config_test

import (
	"testing"

	"toko-admin/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	cfg := config.Load(viper.New())

	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := config.Load(viper.New())

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoad_ExplicitValueWins(t *testing.T) {
	t.Setenv("API_URL", "http://env:8080")
	v := viper.New()
	v.Set("API_URL", "http://flag:8080")

	cfg := config.Load(v)

	assert.Equal(t, "http://flag:8080", cfg.APIURL)
}

func TestCheckJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := config.Load(viper.New())
	assert.Empty(t, cfg.JWTSecret)
	assert.ErrorIs(t, cfg.CheckJWTSecret(), config.ErrWeakJWTSecret)

	for _, secret := range []string{"  ", "change-me", "CHANGE-ME", "secret"} {
		cfg.JWTSecret = secret
		assert.ErrorIs(t, cfg.CheckJWTSecret(), config.ErrWeakJWTSecret, secret)
	}

	cfg.JWTSecret = "f3c9a1d07e5b4c2a"
	assert.NoError(t, cfg.CheckJWTSecret())
}
