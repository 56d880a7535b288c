package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting of the server and the dashboard client.
type Config struct {
	AppPort        string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	RabbitMQURL    string
	LogLevel       string
	APIURL         string
	APIToken       string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "toko.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("API_TOKEN", "")
}

// Load reads an optional .env file, then environment variables, on top of
// the defaults. Values already set on v (e.g. bound flags) win.
func Load(v *viper.Viper) Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	SetDefaults(v)
	v.AutomaticEnv()

	return Config{
		AppPort:        v.GetString("APP_PORT"),
		DatabaseDriver: v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		APIURL:         v.GetString("API_URL"),
		APIToken:       v.GetString("API_TOKEN"),
	}
}

// ErrWeakJWTSecret is returned by CheckJWTSecret when tokens would be signed
// with an empty or publicly known key.
var ErrWeakJWTSecret = errors.New("JWT_SECRET must be set to a private value")

var placeholderSecrets = map[string]bool{
	"change-me":   true,
	"changeme":    true,
	"secret":      true,
	"your-secret": true,
}

// CheckJWTSecret rejects a missing or placeholder signing secret.
func (c Config) CheckJWTSecret() error {
	secret := strings.TrimSpace(c.JWTSecret)
	if secret == "" || placeholderSecrets[strings.ToLower(secret)] {
		return ErrWeakJWTSecret
	}
	return nil
}
