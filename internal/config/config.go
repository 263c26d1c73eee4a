package config

import (
	"strings"

	"github.com/spf13/viper"
)

// placeholders are the values shipped in .env.example; a setting equal to one
// of these counts as unset so a fresh checkout runs on mock data instead of
// dialing a non-existent database.
var placeholders = map[string]bool{
	"your-supabase-url": true,
	"your-service-key":  true,
	"[YOUR-PASSWORD]":   true,
	"changeme":          true,
}

// Config holds all runtime configuration loaded from environment variables.
// It is built once at startup and passed into constructors — nothing re-reads
// the environment per request.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Live catalog backend (hosted postgres). Both settings must be real
	// values for the live path to be attempted; see LiveCatalogEnabled.
	SupabaseDBURL      string `mapstructure:"SUPABASE_DB_URL"`
	SupabaseServiceKey string `mapstructure:"SUPABASE_SERVICE_KEY"`

	// Optional page cache
	RedisURL string `mapstructure:"REDIS_URL"`

	// Admin gatekeeping — tokens are issued by the hosted auth service;
	// this secret only lets the API verify them.
	AdminJWTSecret string `mapstructure:"ADMIN_JWT_SECRET"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LiveCatalogEnabled reports whether the hosted database should be attempted.
// Missing, empty or placeholder settings silently select the mock path —
// that is not an error condition.
func (c *Config) LiveCatalogEnabled() bool {
	return usable(c.SupabaseDBURL) && usable(c.SupabaseServiceKey)
}

// AdminAPIEnabled reports whether the admin routes may be mounted. A missing
// or placeholder secret would make every admin token verify against a
// well-known HMAC key, so the write API stays unmounted instead.
func (c *Config) AdminAPIEnabled() bool {
	return usable(c.AdminJWTSecret)
}

// CatalogDSN yields the postgres DSN for the live backend. Supabase hands out
// connection strings with a literal [YOUR-PASSWORD] marker; the service key
// is substituted for it.
func (c *Config) CatalogDSN() string {
	return strings.ReplaceAll(c.SupabaseDBURL, "[YOUR-PASSWORD]", c.SupabaseServiceKey)
}

func usable(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !placeholders[v]
}
