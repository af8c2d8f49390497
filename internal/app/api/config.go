package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port        string
	PostgresDSN string

	// Token settings seed the in-process config store; when ConfigFromDB
	// is set and a database is available, the store's config table wins.
	APIEnabled     bool
	APIToken       string
	ProvisionToken string
	ConfigFromDB   bool

	OrderLimit   int
	CurrencyCode string
	Locale       string
	Timezone     string
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:           envDefault("PORT", "8080"),
		PostgresDSN:    strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		APIEnabled:     isTruthy(os.Getenv("ZENDESK_API_ENABLED")),
		APIToken:       strings.TrimSpace(os.Getenv("ZENDESK_API_TOKEN")),
		ProvisionToken: strings.TrimSpace(os.Getenv("ZENDESK_PROVISION_TOKEN")),
		ConfigFromDB:   isTruthy(os.Getenv("ZENDESK_CONFIG_FROM_DB")),
		OrderLimit:     5,
		CurrencyCode:   envDefault("STORE_CURRENCY", "USD"),
		Locale:         envDefault("STORE_LOCALE", "en-US"),
		Timezone:       envDefault("STORE_TIMEZONE", "UTC"),
	}
	if raw := strings.TrimSpace(os.Getenv("ORDER_LIMIT")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Config{}, fmt.Errorf("ORDER_LIMIT must be a positive integer")
		}
		cfg.OrderLimit = limit
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, fmt.Errorf("STORE_TIMEZONE %q is not a valid IANA zone: %w", cfg.Timezone, err)
	}
	if cfg.ConfigFromDB && cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("ZENDESK_CONFIG_FROM_DB requires POSTGRES_DSN")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
