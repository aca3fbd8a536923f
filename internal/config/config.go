// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/james-ap-sunny/interbank-transfers/internal/impl/gateway/postgres"
	"github.com/james-ap-sunny/interbank-transfers/internal/logging"
)

// Transfer holds the business limits applied to every transfer request.
// Per-account limits live in the stores; these are the global bounds.
type Transfer struct {
	MinAmount           decimal.Decimal
	MaxAmount           decimal.Decimal
	SupportedCurrencies []string
	TransactionTimeout  time.Duration
}

type Config struct {
	HTTPAddr string
	Log      logging.Config
	SourceDB postgres.Config
	DestDB   postgres.Config
	Transfer Transfer
}

// FromEnv builds the configuration from environment variables, falling back
// to defaults suitable for local development.
func FromEnv() (Config, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = getEnv("LOG_LEVEL", logCfg.Level)
	logCfg.Format = getEnv("LOG_FORMAT", logCfg.Format)
	logCfg.Development = getEnv("LOG_DEV", "false") == "true"

	cfg := Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Log:      logCfg,
	}

	var err error
	if cfg.SourceDB, err = dbFromEnv("SOURCE_DB", "bank_a"); err != nil {
		return Config{}, err
	}
	if cfg.DestDB, err = dbFromEnv("DEST_DB", "bank_b"); err != nil {
		return Config{}, err
	}

	if cfg.Transfer.MinAmount, err = decimalEnv("TRANSFER_MIN_AMOUNT", "0.01"); err != nil {
		return Config{}, err
	}
	if cfg.Transfer.MaxAmount, err = decimalEnv("TRANSFER_MAX_AMOUNT", "50000.00"); err != nil {
		return Config{}, err
	}
	if cfg.Transfer.MaxAmount.LessThan(cfg.Transfer.MinAmount) {
		return Config{}, fmt.Errorf("TRANSFER_MAX_AMOUNT %s is below TRANSFER_MIN_AMOUNT %s",
			cfg.Transfer.MaxAmount, cfg.Transfer.MinAmount)
	}

	if cfg.Transfer.TransactionTimeout, err = durationEnv("TRANSFER_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}

	cfg.Transfer.SupportedCurrencies = splitEnv("SUPPORTED_CURRENCIES", "CNY")
	return cfg, nil
}

func dbFromEnv(prefix, defaultName string) (postgres.Config, error) {
	port, err := intEnv(prefix+"_PORT", 5432)
	if err != nil {
		return postgres.Config{}, err
	}
	return postgres.Config{
		Host:     getEnv(prefix+"_HOST", "localhost"),
		Port:     port,
		User:     getEnv(prefix+"_USER", "postgres"),
		Password: getEnv(prefix+"_PASSWORD", "postgres"),
		Database: getEnv(prefix+"_NAME", defaultName),
		SSLMode:  getEnv(prefix+"_SSLMODE", "disable"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func decimalEnv(key, fallback string) (decimal.Decimal, error) {
	v := getEnv(key, fallback)
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func splitEnv(key, fallback string) []string {
	v := getEnv(key, fallback)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
