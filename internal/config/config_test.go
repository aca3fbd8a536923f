package config_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-ap-sunny/interbank-transfers/internal/config"
	"github.com/james-ap-sunny/interbank-transfers/internal/logging"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, logging.DefaultConfig(), cfg.Log)

	assert.Equal(t, "localhost", cfg.SourceDB.Host)
	assert.Equal(t, 5432, cfg.SourceDB.Port)
	assert.Equal(t, "bank_a", cfg.SourceDB.Database)
	assert.Equal(t, "bank_b", cfg.DestDB.Database)

	assert.True(t, cfg.Transfer.MinAmount.Equal(decimal.RequireFromString("0.01")))
	assert.True(t, cfg.Transfer.MaxAmount.Equal(decimal.RequireFromString("50000.00")))
	assert.Equal(t, 30*time.Second, cfg.Transfer.TransactionTimeout)
	assert.Equal(t, []string{"CNY"}, cfg.Transfer.SupportedCurrencies)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SOURCE_DB_HOST", "db-a.internal")
	t.Setenv("SOURCE_DB_PORT", "5433")
	t.Setenv("DEST_DB_NAME", "bank_b_test")
	t.Setenv("TRANSFER_MAX_AMOUNT", "10000.00")
	t.Setenv("TRANSFER_TIMEOUT", "5s")
	t.Setenv("SUPPORTED_CURRENCIES", "cny, usd")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "db-a.internal", cfg.SourceDB.Host)
	assert.Equal(t, 5433, cfg.SourceDB.Port)
	assert.Equal(t, "bank_b_test", cfg.DestDB.Database)
	assert.True(t, cfg.Transfer.MaxAmount.Equal(decimal.RequireFromString("10000.00")))
	assert.Equal(t, 5*time.Second, cfg.Transfer.TransactionTimeout)
	assert.Equal(t, []string{"CNY", "USD"}, cfg.Transfer.SupportedCurrencies)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Run("unparsable amount", func(t *testing.T) {
		t.Setenv("TRANSFER_MIN_AMOUNT", "a lot")

		_, err := config.FromEnv()
		assert.Error(t, err)
	})

	t.Run("unparsable port", func(t *testing.T) {
		t.Setenv("SOURCE_DB_PORT", "first")

		_, err := config.FromEnv()
		assert.Error(t, err)
	})

	t.Run("max below min", func(t *testing.T) {
		t.Setenv("TRANSFER_MIN_AMOUNT", "100.00")
		t.Setenv("TRANSFER_MAX_AMOUNT", "10.00")

		_, err := config.FromEnv()
		assert.Error(t, err)
	})
}
