package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StorageMemory, cfg.StorageBackend)
	assert.Equal(t, int32(2), cfg.CurrencyMinorUnits)
	assert.Equal(t, domain.SignDebitMinusCredit, cfg.IncomeSignConvention)
	assert.Equal(t, 5*time.Minute, cfg.ReportCacheTTL)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")
	t.Setenv("PORT", "9090")
	t.Setenv("REPORT_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CURRENCY_MINOR_UNITS", "0")
	t.Setenv("INCOME_SIGN_CONVENTION", "natural")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int32(0), cfg.CurrencyMinorUnits)
	assert.Equal(t, domain.SignNatural, cfg.IncomeSignConvention)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"STORAGE_BACKEND": "sqlite"}},
		{name: "unknown sign convention", env: map[string]string{"STORAGE_BACKEND": "memory", "INCOME_SIGN_CONVENTION": "inverted"}},
		{name: "minor units out of range", env: map[string]string{"STORAGE_BACKEND": "memory", "CURRENCY_MINOR_UNITS": "12"}},
		{name: "default secret in production", env: map[string]string{"STORAGE_BACKEND": "memory", "IS_PRODUCTION": "true"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}
