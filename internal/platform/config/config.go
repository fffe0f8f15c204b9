package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends for the ledger.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	StorageBackend string
	MigrationsPath string

	// Report cache; disabled when RedisURL is empty
	RedisURL       string
	ReportCacheTTL time.Duration

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	CurrencyMinorUnits   int32
	IncomeSignConvention domain.IncomeSignConvention
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("STORAGE_BACKEND", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REPORT_CACHE_TTL", "5m")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CURRENCY_MINOR_UNITS", 2)
	v.SetDefault("INCOME_SIGN_CONVENTION", string(domain.DefaultIncomeSignConvention))
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		StorageBackend: strings.ToLower(v.GetString("STORAGE_BACKEND")),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		RedisURL:       v.GetString("REDIS_URL"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q (want %s or %s)", cfg.StorageBackend, StoragePostgres, StorageMemory)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	ttl, err := time.ParseDuration(v.GetString("REPORT_CACHE_TTL"))
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for REPORT_CACHE_TTL. Defaulting to %s.\n", ttl)
	}
	cfg.ReportCacheTTL = ttl

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	minorUnits := v.GetInt("CURRENCY_MINOR_UNITS")
	if minorUnits < 0 || minorUnits > 8 {
		return nil, fmt.Errorf("CURRENCY_MINOR_UNITS must be between 0 and 8, got %d", minorUnits)
	}
	cfg.CurrencyMinorUnits = int32(minorUnits)

	convention := domain.IncomeSignConvention(strings.ToLower(v.GetString("INCOME_SIGN_CONVENTION")))
	switch convention {
	case domain.SignDebitMinusCredit, domain.SignNatural:
		cfg.IncomeSignConvention = convention
	default:
		return nil, fmt.Errorf("unsupported INCOME_SIGN_CONVENTION %q", convention)
	}

	return cfg, nil
}
