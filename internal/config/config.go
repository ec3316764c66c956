package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Store backends understood by the kvstore factory.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Patient id strategies.
const (
	IDStrategyTimestamp = "timestamp"
	IDStrategyUUID      = "uuid"
)

type Config struct {
	Env                    string `mapstructure:"ENV"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
	StoreBackend           string `mapstructure:"STORE_BACKEND"`
	DataDir                string `mapstructure:"DATA_DIR"`
	RedisURL               string `mapstructure:"REDIS_URL"`
	RedisPrefix            string `mapstructure:"REDIS_PREFIX"`
	DatabaseURL            string `mapstructure:"DATABASE_URL"`
	DBMaxConns             int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns             int32  `mapstructure:"DB_MIN_CONNS"`
	PageSize               int    `mapstructure:"PAGE_SIZE"`
	IDStrategy             string `mapstructure:"ID_STRATEGY"`
	RequirePatientOnCommit bool   `mapstructure:"REQUIRE_PATIENT_ON_COMMIT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", BackendFile)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("REDIS_PREFIX", "clinic:")
	v.SetDefault("DB_MAX_CONNS", 5)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("ID_STRATEGY", IDStrategyTimestamp)
	v.SetDefault("REQUIRE_PATIENT_ON_COMMIT", true)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("STORE_BACKEND")
	v.BindEnv("DATA_DIR")
	v.BindEnv("REDIS_URL")
	v.BindEnv("REDIS_PREFIX")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("PAGE_SIZE")
	v.BindEnv("ID_STRATEGY")
	v.BindEnv("REQUIRE_PATIENT_ON_COMMIT")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.IsDev() && cfg.StoreBackend == BackendMemory {
		log.Println("WARNING: STORE_BACKEND=memory; registered patients and examinations are lost on exit.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the selected backend has what it needs to connect and
// that the tunables are in range.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required when STORE_BACKEND is %q", BackendFile)
		}
	case BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORE_BACKEND is %q", BackendRedis)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND is %q", BackendPostgres)
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be \"file\", \"memory\", \"redis\", or \"postgres\", got %q", c.StoreBackend)
	}

	if c.IDStrategy != IDStrategyTimestamp && c.IDStrategy != IDStrategyUUID {
		return fmt.Errorf("ID_STRATEGY must be \"timestamp\" or \"uuid\", got %q", c.IDStrategy)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	return nil
}
