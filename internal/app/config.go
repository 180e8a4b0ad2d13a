package app

import (
	"time"

	"github.com/yungbote/professionals-backend/internal/data/db"
	"github.com/yungbote/professionals-backend/internal/platform/envutil"
)

type Config struct {
	Port            string
	LogMode         string
	Environment     string
	Version         string
	ShutdownTimeout time.Duration

	DB db.Config

	RedisAddr          string
	AddressLockEnabled bool
	AddressLockTTL     time.Duration
	AddressLockWait    time.Duration

	CORSOrigins []string
	SeedFile    string
}

func LoadConfig() Config {
	return Config{
		Port:            envutil.String("PORT", "8080"),
		LogMode:         envutil.String("LOG_MODE", "development"),
		Environment:     envutil.String("APP_ENV", "local"),
		Version:         envutil.String("APP_VERSION", "dev"),
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DB: db.Config{
			Driver:     envutil.String("DB_DRIVER", db.DriverPostgres),
			Host:       envutil.String("POSTGRES_HOST", "localhost"),
			Port:       envutil.String("POSTGRES_PORT", "5432"),
			User:       envutil.String("POSTGRES_USER", "postgres"),
			Password:   envutil.String("POSTGRES_PASSWORD", ""),
			Name:       envutil.String("POSTGRES_NAME", "professionals"),
			SSLMode:    envutil.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath: envutil.String("SQLITE_PATH", "professionals.db"),
		},

		RedisAddr:          envutil.String("REDIS_ADDR", ""),
		AddressLockEnabled: envutil.Bool("ADDRESS_LOCK_ENABLED", false),
		AddressLockTTL:     envutil.Duration("ADDRESS_LOCK_TTL", 10*time.Second),
		AddressLockWait:    envutil.Duration("ADDRESS_LOCK_WAIT", 3*time.Second),

		CORSOrigins: envutil.List("CORS_ALLOWED_ORIGINS", nil),
		SeedFile:    envutil.String("SEED_FILE", ""),
	}
}
