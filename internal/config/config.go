package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read once at startup from the environment.
type Config struct {
	AppEnv          string
	Port            string
	LogLevel        string
	AllowedOrigin   string
	MaxBodySize     int64
	ShutdownTimeout time.Duration

	Database  Database
	RateLimit RateLimit
}

// Database holds the connection pool settings.
type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}

// RateLimit is optional; it is enabled only when RedisURL is set.
type RateLimit struct {
	RedisURL      string
	RatePerSecond float64
	Burst         int
}

func (r RateLimit) Enabled() bool { return r.RedisURL != "" }

// Load reads the environment. Unset variables fall back to defaults; malformed
// values are reported instead of silently replaced.
func Load() (Config, error) {
	var cfg Config
	var err error

	cfg.AppEnv = envString("APP_ENV", "development")
	cfg.Port = envString("PORT", "3001")
	cfg.LogLevel = envString("LOG_LEVEL", "info")
	cfg.AllowedOrigin = envString("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT: not a number: %q", cfg.Port)
	}
	if cfg.MaxBodySize, err = envInt64("MAX_BODY_SIZE", 1<<20, 1); err != nil {
		return Config{}, fmt.Errorf("MAX_BODY_SIZE: %w", err)
	}
	if cfg.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	if cfg.Database, err = loadDatabase(); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = loadRateLimit(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDatabase() (Database, error) {
	var db Database
	var err error

	db.URL = os.Getenv("DATABASE_URL")
	if db.URL == "" {
		return Database{}, errors.New("DATABASE_URL not set")
	}

	maxOpen, err := envInt64("DB_MAX_OPEN_CONNS", 10, 1)
	if err != nil {
		return Database{}, fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err)
	}
	maxIdle, err := envInt64("DB_MAX_IDLE_CONNS", maxOpen, 0)
	if err != nil {
		return Database{}, fmt.Errorf("DB_MAX_IDLE_CONNS: %w", err)
	}
	db.MaxOpenConns, db.MaxIdleConns = int(maxOpen), int(maxIdle)

	if db.ConnMaxIdleTime, err = envDuration("DB_CONN_MAX_IDLE_TIME", "5m"); err != nil {
		return Database{}, fmt.Errorf("DB_CONN_MAX_IDLE_TIME: %w", err)
	}
	if db.ConnMaxLifetime, err = envDuration("DB_CONN_MAX_LIFETIME", "30m"); err != nil {
		return Database{}, fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
	}
	if db.ConnectTimeout, err = envDuration("DB_CONNECT_TIMEOUT", "3s"); err != nil {
		return Database{}, fmt.Errorf("DB_CONNECT_TIMEOUT: %w", err)
	}
	return db, nil
}

func loadRateLimit() (RateLimit, error) {
	rl := RateLimit{RedisURL: os.Getenv("REDIS_URL")}

	rps := envString("RATE_LIMIT_RPS", "5")
	f, err := strconv.ParseFloat(rps, 64)
	if err != nil || f <= 0 {
		return RateLimit{}, fmt.Errorf("RATE_LIMIT_RPS: invalid rate %q", rps)
	}
	rl.RatePerSecond = f

	burst, err := envInt64("RATE_LIMIT_BURST", 20, 1)
	if err != nil {
		return RateLimit{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	rl.Burst = int(burst)
	return rl, nil
}

// --- helpers ---

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envDuration(key, def string) (time.Duration, error) {
	s := envString(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

func envInt64(key string, def, min int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %v", err)
	}
	if n < min {
		return 0, fmt.Errorf("must be >= %d", min)
	}
	return n, nil
}
