package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Generator GeneratorConfig
	Seed      SeedConfig
}

type AppConfig struct {
	AppName      string
	Environment  string
	HTTPPort     string
	LogLevel     string
	StoreBackend string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return c.Host + ":" + port
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type GeneratorConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type SeedConfig struct {
	File            string
	Disabled        bool
	DefaultPassword string
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads the configuration from the environment. A .env file in the
// working directory, when present, is loaded first without overriding
// variables that are already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	dur := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			if secs, convErr := strconv.Atoi(raw); convErr == nil && secs >= 0 {
				return time.Duration(secs) * time.Second
			}
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	i32 := func(key string) int32 {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return 0
		}
		return int32(v)
	}

	cfg.App = AppConfig{
		AppName:      req("APP_NAME"),
		Environment:  req("APP_ENV"),
		HTTPPort:     req("HTTP_PORT"),
		LogLevel:     opt("LOG_LEVEL", "info"),
		StoreBackend: strings.ToLower(opt("STORE_BACKEND", StoreMemory)),
	}

	cfg.Database = DatabaseConfig{
		DBHost:                opt("DB_HOST", ""),
		DBPort:                opt("DB_PORT", "5432"),
		DBName:                opt("DB_NAME", ""),
		DBUser:                opt("DB_USER", ""),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBSSLMode:             opt("DB_SSL_MODE", "disable"),
		ConnectTimeout:        dur("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          i32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          i32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   dur("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   dur("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: dur("DB_POOL_HEALTH_CHECK_PERIOD", 0),
		MigrationsDir:         opt("MIGRATIONS_DIR", ""),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      dur("REDIS_TTL", 600*time.Second),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     opt("JWT_ACCESS_SECRET", ""),
		RefreshSecret:    opt("JWT_REFRESH_SECRET", ""),
		AccessExpiresIn:  dur("JWT_ACCESS_TTL", 15*time.Minute),
		RefreshExpiresIn: dur("JWT_REFRESH_TTL", 7*24*time.Hour),
	}

	cfg.Generator = GeneratorConfig{
		APIKey:  opt("GEMINI_API_KEY", ""),
		Model:   opt("GEMINI_MODEL", "gemini-2.5-flash"),
		BaseURL: opt("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		Timeout: dur("GEMINI_TIMEOUT", 15*time.Second),
	}

	cfg.Seed = SeedConfig{
		File:            opt("SEED_FILE", ""),
		Disabled:        strings.EqualFold(opt("SEED_DISABLED", "false"), "true"),
		DefaultPassword: os.Getenv("SEED_DEFAULT_PASSWORD"),
	}

	switch cfg.App.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		req("DB_HOST")
		req("DB_NAME")
		req("DB_USER")
	default:
		invalid = append(invalid, "STORE_BACKEND")
	}

	if cfg.JWT.AccessSecret == "" {
		missing = append(missing, "JWT_ACCESS_SECRET")
	}
	if cfg.JWT.RefreshSecret == "" {
		missing = append(missing, "JWT_REFRESH_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
