package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
	StorageDriverMemory   = "memory"
)

type Config struct {
	HTTPPort string

	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string

	JWTSecret    string
	RateLimitRPS float64

	UploadDir       string
	UploadURLPrefix string
	MaxUploadBytes  int64

	StrictParentCheck   bool
	ItineraryUniqueDays bool

	LogLevel slog.Level

	ReconcileSchedule   string
	OrphanSweepSchedule string
}

// LoadConfig reads the configuration through getenv, applying defaults to
// unset keys.
func LoadConfig(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:            env("HTTP_PORT", "8080"),
		StorageDriver:       strings.ToLower(env("STORAGE_DRIVER", StorageDriverPostgres)),
		DBHost:              env("DB_HOST", "localhost"),
		DBPort:              env("DB_PORT", "5432"),
		DBUser:              env("DB_USER", ""),
		DBPassword:          env("DB_PASSWORD", ""),
		DBName:              env("DB_NAME", ""),
		DBSslMode:           env("DB_SSLMODE", "disable"),
		MongoURI:            env("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:       env("MONGO_DATABASE", "tours"),
		RedisAddr:           env("REDIS_ADDR", ""),
		JWTSecret:           env("JWT_SECRET", ""),
		UploadDir:           env("UPLOAD_DIR", "uploads"),
		UploadURLPrefix:     env("UPLOAD_URL_PREFIX", "/uploads"),
		ReconcileSchedule:   env("RECONCILE_SCHEDULE", "0 */10 * * * *"),
		OrphanSweepSchedule: env("ORPHAN_SWEEP_SCHEDULE", "0 0 * * * *"),
	}

	var err error
	var parseErrs []error

	if config.MaxUploadBytes, err = strconv.ParseInt(env("MAX_UPLOAD_BYTES", "5242880"), 10, 64); err != nil {
		parseErrs = append(parseErrs, fmt.Errorf("MAX_UPLOAD_BYTES: %w", err))
	}
	if config.RateLimitRPS, err = strconv.ParseFloat(env("RATE_LIMIT_RPS", "10"), 64); err != nil {
		parseErrs = append(parseErrs, fmt.Errorf("RATE_LIMIT_RPS: %w", err))
	}
	if config.StrictParentCheck, err = strconv.ParseBool(env("STRICT_PARENT_CHECK", "true")); err != nil {
		parseErrs = append(parseErrs, fmt.Errorf("STRICT_PARENT_CHECK: %w", err))
	}
	if config.ItineraryUniqueDays, err = strconv.ParseBool(env("ITINERARY_UNIQUE_DAYS", "false")); err != nil {
		parseErrs = append(parseErrs, fmt.Errorf("ITINERARY_UNIQUE_DAYS: %w", err))
	}
	if err = config.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		parseErrs = append(parseErrs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if err = errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var problems []error

	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DBUser == "" || c.DBName == "" {
			problems = append(problems, errors.New("DB_USER and DB_NAME are required for the postgres driver"))
		}
	case StorageDriverMongo, StorageDriverMemory:
	default:
		problems = append(problems, fmt.Errorf("STORAGE_DRIVER %q is not one of postgres, mongo, memory", c.StorageDriver))
	}

	if c.MaxUploadBytes <= 0 {
		problems = append(problems, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if c.RateLimitRPS < 0 {
		problems = append(problems, errors.New("RATE_LIMIT_RPS must not be negative"))
	}

	return errors.Join(problems...)
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
