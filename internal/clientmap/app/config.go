package app

import (
	"os"
	"strconv"
	"time"
)

// Config is the full runtime configuration, sourced from the environment.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBDriver selects the store driver: "sqlite" or "postgres".
	DBDriver string
	// DBDSN is the driver-specific connection string.
	DBDSN string

	// Issuer is the iss claim on minted tokens.
	Issuer string

	// PepperFile optionally points at a file whose contents are mixed into
	// password hashes.
	PepperFile string

	// NumJWTKeys is how many signing keys to generate at startup.
	NumJWTKeys int

	LogLevel  string
	LogFormat string
	Env       string

	// ShutdownGrace is how long in-flight requests get on shutdown.
	ShutdownGrace time.Duration

	// HousekeepingInterval is how often expired auth state is purged.
	HousekeepingInterval time.Duration

	// EnableSwagger mounts /swagger/ with the API docs.
	EnableSwagger bool
}

// LoadConfig reads configuration from CLIENTMAP_* environment variables,
// falling back to development defaults.
func LoadConfig() Config {
	return Config{
		Addr:     getEnvOrDefault("CLIENTMAP_ADDR", ":8080"),
		DBDriver: getEnvOrDefault("CLIENTMAP_DB_DRIVER", "sqlite"),
		DBDSN: getEnvOrDefault("CLIENTMAP_DB_DSN",
			"file:clientmap.db?_busy_timeout=5000&_journal_mode=WAL"),
		Issuer:               getEnvOrDefault("CLIENTMAP_ISSUER", "clientmap"),
		PepperFile:           os.Getenv("CLIENTMAP_PEPPER_FILE"),
		NumJWTKeys:           getEnvInt("CLIENTMAP_JWT_KEYS", 3),
		LogLevel:             getEnvOrDefault("CLIENTMAP_LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("CLIENTMAP_LOG_FORMAT", "json"),
		Env:                  getEnvOrDefault("CLIENTMAP_ENV", "dev"),
		ShutdownGrace:        getEnvDuration("CLIENTMAP_SHUTDOWN_GRACE_SEC", 10*time.Second),
		HousekeepingInterval: getEnvDuration("CLIENTMAP_HOUSEKEEPING_INTERVAL_SEC", time.Hour),
		EnableSwagger:        getEnvBool("CLIENTMAP_ENABLE_SWAGGER", true),
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
