package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port           string
	Env            string
	LogLevel       string
	CORSOrigin     string
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty means the client IP is the peer address.
	TrustedProxies []string

	// Database
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBPath        string
	MigrationsDir string

	// Auth
	JWTSecret                string
	JWTExpirationDur         time.Duration
	AuthRequired             bool
	LegacyPlaintextPasswords bool
	LoginRatePerMinute       int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "mysql"))

	config := &Config{
		// Server
		Port:           getEnv("PORT", "5000"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"),
		TrustedProxies: getList("TRUSTED_PROXIES"),

		// Database
		DBDriver:      driver,
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", defaultPort(driver)),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    getEnv("DB_PASSWORD", getEnv("DB_PASS", "")),
		DBName:        getEnv("DB_NAME", "sosio"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBPath:        getEnv("DB_PATH", "sosio.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations/"+driver),

		// Auth
		JWTSecret:                getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		AuthRequired:             getBool("AUTH_REQUIRED", false),
		LegacyPlaintextPasswords: getBool("LEGACY_PLAINTEXT_PASSWORDS", false),
		LoginRatePerMinute:       getInt("LOGIN_RATE_PER_MINUTE", 10),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the process-wide configuration. Tests use it to flip
// feature switches without touching the environment.
func Set(cfg *Config) {
	appConfig = cfg
}

func defaultPort(driver string) string {
	switch driver {
	case "postgres":
		return "5432"
	case "sqlite":
		return ""
	default:
		return "3306"
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getList splits a comma-separated variable, dropping empty entries.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %t\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
