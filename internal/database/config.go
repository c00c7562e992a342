package database

import (
	"fmt"
	"net/url"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sosio/internal/config"
)

// Supported drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver        string
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	Path          string
	MigrationsDir string
}

// NewConfig creates a database configuration from the application config.
func NewConfig(app *config.Config) (*Config, error) {
	cfg := &Config{
		Driver:        app.DBDriver,
		Host:          app.DBHost,
		Port:          app.DBPort,
		User:          app.DBUser,
		Password:      app.DBPassword,
		DBName:        app.DBName,
		SSLMode:       app.DBSSLMode,
		Path:          app.DBPath,
		MigrationsDir: app.MigrationsDir,
	}
	switch cfg.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		return cfg, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q: must be mysql, postgres, or sqlite", cfg.Driver)
	}
}

// DSN returns the driver-specific connection string used by GORM.
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	case DriverSQLite:
		return c.Path
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	}
}

// MigrationURL returns the golang-migrate database URL. SQLite has none;
// it is migrated from the GORM models instead.
func (c *Config) MigrationURL() string {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode)
	case DriverMySQL:
		return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
			url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName)
	default:
		return ""
	}
}

// Dialector returns the GORM dialector for the configured driver.
func (c *Config) Dialector() gorm.Dialector {
	switch c.Driver {
	case DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  c.DSN(),
			PreferSimpleProtocol: true,
		})
	case DriverSQLite:
		return sqlite.Open(c.DSN())
	default:
		return mysql.Open(c.DSN())
	}
}
