package cmd

import (
	"errors"
	"os"

	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	Environment string
	LogLevel    string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBPath     string

	JWTSecret string
	JWTIssuer string

	Producers     string
	Manufacturers string
	Couriers      string
	Clients       string

	SnapshotSchedule string
}

// LoadConfig reads the process environment, after merging a .env file from
// the working directory when one exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}
	return ConfigFromEnv(os.Getenv), nil
}

// ConfigFromEnv builds a Config from getenv, applying defaults for the
// optional keys.
func ConfigFromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return Config{
		HTTPPort:    get("HTTP_PORT", "8080"),
		Environment: get("APP_ENV", "development"),
		LogLevel:    getenv("LOG_LEVEL"),

		DBDriver:   get("DB_DRIVER", postgres.DriverPostgres),
		DBHost:     getenv("DB_HOST"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER"),
		DBPassword: getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME"),
		DBSslMode:  getenv("DB_SSLMODE"),
		DBPath:     get("DB_PATH", "supplychain.db"),

		JWTSecret: getenv("JWT_SECRET"),
		JWTIssuer: get("JWT_ISSUER", "supplychain"),

		Producers:     getenv("ORG_PRODUCERS"),
		Manufacturers: getenv("ORG_MANUFACTURERS"),
		Couriers:      getenv("ORG_COURIERS"),
		Clients:       getenv("ORG_CLIENTS"),

		SnapshotSchedule: get("METRICS_SNAPSHOT_SCHEDULE", jobs.DefaultSnapshotSchedule),
	}
}

// Directory returns the configured organizations. Groups left unset keep the
// reference network's members.
func (c Config) Directory() (kernel.Directory, error) {
	dir := kernel.DefaultDirectory()
	if orgs := kernel.ParseOrgList(c.Producers); len(orgs) > 0 {
		dir.Producers = orgs
	}
	if orgs := kernel.ParseOrgList(c.Manufacturers); len(orgs) > 0 {
		dir.Manufacturers = orgs
	}
	if orgs := kernel.ParseOrgList(c.Couriers); len(orgs) > 0 {
		dir.Couriers = orgs
	}
	if orgs := kernel.ParseOrgList(c.Clients); len(orgs) > 0 {
		dir.Clients = orgs
	}
	return dir, dir.Validate()
}

// Connection selects the standalone ledger database.
func (c Config) Connection() postgres.ConnectionConfig {
	if c.DBDriver == postgres.DriverSQLite {
		return postgres.ConnectionConfig{Driver: postgres.DriverSQLite, DSN: c.DBPath}
	}
	return postgres.ConnectionConfig{
		Driver: postgres.DriverPostgres,
		DSN:    postgres.MakePostgresDSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode),
	}
}

// ValidateForServer checks the settings the HTTP service cannot run without.
func (c Config) ValidateForServer() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.DBDriver == postgres.DriverPostgres && c.DBHost == "" {
		return errors.New("DB_HOST is required for the postgres driver")
	}
	return nil
}
