package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"supplychain/internal/pkg/errs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ConnectionConfig selects the database behind the standalone ledger.
type ConnectionConfig struct {
	Driver string
	DSN    string
	Logger gormlogger.Interface
}

// MakePostgresDSN builds a libpq keyword/value connection string.
func MakePostgresDSN(host, port, user, password, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, quoteDSNValue(password), dbName, sslMode)
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " '\\") {
		return v
	}
	return "'" + strings.NewReplacer("\\", "\\\\", "'", "\\'").Replace(v) + "'"
}

// Open connects to the configured database, migrates the ledger tables and
// returns a unit of work factory with the isolation level suited to the driver.
func Open(cfg ConnectionConfig) (*gorm.DB, *GormUnitOfWorkFactory, error) {
	gcfg := &gorm.Config{Logger: cfg.Logger, SkipDefaultTransaction: true}

	var (
		db   *gorm.DB
		err  error
		opts []FactoryOption
	)
	switch cfg.Driver {
	case DriverPostgres, "":
		db, err = gorm.Open(gormpostgres.Open(cfg.DSN), gcfg)
		opts = append(opts, WithIsolation(sql.LevelSerializable))
	case DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.DSN), gcfg)
	default:
		return nil, nil, errs.NewValueIsInvalidErrorWithCause(
			"driver",
			fmt.Errorf("unsupported database driver %q", cfg.Driver),
		)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer; one connection keeps transactions serial.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("migrate ledger tables: %w", err)
	}

	return db, NewGormUnitOfWorkFactory(db, opts...), nil
}
