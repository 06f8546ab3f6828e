// Package postgres provides the standalone ledger: a GORM-backed unit of work
// whose registry writes to the ledger_states and ledger_history tables.
//
// Each UnitOfWork is one invocation. Begin opens a database transaction and
// issues a transaction id; every write made through Registry() is stamped with
// that id and becomes visible only on Commit.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, postgres.WithIsolation(sql.LevelSerializable))
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.Registry().CreateLot(ctx, l, custody); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// On PostgreSQL the factory should be configured with serializable isolation:
// two invocations that read and write the same keys then conflict at commit
// instead of silently overwriting each other.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"supplychain/internal/adapters/out/postgres/ledgerrepo"
	"supplychain/internal/adapters/out/registry"
	"supplychain/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	txOpt *sql.TxOptions
	now   func() time.Time
}

// FactoryOption configures a GormUnitOfWorkFactory.
type FactoryOption func(*GormUnitOfWorkFactory)

// WithIsolation sets the isolation level of every transaction.
func WithIsolation(level sql.IsolationLevel) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.txOpt = &sql.TxOptions{Isolation: level}
	}
}

// WithClock replaces time.Now for history timestamps.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.now = now
	}
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{
		db:  db,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a fresh UnitOfWork. Instances must not be shared between goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:    f.db,
		txOpt: f.txOpt,
		now:   f.now,
	}
}

// AutoMigrate creates or updates the ledger tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(ledgerrepo.Models()...)
}

// GormUnitOfWork is one invocation's transaction.
type GormUnitOfWork struct {
	db    *gorm.DB
	tx    *gorm.DB
	txOpt *sql.TxOptions
	now   func() time.Time

	txID      string
	timestamp time.Time
}

// Begin opens the transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	var opts []*sql.TxOptions
	if uow.txOpt != nil {
		opts = append(opts, uow.txOpt)
	}

	tx := uow.db.WithContext(ctx).Begin(opts...)
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.txID = uuid.NewString()
	uow.timestamp = uow.now().UTC()
	return nil
}

// Commit returns gorm.ErrInvalidTransaction if Begin was not called.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction if there is nothing to roll back,
// which callers deferring Rollback after Commit ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TxID is the id stamped on history written by the current transaction.
func (uow *GormUnitOfWork) TxID() string {
	return uow.txID
}

// Registry returns a registry bound to the open transaction, or to the pool
// for read-only use outside a transaction.
func (uow *GormUnitOfWork) Registry() ports.Registry {
	if uow.tx != nil {
		return registry.New(ledgerrepo.NewGormLedger(uow.tx, uow.txID, uow.timestamp))
	}
	return registry.New(ledgerrepo.NewGormLedger(uow.db, uuid.NewString(), uow.now().UTC()))
}
