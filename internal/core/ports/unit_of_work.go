package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each invocation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one invocation. Everything written
// through its Registry is committed atomically or not at all.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit makes the writes visible.
	// Returns error if no transaction is active or the ledger reports a conflict.
	Commit(ctx context.Context) error

	// Rollback discards the writes. It is safe to call after Commit.
	Rollback(ctx context.Context) error

	// Registry returns a Registry bound to the current transaction.
	Registry() Registry
}
