// Package commands contains the operations that change ledger state.
// Every handler follows the same pattern: command validation, authorization
// gate, registry reads, state machine transition, registry writes, commit.
// A failure at any step rolls the unit of work back, so nothing is written.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle of one invocation.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RegistryFactory provides access to the registry within a transaction.
	RegistryFactory interface {
		Registry() ports.Registry
	}

	// UoW is the transaction boundary of a single command.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   registry := uow.Registry()
	//   // ... read, transition, write
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RegistryFactory
	}

	// UoWFactory creates a new unit of work per command.
	UoWFactory interface {
		Create() UoW
	}
)
