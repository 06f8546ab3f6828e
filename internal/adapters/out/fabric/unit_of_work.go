package fabric

import (
	"context"

	"supplychain/internal/adapters/out/registry"
	"supplychain/internal/core/ports"
)

// UnitOfWorkFactory hands out units of work over the stub in the context.
type UnitOfWorkFactory struct{}

func NewUnitOfWorkFactory() UnitOfWorkFactory {
	return UnitOfWorkFactory{}
}

func (UnitOfWorkFactory) Create() ports.UnitOfWork {
	return unitOfWork{registry: registry.New(StubLedger{})}
}

// unitOfWork has nothing to begin or commit: the peer applies the write set
// of a successful invocation atomically and drops it when the invocation fails.
type unitOfWork struct {
	registry ports.Registry
}

// Begin fails fast when called outside a chaincode invocation.
func (unitOfWork) Begin(ctx context.Context) error {
	_, err := StubFrom(ctx)
	return err
}

func (unitOfWork) Commit(context.Context) error {
	return nil
}

func (unitOfWork) Rollback(context.Context) error {
	return nil
}

func (u unitOfWork) Registry() ports.Registry {
	return u.registry
}
