package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"

	"go.uber.org/zap"
)

// custodyChange describes one transition of an existing lot's custody record.
type custodyChange struct {
	op  services.Operation
	ref itemRef

	// precheck validates the change's arguments once the caller is known to
	// hold the lot, so a non-holder learns nothing about them.
	precheck func(ctx context.Context, registry ports.Registry) error

	// apply mutates the custody record once the caller is known to hold it.
	apply func(ctx context.Context, registry ports.Registry, caller kernel.OrgID, c *lot.Custody) error
}

// custodyUpdater runs a custodyChange inside one unit of work: gate, read,
// holder check, precheck, apply, save, commit.
type custodyUpdater struct {
	uowFactory UoWFactory
	authz      *services.Authorizer
	logger     *zap.Logger
}

func newCustodyUpdater(uowFactory UoWFactory, authz *services.Authorizer, logger *zap.Logger) custodyUpdater {
	return custodyUpdater{
		uowFactory: uowFactory,
		authz:      authz,
		logger:     nopIfNil(logger),
	}
}

func (u custodyUpdater) update(ctx context.Context, caller ports.Identity, change custodyChange) (*lot.Custody, error) {
	org, err := u.authz.Gate(change.op, caller)
	if err != nil {
		return nil, err
	}

	uow := u.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.Registry()

	custody, err := requireCustody(ctx, registry, change.ref.ItemType(), change.ref.ItemID())
	if err != nil {
		return nil, err
	}

	if err = u.authz.RequireHolder(change.op, org, custody.Holder(), change.ref.subject()); err != nil {
		return nil, err
	}

	if change.precheck != nil {
		if err = change.precheck(ctx, registry); err != nil {
			return nil, err
		}
	}

	if err = change.apply(ctx, registry, org, custody); err != nil {
		return nil, err
	}

	if err = registry.SaveCustody(ctx, custody); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logTransition(u.logger, change.op, custody)
	return custody, nil
}

// requireLocations returns a precheck that fails on the first id with no location.
func requireLocations(ids ...string) func(context.Context, ports.Registry) error {
	return func(ctx context.Context, registry ports.Registry) error {
		for _, id := range ids {
			if _, err := requireLocation(ctx, registry, id); err != nil {
				return err
			}
		}
		return nil
	}
}
