package commands

import (
	"context"

	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"

	"go.uber.org/zap"
)

// locationUpdater loads a location, checks the caller holds it, applies a
// change and saves it back. Both location update handlers share it.
type locationUpdater struct {
	uowFactory UoWFactory
	authz      *services.Authorizer
	logger     *zap.Logger
}

func (u locationUpdater) update(
	ctx context.Context,
	op services.Operation,
	caller ports.Identity,
	locationID string,
	apply func(*location.Location) error,
) (*location.Location, error) {
	org, err := u.authz.Gate(op, caller)
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

	loc, err := requireLocation(ctx, registry, locationID)
	if err != nil {
		return nil, err
	}

	if err = u.authz.RequireHolder(op, org, loc.Holder(), "location "+locationID); err != nil {
		return nil, err
	}

	if err = apply(loc); err != nil {
		return nil, err
	}

	if err = registry.SaveLocation(ctx, loc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	u.logger.Info("location updated",
		zap.String("operation", string(op)),
		zap.String("locationId", loc.ID()),
		zap.Stringer("holder", loc.Holder()),
	)
	return loc, nil
}

type UpdateLocationParametersCommandHandler struct {
	updater locationUpdater
}

func NewUpdateLocationParametersCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) UpdateLocationParametersCommandHandler {
	return UpdateLocationParametersCommandHandler{
		updater: locationUpdater{uowFactory: uowFactory, authz: authz, logger: nopIfNil(logger)},
	}
}

// Handle replaces the parameters of a location held by the caller.
func (h UpdateLocationParametersCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd UpdateLocationParametersCommand,
) (*location.Location, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, services.OpUpdateLocationParameters, caller, cmd.LocationID(),
		func(l *location.Location) error {
			l.ReplaceParameters(cmd.Parameters())
			return nil
		},
	)
}

type UpdateLocationCoordinatesCommandHandler struct {
	updater locationUpdater
}

func NewUpdateLocationCoordinatesCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) UpdateLocationCoordinatesCommandHandler {
	return UpdateLocationCoordinatesCommandHandler{
		updater: locationUpdater{uowFactory: uowFactory, authz: authz, logger: nopIfNil(logger)},
	}
}

// Handle moves a vehicle held by the caller. Fixed locations are rejected
// with errs.StateIsInvalidError.
func (h UpdateLocationCoordinatesCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd UpdateLocationCoordinatesCommand,
) (*location.Location, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, services.OpUpdateLocationCoordinates, caller, cmd.LocationID(),
		func(l *location.Location) error {
			return l.MoveTo(cmd.Coordinates())
		},
	)
}
