package commands

import (
	"context"

	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"

	"go.uber.org/zap"
)

type CreateLocationCommandHandler struct {
	uowFactory UoWFactory
	authz      *services.Authorizer
	logger     *zap.Logger
}

func NewCreateLocationCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
		authz:      authz,
		logger:     nopIfNil(logger),
	}
}

// Handle writes the location and its presence marker. Fails with
// errs.ObjectAlreadyExistsError if the id is taken.
func (h CreateLocationCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd CreateLocationCommand,
) (*location.Location, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	org, err := h.authz.Gate(services.OpCreateLocation, caller)
	if err != nil {
		return nil, err
	}

	loc, err := location.NewLocation(
		cmd.LocationID(), cmd.Name(), cmd.Kind(), cmd.Coordinates(), org, cmd.Parameters(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.Registry().CreateLocation(ctx, loc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("location created",
		zap.String("locationId", loc.ID()),
		zap.String("type", string(loc.Kind())),
		zap.Stringer("holder", loc.Holder()),
	)
	return loc, nil
}
