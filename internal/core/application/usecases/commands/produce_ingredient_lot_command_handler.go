package commands

import (
	"context"

	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"

	"go.uber.org/zap"
)

// ProduceIngredientLotCommandHandler creates an ingredient lot in IDLE, held by
// the calling producer.
type ProduceIngredientLotCommandHandler struct {
	uowFactory UoWFactory
	authz      *services.Authorizer
	logger     *zap.Logger
}

func NewProduceIngredientLotCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) ProduceIngredientLotCommandHandler {
	return ProduceIngredientLotCommandHandler{
		uowFactory: uowFactory,
		authz:      authz,
		logger:     nopIfNil(logger),
	}
}

// Handle checks the caller is a producer, that the location exists and that
// the ingredient id is free, then writes the lot, its custody record and its
// presence marker.
func (h ProduceIngredientLotCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd ProduceIngredientLotCommand,
) (*lot.Lot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	org, err := h.authz.Gate(services.OpProduceIngredientLot, caller)
	if err != nil {
		return nil, err
	}

	ingredient, err := lot.NewIngredient(cmd.IngredientID(), cmd.Name(), cmd.Description(), cmd.Code(), org)
	if err != nil {
		return nil, err
	}
	custody, err := lot.NewCustody(ingredient, org, cmd.LocationID(), cmd.Parameters())
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

	registry := uow.Registry()

	if _, err = requireLocation(ctx, registry, cmd.LocationID()); err != nil {
		return nil, err
	}

	if err = registry.CreateLot(ctx, ingredient, custody); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logTransition(h.logger, services.OpProduceIngredientLot, custody)
	return ingredient, nil
}
