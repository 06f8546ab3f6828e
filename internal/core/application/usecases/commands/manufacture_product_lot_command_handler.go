package commands

import (
	"context"

	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"go.uber.org/zap"
)

// ManufactureProductLotCommandHandler creates a product lot and consumes its
// ingredients in the same unit of work.
//
// Every ingredient is checked before anything is written: it must exist, be
// held by the caller, be VALIDATED and sit at the manufacturing location. Only
// when all of them pass are the CONSUMED records and the product written.
type ManufactureProductLotCommandHandler struct {
	uowFactory UoWFactory
	authz      *services.Authorizer
	logger     *zap.Logger
}

func NewManufactureProductLotCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) ManufactureProductLotCommandHandler {
	return ManufactureProductLotCommandHandler{
		uowFactory: uowFactory,
		authz:      authz,
		logger:     nopIfNil(logger),
	}
}

func (h ManufactureProductLotCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd ManufactureProductLotCommand,
) (*lot.Lot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	org, err := h.authz.Gate(services.OpManufactureProductLot, caller)
	if err != nil {
		return nil, err
	}

	product, err := lot.NewProduct(
		cmd.ProductID(), cmd.Name(), cmd.Description(), cmd.Code(), org, cmd.IngredientIDs(),
	)
	if err != nil {
		return nil, err
	}
	custody, err := lot.NewCustody(product, org, cmd.LocationID(), cmd.Parameters())
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

	existing, err := registry.GetLot(ctx, lot.Product, product.ID())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError(lot.Product.Noun(), product.ID())
	}

	if _, err = requireLocation(ctx, registry, cmd.LocationID()); err != nil {
		return nil, err
	}

	consumed := make([]*lot.Custody, 0, len(product.Ingredients()))
	for _, id := range product.Ingredients() {
		ingredient, err := requireCustody(ctx, registry, lot.Ingredient, id)
		if err != nil {
			return nil, err
		}
		err = h.authz.RequireHolder(
			services.OpManufactureProductLot, org, ingredient.Holder(), subject(lot.Ingredient, id),
		)
		if err != nil {
			return nil, err
		}
		if err = ingredient.Consume(cmd.LocationID()); err != nil {
			return nil, err
		}
		consumed = append(consumed, ingredient)
	}

	for _, ingredient := range consumed {
		if err = registry.SaveCustody(ctx, ingredient); err != nil {
			return nil, err
		}
	}

	if err = registry.CreateLot(ctx, product, custody); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, ingredient := range consumed {
		logTransition(h.logger, services.OpManufactureProductLot, ingredient)
	}
	logTransition(h.logger, services.OpManufactureProductLot, custody)
	return product, nil
}
