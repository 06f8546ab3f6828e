package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"go.uber.org/zap"
)

type UpdateItemLocationCommandHandler struct {
	updater custodyUpdater
}

func NewUpdateItemLocationCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) UpdateItemLocationCommandHandler {
	return UpdateItemLocationCommandHandler{
		updater: newCustodyUpdater(uowFactory, authz, logger),
	}
}

// Handle moves a lot held by the caller to an existing location. Status and
// holder are left alone.
func (h UpdateItemLocationCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd UpdateItemLocationCommand,
) (*lot.Custody, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, caller, custodyChange{
		op:  services.OpUpdateItemLocation,
		ref: cmd.itemRef,
		apply: func(ctx context.Context, registry ports.Registry, _ kernel.OrgID, c *lot.Custody) error {
			if _, err := requireLocation(ctx, registry, cmd.LocationID()); err != nil {
				return err
			}
			return c.MoveTo(cmd.LocationID())
		},
	})
}

type UpdateItemParametersCommandHandler struct {
	updater custodyUpdater
	authz   *services.Authorizer
}

func NewUpdateItemParametersCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) UpdateItemParametersCommandHandler {
	return UpdateItemParametersCommandHandler{
		updater: newCustodyUpdater(uowFactory, authz, logger),
		authz:   authz,
	}
}

// Handle copies the parameters of the lot's current location onto the lot.
// The caller must hold both the lot and that location.
func (h UpdateItemParametersCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd UpdateItemParametersCommand,
) (*lot.Custody, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, caller, custodyChange{
		op:  services.OpUpdateItemParameters,
		ref: cmd.itemRef,
		apply: func(ctx context.Context, registry ports.Registry, org kernel.OrgID, c *lot.Custody) error {
			loc, err := requireLocation(ctx, registry, c.LocationID())
			if err != nil {
				return err
			}
			err = h.authz.RequireHolder(services.OpUpdateItemParameters, org, loc.Holder(), "location "+loc.ID())
			if err != nil {
				return err
			}
			c.ReplaceParameters(loc.Parameters())
			return nil
		},
	})
}

type InvalidateItemCommandHandler struct {
	updater custodyUpdater
}

func NewInvalidateItemCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) InvalidateItemCommandHandler {
	return InvalidateItemCommandHandler{
		updater: newCustodyUpdater(uowFactory, authz, logger),
	}
}

// Handle marks a lot held by the caller as LOST_OR_DESTROYED and inactive.
func (h InvalidateItemCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd InvalidateItemCommand,
) (*lot.Custody, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, caller, custodyChange{
		op:  services.OpInvalidateItem,
		ref: cmd.itemRef,
		apply: func(_ context.Context, _ ports.Registry, _ kernel.OrgID, c *lot.Custody) error {
			return c.Invalidate()
		},
	})
}

// DeleteIngredientCommandHandler removes an ingredient's record, custody
// record and presence marker. Only an admin of the producing organization may
// do so; the custody status is not consulted.
type DeleteIngredientCommandHandler struct {
	uowFactory UoWFactory
	authz      *services.Authorizer
	logger     *zap.Logger
}

func NewDeleteIngredientCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) DeleteIngredientCommandHandler {
	return DeleteIngredientCommandHandler{
		uowFactory: uowFactory,
		authz:      authz,
		logger:     nopIfNil(logger),
	}
}

func (h DeleteIngredientCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd DeleteIngredientCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	org, err := h.authz.Gate(services.OpDeleteIngredient, caller)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.Registry()

	ingredient, err := registry.GetLot(ctx, lot.Ingredient, cmd.ItemID())
	if err != nil {
		return err
	}
	if ingredient == nil {
		return errs.NewObjectNotFoundError(lot.Ingredient.Noun(), cmd.ItemID())
	}

	if err = h.authz.RequireHolder(services.OpDeleteIngredient, org, ingredient.Origin(), cmd.subject()); err != nil {
		return err
	}

	if err = registry.DeleteLot(ctx, lot.Ingredient, cmd.ItemID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("ingredient deleted",
		zap.String("operation", string(services.OpDeleteIngredient)),
		zap.String("itemId", cmd.ItemID()),
		zap.Stringer("holder", org),
	)
	return nil
}
