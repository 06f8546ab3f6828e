package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"go.uber.org/zap"
)

// StartShipmentCommandHandler moves a lot from IDLE or VALIDATED to IN_TRANSIT.
//
// Example:
//
//	handler := NewStartShipmentCommandHandler(uowFactory, authz, logger)
//	custody, err := handler.Handle(ctx, caller, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAccessDenied):
//	    // wrong organization, role, or not the holder
//	case errors.Is(err, errs.ErrStateIsInvalid):
//	    // lot is not IDLE or VALIDATED
//	}
type StartShipmentCommandHandler struct {
	updater   custodyUpdater
	directory kernel.Directory
}

func NewStartShipmentCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) StartShipmentCommandHandler {
	return StartShipmentCommandHandler{
		updater:   newCustodyUpdater(uowFactory, authz, logger),
		directory: authz.Directory(),
	}
}

func (h StartShipmentCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd StartShipmentCommand,
) (*lot.Custody, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, caller, custodyChange{
		op:  services.OpStartShipment,
		ref: cmd.itemRef,
		precheck: func(ctx context.Context, registry ports.Registry) error {
			if !h.directory.IsCourier(cmd.CourierID()) {
				return notA("courierId", cmd.CourierID(), "courier")
			}
			return requireLocations(cmd.OriginID(), cmd.DestinationID())(ctx, registry)
		},
		apply: func(_ context.Context, _ ports.Registry, _ kernel.OrgID, c *lot.Custody) error {
			return c.StartShipment(cmd.CourierID(), cmd.OriginID(), cmd.DestinationID())
		},
	})
}

// ShipmentStepCommandHandler hands an IN_TRANSIT lot to the next courier.
type ShipmentStepCommandHandler struct {
	updater   custodyUpdater
	directory kernel.Directory
}

func NewShipmentStepCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) ShipmentStepCommandHandler {
	return ShipmentStepCommandHandler{
		updater:   newCustodyUpdater(uowFactory, authz, logger),
		directory: authz.Directory(),
	}
}

func (h ShipmentStepCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd ShipmentStepCommand,
) (*lot.Custody, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, caller, custodyChange{
		op:  services.OpShipmentStep,
		ref: cmd.itemRef,
		precheck: func(ctx context.Context, registry ports.Registry) error {
			if !h.directory.IsCourier(cmd.CourierID()) {
				return notA("courierId", cmd.CourierID(), "courier")
			}
			return requireLocations(cmd.LocationID())(ctx, registry)
		},
		apply: func(_ context.Context, _ ports.Registry, _ kernel.OrgID, c *lot.Custody) error {
			return c.ShipmentStep(cmd.CourierID(), cmd.LocationID())
		},
	})
}

// FinishShipmentCommandHandler moves an IN_TRANSIT lot to DELIVERED and hands
// it to the receiving organization.
type FinishShipmentCommandHandler struct {
	updater   custodyUpdater
	directory kernel.Directory
}

func NewFinishShipmentCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) FinishShipmentCommandHandler {
	return FinishShipmentCommandHandler{
		updater:   newCustodyUpdater(uowFactory, authz, logger),
		directory: authz.Directory(),
	}
}

func (h FinishShipmentCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd FinishShipmentCommand,
) (*lot.Custody, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, caller, custodyChange{
		op:  services.OpFinishShipment,
		ref: cmd.itemRef,
		precheck: func(ctx context.Context, registry ports.Registry) error {
			if !h.directory.IsReceiver(cmd.ReceiverID()) {
				return notA("holderId", cmd.ReceiverID(), "receiving organization")
			}
			return requireLocations(cmd.LocationID())(ctx, registry)
		},
		apply: func(_ context.Context, _ ports.Registry, _ kernel.OrgID, c *lot.Custody) error {
			return c.FinishShipment(cmd.ReceiverID(), cmd.LocationID())
		},
	})
}

// ValidateFinishShipmentCommandHandler moves a DELIVERED lot that sits at its
// destination to VALIDATED.
type ValidateFinishShipmentCommandHandler struct {
	updater custodyUpdater
}

func NewValidateFinishShipmentCommandHandler(
	uowFactory UoWFactory,
	authz *services.Authorizer,
	logger *zap.Logger,
) ValidateFinishShipmentCommandHandler {
	return ValidateFinishShipmentCommandHandler{
		updater: newCustodyUpdater(uowFactory, authz, logger),
	}
}

func (h ValidateFinishShipmentCommandHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	cmd ValidateFinishShipmentCommand,
) (*lot.Custody, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.updater.update(ctx, caller, custodyChange{
		op:  services.OpValidateFinishShipment,
		ref: cmd.itemRef,
		apply: func(_ context.Context, _ ports.Registry, _ kernel.OrgID, c *lot.Custody) error {
			return c.ValidateDelivery()
		},
	})
}

func notA(param string, org kernel.OrgID, part string) error {
	return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is not a %s", org, part))
}
