package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrStartShipmentCommandIsNotConstructed = errors.New(
		"StartShipmentCommand must be created via NewStartShipmentCommand constructor",
	)
	ErrShipmentStepCommandIsNotConstructed = errors.New(
		"ShipmentStepCommand must be created via NewShipmentStepCommand constructor",
	)
	ErrFinishShipmentCommandIsNotConstructed = errors.New(
		"FinishShipmentCommand must be created via NewFinishShipmentCommand constructor",
	)
	ErrValidateFinishShipmentCommandIsNotConstructed = errors.New(
		"ValidateFinishShipmentCommand must be created via NewValidateFinishShipmentCommand constructor",
	)
)

// StartShipmentCommand hands an IDLE or VALIDATED lot to a courier for
// transport from originID to destinationID.
//
// Example:
//
//	cmd, err := NewStartShipmentCommand("INGREDIENT", "ING1", "courier1MSP", "FARM1", "FACTORY1")
//	if err != nil {
//	    return err
//	}
//	custody, err := handler.Handle(ctx, caller, cmd)
type StartShipmentCommand struct {
	itemRef
	courierID     kernel.OrgID
	originID      string
	destinationID string

	guard guard.ConstructorGuard
}

func NewStartShipmentCommand(
	itemType, itemID, courierID, originID, destinationID string,
) (StartShipmentCommand, error) {
	ref, refErr := newItemRef(itemType, itemID)
	if err := errors.Join(
		refErr,
		requireValue("courierId", courierID),
		requireValue("locationId", originID),
		requireValue("destinationId", destinationID),
	); err != nil {
		return StartShipmentCommand{}, err
	}

	return StartShipmentCommand{
		itemRef:       ref,
		courierID:     kernel.OrgID(courierID),
		originID:      originID,
		destinationID: destinationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c StartShipmentCommand) Validate() error {
	return c.guard.Validate(ErrStartShipmentCommandIsNotConstructed)
}

func (c StartShipmentCommand) CourierID() kernel.OrgID {
	return c.courierID
}

// OriginID returns the location the shipment leaves from.
func (c StartShipmentCommand) OriginID() string {
	return c.originID
}

func (c StartShipmentCommand) DestinationID() string {
	return c.destinationID
}

// ShipmentStepCommand passes an in-transit lot from the calling courier to
// another courier at locationID.
type ShipmentStepCommand struct {
	itemRef
	courierID  kernel.OrgID
	locationID string

	guard guard.ConstructorGuard
}

func NewShipmentStepCommand(itemType, itemID, courierID, locationID string) (ShipmentStepCommand, error) {
	ref, refErr := newItemRef(itemType, itemID)
	if err := errors.Join(
		refErr,
		requireValue("courierId", courierID),
		requireValue("locationId", locationID),
	); err != nil {
		return ShipmentStepCommand{}, err
	}

	return ShipmentStepCommand{
		itemRef:    ref,
		courierID:  kernel.OrgID(courierID),
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ShipmentStepCommand) Validate() error {
	return c.guard.Validate(ErrShipmentStepCommandIsNotConstructed)
}

func (c ShipmentStepCommand) CourierID() kernel.OrgID {
	return c.courierID
}

func (c ShipmentStepCommand) LocationID() string {
	return c.locationID
}

// FinishShipmentCommand delivers an in-transit lot to a receiving organization.
type FinishShipmentCommand struct {
	itemRef
	receiverID kernel.OrgID
	locationID string

	guard guard.ConstructorGuard
}

func NewFinishShipmentCommand(itemType, itemID, receiverID, locationID string) (FinishShipmentCommand, error) {
	ref, refErr := newItemRef(itemType, itemID)
	if err := errors.Join(
		refErr,
		requireValue("holderId", receiverID),
		requireValue("locationId", locationID),
	); err != nil {
		return FinishShipmentCommand{}, err
	}

	return FinishShipmentCommand{
		itemRef:    ref,
		receiverID: kernel.OrgID(receiverID),
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c FinishShipmentCommand) Validate() error {
	return c.guard.Validate(ErrFinishShipmentCommandIsNotConstructed)
}

// ReceiverID returns the organization taking delivery.
func (c FinishShipmentCommand) ReceiverID() kernel.OrgID {
	return c.receiverID
}

func (c FinishShipmentCommand) LocationID() string {
	return c.locationID
}

// ValidateFinishShipmentCommand confirms that a delivered lot reached its destination.
type ValidateFinishShipmentCommand struct {
	itemRef

	guard guard.ConstructorGuard
}

func NewValidateFinishShipmentCommand(itemType, itemID string) (ValidateFinishShipmentCommand, error) {
	ref, err := newItemRef(itemType, itemID)
	if err != nil {
		return ValidateFinishShipmentCommand{}, err
	}

	return ValidateFinishShipmentCommand{
		itemRef: ref,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ValidateFinishShipmentCommand) Validate() error {
	return c.guard.Validate(ErrValidateFinishShipmentCommandIsNotConstructed)
}
