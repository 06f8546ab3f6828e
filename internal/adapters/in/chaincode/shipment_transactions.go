package chaincode

import (
	"supplychain/internal/core/application/usecases/commands"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// StartShipment hands a lot to a courier at its origin.
func (c *Contract) StartShipment(
	tctx contractapi.TransactionContextInterface,
	itemID, itemType, courierID, originID, destinationID string,
) (string, error) {
	const op = "StartShipment"

	cmd, err := commands.NewStartShipmentCommand(itemType, itemID, courierID, originID, destinationID)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	custody, err := c.handlers.StartShipment.Handle(ctx, caller, cmd)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, custody)
}

// ShipmentStep hands an in-transit lot to the next courier.
func (c *Contract) ShipmentStep(
	tctx contractapi.TransactionContextInterface,
	itemID, itemType, courierID, locationID string,
) (string, error) {
	const op = "ShipmentStep"

	cmd, err := commands.NewShipmentStepCommand(itemType, itemID, courierID, locationID)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	custody, err := c.handlers.ShipmentStep.Handle(ctx, caller, cmd)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, custody)
}

// FinishShipment delivers an in-transit lot to its receiver.
func (c *Contract) FinishShipment(
	tctx contractapi.TransactionContextInterface,
	itemID, itemType, receiverID, locationID string,
) (string, error) {
	const op = "FinishShipment"

	cmd, err := commands.NewFinishShipmentCommand(itemType, itemID, receiverID, locationID)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	custody, err := c.handlers.FinishShipment.Handle(ctx, caller, cmd)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, custody)
}

// ValidateFinishShipment confirms a delivery at the shipment's destination.
func (c *Contract) ValidateFinishShipment(
	tctx contractapi.TransactionContextInterface, itemID, itemType string,
) (string, error) {
	const op = "ValidateFinishShipment"

	cmd, err := commands.NewValidateFinishShipmentCommand(itemType, itemID)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	custody, err := c.handlers.ValidateFinishShipment.Handle(ctx, caller, cmd)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, custody)
}

// InvalidateItem records a lot as lost or destroyed.
func (c *Contract) InvalidateItem(
	tctx contractapi.TransactionContextInterface, itemID, itemType string,
) (string, error) {
	const op = "InvalidateItem"

	cmd, err := commands.NewInvalidateItemCommand(itemType, itemID)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	custody, err := c.handlers.InvalidateItem.Handle(ctx, caller, cmd)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, custody)
}
