package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrProduceIngredientLotCommandIsNotConstructed = errors.New(
	"ProduceIngredientLotCommand must be created via NewProduceIngredientLotCommand constructor",
)

// ProduceIngredientLotCommand registers a new ingredient lot held by the
// producing organization at an existing location.
//
// Example:
//
//	params, _ := kernel.ParseParameters(`{"temperature": 4}`)
//	cmd, err := NewProduceIngredientLotCommand("ING1", "Lettuce", "Iceberg", "L-2024-01", "FARM1", params)
//	if err != nil {
//	    return err
//	}
//	ingredient, err := handler.Handle(ctx, caller, cmd)
type ProduceIngredientLotCommand struct {
	ingredientID string
	name         string
	description  string
	code         string
	locationID   string
	parameters   kernel.Parameters

	guard guard.ConstructorGuard
}

func NewProduceIngredientLotCommand(
	ingredientID, name, description, code, locationID string,
	parameters kernel.Parameters,
) (ProduceIngredientLotCommand, error) {
	if err := errors.Join(
		requireValue("ingredientId", ingredientID),
		requireValue("locationId", locationID),
	); err != nil {
		return ProduceIngredientLotCommand{}, err
	}

	return ProduceIngredientLotCommand{
		ingredientID: ingredientID,
		name:         name,
		description:  description,
		code:         code,
		locationID:   locationID,
		parameters:   parameters.Clone(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ProduceIngredientLotCommand) Validate() error {
	return c.guard.Validate(ErrProduceIngredientLotCommandIsNotConstructed)
}

func (c ProduceIngredientLotCommand) IngredientID() string {
	return c.ingredientID
}

func (c ProduceIngredientLotCommand) Name() string {
	return c.name
}

func (c ProduceIngredientLotCommand) Description() string {
	return c.description
}

// Code returns the producer's own lot code.
func (c ProduceIngredientLotCommand) Code() string {
	return c.code
}

func (c ProduceIngredientLotCommand) LocationID() string {
	return c.locationID
}

func (c ProduceIngredientLotCommand) Parameters() kernel.Parameters {
	return c.parameters.Clone()
}
