package commands

import (
	"errors"
	"slices"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrManufactureProductLotCommandIsNotConstructed = errors.New(
	"ManufactureProductLotCommand must be created via NewManufactureProductLotCommand constructor",
)

// ManufactureProductLotCommand turns validated ingredient lots at one location
// into a new product lot. The ingredient order is kept on the product record.
type ManufactureProductLotCommand struct {
	productID     string
	name          string
	description   string
	code          string
	ingredientIDs []string
	locationID    string
	parameters    kernel.Parameters

	guard guard.ConstructorGuard
}

func NewManufactureProductLotCommand(
	productID, name, description, code string,
	ingredientIDs []string,
	locationID string,
	parameters kernel.Parameters,
) (ManufactureProductLotCommand, error) {
	var ingredientsErr error
	if len(ingredientIDs) == 0 {
		ingredientsErr = errs.NewValueIsRequiredError("ingredients")
	}

	if err := errors.Join(
		requireValue("productId", productID),
		requireValue("locationId", locationID),
		ingredientsErr,
	); err != nil {
		return ManufactureProductLotCommand{}, err
	}

	return ManufactureProductLotCommand{
		productID:     productID,
		name:          name,
		description:   description,
		code:          code,
		ingredientIDs: slices.Clone(ingredientIDs),
		locationID:    locationID,
		parameters:    parameters.Clone(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ManufactureProductLotCommand) Validate() error {
	return c.guard.Validate(ErrManufactureProductLotCommandIsNotConstructed)
}

func (c ManufactureProductLotCommand) ProductID() string {
	return c.productID
}

func (c ManufactureProductLotCommand) Name() string {
	return c.name
}

func (c ManufactureProductLotCommand) Description() string {
	return c.description
}

func (c ManufactureProductLotCommand) Code() string {
	return c.code
}

// IngredientIDs returns a copy of the ingredient ids in request order.
func (c ManufactureProductLotCommand) IngredientIDs() []string {
	return slices.Clone(c.ingredientIDs)
}

func (c ManufactureProductLotCommand) LocationID() string {
	return c.locationID
}

func (c ManufactureProductLotCommand) Parameters() kernel.Parameters {
	return c.parameters.Clone()
}
