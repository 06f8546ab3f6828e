package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/pkg/guard"
)

var (
	ErrUpdateItemLocationCommandIsNotConstructed = errors.New(
		"UpdateItemLocationCommand must be created via NewUpdateItemLocationCommand constructor",
	)
	ErrUpdateItemParametersCommandIsNotConstructed = errors.New(
		"UpdateItemParametersCommand must be created via NewUpdateItemParametersCommand constructor",
	)
	ErrInvalidateItemCommandIsNotConstructed = errors.New(
		"InvalidateItemCommand must be created via NewInvalidateItemCommand constructor",
	)
	ErrDeleteIngredientCommandIsNotConstructed = errors.New(
		"DeleteIngredientCommand must be created via NewDeleteIngredientCommand constructor",
	)
)

// UpdateItemLocationCommand records that a lot moved to another known location
// without changing its status or holder.
type UpdateItemLocationCommand struct {
	itemRef
	locationID string

	guard guard.ConstructorGuard
}

func NewUpdateItemLocationCommand(itemType, itemID, locationID string) (UpdateItemLocationCommand, error) {
	ref, refErr := newItemRef(itemType, itemID)
	if err := errors.Join(refErr, requireValue("locationId", locationID)); err != nil {
		return UpdateItemLocationCommand{}, err
	}

	return UpdateItemLocationCommand{
		itemRef:    ref,
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateItemLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemLocationCommandIsNotConstructed)
}

func (c UpdateItemLocationCommand) LocationID() string {
	return c.locationID
}

// UpdateItemParametersCommand copies the parameters of the lot's current
// location onto its custody record.
type UpdateItemParametersCommand struct {
	itemRef

	guard guard.ConstructorGuard
}

func NewUpdateItemParametersCommand(itemType, itemID string) (UpdateItemParametersCommand, error) {
	ref, err := newItemRef(itemType, itemID)
	if err != nil {
		return UpdateItemParametersCommand{}, err
	}

	return UpdateItemParametersCommand{
		itemRef: ref,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateItemParametersCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemParametersCommandIsNotConstructed)
}

// InvalidateItemCommand marks a lot as lost or destroyed.
type InvalidateItemCommand struct {
	itemRef

	guard guard.ConstructorGuard
}

func NewInvalidateItemCommand(itemType, itemID string) (InvalidateItemCommand, error) {
	ref, err := newItemRef(itemType, itemID)
	if err != nil {
		return InvalidateItemCommand{}, err
	}

	return InvalidateItemCommand{
		itemRef: ref,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c InvalidateItemCommand) Validate() error {
	return c.guard.Validate(ErrInvalidateItemCommandIsNotConstructed)
}

// DeleteIngredientCommand removes an ingredient lot from the ledger.
type DeleteIngredientCommand struct {
	itemRef

	guard guard.ConstructorGuard
}

func NewDeleteIngredientCommand(ingredientID string) (DeleteIngredientCommand, error) {
	if err := requireValue("ingredientId", ingredientID); err != nil {
		return DeleteIngredientCommand{}, err
	}

	return DeleteIngredientCommand{
		itemRef: itemRef{itemType: lot.Ingredient, itemID: ingredientID},
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteIngredientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteIngredientCommandIsNotConstructed)
}
