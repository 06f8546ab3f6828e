package lot

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Type is the docType tag of a lot record.
type Type string

const (
	Ingredient Type = "INGREDIENT"
	Product    Type = "PRODUCT"
)

// ParseType accepts exactly "INGREDIENT" or "PRODUCT".
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case Ingredient, Product:
		return t, nil
	case "":
		return "", errs.NewValueIsRequiredError("itemType")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"itemType",
			fmt.Errorf("type must be %s or %s, got %q", Ingredient, Product, s),
		)
	}
}

func (t Type) String() string {
	return string(t)
}

// Noun is the lower-case word used in messages ("ingredient", "product").
func (t Type) Noun() string {
	switch t {
	case Ingredient:
		return "ingredient"
	case Product:
		return "product"
	default:
		return "item"
	}
}

// AllTypes lists the lot types.
func AllTypes() []Type {
	return []Type{Ingredient, Product}
}
