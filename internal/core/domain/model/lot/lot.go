package lot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// ErrLotIsNotConstructed is returned when a Lot did not come from NewIngredient,
// NewProduct or FromRecord.
var ErrLotIsNotConstructed = errors.New("Lot must be created via NewIngredient, NewProduct or FromRecord")

// Lot is the descriptive record of an ingredient or product batch.
//
// A Lot is immutable once created: it carries the data printed on the batch
// (name, description, lot code), the organization that brought it into being
// and, for products, the ordered list of ingredient lots consumed to make it.
// Custody moves are recorded on the companion Custody, never here.
type Lot struct {
	lotType     Type
	id          string
	name        string
	description string
	code        string

	// origin is the producer of an ingredient or the manufacturer of a product.
	origin kernel.OrgID

	// ingredients is set for products only.
	ingredients []string

	guard guard.ConstructorGuard
}

// NewIngredient creates the descriptive record of a freshly produced ingredient lot.
func NewIngredient(id, name, description, code string, producer kernel.OrgID) (*Lot, error) {
	l := &Lot{
		lotType:     Ingredient,
		description: description,
		code:        code,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
		l.setOrigin(producer),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// NewProduct creates the descriptive record of a product manufactured from ingredients.
// The ingredient list must be non-empty and free of duplicates; its order is kept.
func NewProduct(
	id, name, description, code string,
	manufacturer kernel.OrgID,
	ingredients []string,
) (*Lot, error) {
	l := &Lot{
		lotType:     Product,
		description: description,
		code:        code,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
		l.setOrigin(manufacturer),
		l.setIngredients(ingredients),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// FromRecord restores a Lot read back from the ledger.
func FromRecord(r Record) (*Lot, error) {
	switch r.DocType {
	case Ingredient:
		return NewIngredient(r.ID, r.Name, r.Description, r.Lot, r.ProducerID)
	case Product:
		return NewProduct(r.ID, r.Name, r.Description, r.Lot, r.ManufacturerID, r.Ingredients)
	default:
		_, err := ParseType(string(r.DocType))
		return nil, err
	}
}

func (l *Lot) Validate() error {
	if l == nil {
		return ErrLotIsNotConstructed
	}
	return l.guard.Validate(ErrLotIsNotConstructed)
}

func (l *Lot) Type() Type {
	return l.lotType
}

func (l *Lot) ID() string {
	return l.id
}

func (l *Lot) Name() string {
	return l.name
}

func (l *Lot) Description() string {
	return l.description
}

// Code is the batch code printed on the lot.
func (l *Lot) Code() string {
	return l.code
}

// Origin is the organization that produced or manufactured the lot.
func (l *Lot) Origin() kernel.OrgID {
	return l.origin
}

// Ingredients returns a copy of the ingredient ids of a product.
func (l *Lot) Ingredients() []string {
	if l.ingredients == nil {
		return nil
	}
	out := make([]string, len(l.ingredients))
	copy(out, l.ingredients)
	return out
}

// Record returns the wire form stored on the ledger.
func (l *Lot) Record() Record {
	r := Record{
		DocType:     l.lotType,
		ID:          l.id,
		Name:        l.name,
		Description: l.description,
		Lot:         l.code,
	}
	switch l.lotType {
	case Ingredient:
		r.ProducerID = l.origin
	case Product:
		r.ManufacturerID = l.origin
		r.Ingredients = l.Ingredients()
	}
	return r
}

func (l *Lot) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Record())
}

func (l *Lot) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError(l.lotType.Noun() + "Id")
	}
	l.id = id
	return nil
}

func (l *Lot) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Lot) setOrigin(org kernel.OrgID) error {
	if org == "" {
		if l.lotType == Product {
			return errs.NewValueIsRequiredError("manufacturerId")
		}
		return errs.NewValueIsRequiredError("producerId")
	}
	l.origin = org
	return nil
}

func (l *Lot) setIngredients(ingredients []string) error {
	if len(ingredients) == 0 {
		return errs.NewValueIsRequiredError("ingredients")
	}

	seen := make(map[string]struct{}, len(ingredients))
	for _, id := range ingredients {
		if strings.TrimSpace(id) == "" {
			return errs.NewValueIsInvalidErrorWithCause("ingredients", errors.New("blank ingredient id"))
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"ingredients",
				fmt.Errorf("ingredient %s is listed more than once", id),
			)
		}
		seen[id] = struct{}{}
	}

	l.ingredients = make([]string, len(ingredients))
	copy(l.ingredients, ingredients)
	return nil
}

// Record is the JSON form of a Lot on the ledger.
type Record struct {
	DocType        Type         `json:"docType"`
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Lot            string       `json:"lot"`
	ProducerID     kernel.OrgID `json:"producerId,omitempty"`
	ManufacturerID kernel.OrgID `json:"manufacturerId,omitempty"`
	Ingredients    []string     `json:"ingredients,omitempty"`
}
