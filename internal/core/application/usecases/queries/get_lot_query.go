// Package queries contains the read-only side of the ledger: single records,
// paginated listings, custody history and the custody summary. Queries never
// write, and apart from the listings they are not gated.
package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetLotQueryIsNotConstructed = errors.New(
		"GetLotQuery must be created via NewGetLotQuery constructor",
	)
	ErrGetLocationQueryIsNotConstructed = errors.New(
		"GetLocationQuery must be created via NewGetLocationQuery constructor",
	)
)

// GetLotQuery reads one lot. The same query serves the descriptive record
// (GetLotQueryHandler) and the custody record (GetLotStatusQueryHandler).
//
// Example:
//
//	query, err := NewGetLotQuery("INGREDIENT", "ING1")
//	if err != nil {
//	    return err
//	}
//	ingredient, err := NewGetLotQueryHandler(uowFactory).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such ingredient
//	}
type GetLotQuery struct {
	itemType lot.Type
	itemID   string

	guard guard.ConstructorGuard
}

func NewGetLotQuery(itemType, itemID string) (GetLotQuery, error) {
	t, typeErr := lot.ParseType(itemType)

	var idErr error
	if itemID == "" {
		idErr = errs.NewValueIsRequiredError("itemId")
	}

	if err := errors.Join(typeErr, idErr); err != nil {
		return GetLotQuery{}, err
	}

	return GetLotQuery{
		itemType: t,
		itemID:   itemID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetLotQuery) Validate() error {
	return q.guard.Validate(ErrGetLotQueryIsNotConstructed)
}

func (q GetLotQuery) ItemType() lot.Type {
	return q.itemType
}

func (q GetLotQuery) ItemID() string {
	return q.itemID
}

// GetLocationQuery reads one location.
type GetLocationQuery struct {
	locationID string

	guard guard.ConstructorGuard
}

func NewGetLocationQuery(locationID string) (GetLocationQuery, error) {
	if locationID == "" {
		return GetLocationQuery{}, errs.NewValueIsRequiredError("locationId")
	}
	return GetLocationQuery{locationID: locationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationQueryIsNotConstructed)
}

func (q GetLocationQuery) LocationID() string {
	return q.locationID
}
