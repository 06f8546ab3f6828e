package queries

import (
	"context"

	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// GetLotQueryHandler returns the descriptive record of a lot.
type GetLotQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetLotQueryHandler(uowFactory ports.UnitOfWorkFactory) GetLotQueryHandler {
	return GetLotQueryHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ObjectNotFoundError when the lot does not exist.
func (h GetLotQueryHandler) Handle(ctx context.Context, query GetLotQuery) (*lot.Lot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	l, err := h.uowFactory.Create().Registry().GetLot(ctx, query.ItemType(), query.ItemID())
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errs.NewObjectNotFoundError(query.ItemType().Noun(), query.ItemID())
	}
	return l, nil
}

// GetLotStatusQueryHandler returns the custody record of a lot.
type GetLotStatusQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetLotStatusQueryHandler(uowFactory ports.UnitOfWorkFactory) GetLotStatusQueryHandler {
	return GetLotStatusQueryHandler{uowFactory: uowFactory}
}

func (h GetLotStatusQueryHandler) Handle(ctx context.Context, query GetLotQuery) (*lot.Custody, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c, err := h.uowFactory.Create().Registry().GetCustody(ctx, query.ItemType(), query.ItemID())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errs.NewObjectNotFoundError(query.ItemType().Noun(), query.ItemID())
	}
	return c, nil
}

type GetLocationQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetLocationQueryHandler(uowFactory ports.UnitOfWorkFactory) GetLocationQueryHandler {
	return GetLocationQueryHandler{uowFactory: uowFactory}
}

func (h GetLocationQueryHandler) Handle(ctx context.Context, query GetLocationQuery) (*location.Location, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	l, err := h.uowFactory.Create().Registry().GetLocation(ctx, query.LocationID())
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errs.NewObjectNotFoundError("location", query.LocationID())
	}
	return l, nil
}
