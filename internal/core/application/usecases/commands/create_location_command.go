package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand registers a warehouse, vehicle or other place that can
// hold lots. The calling organization becomes its holder.
type CreateLocationCommand struct {
	locationID  string
	name        string
	kind        location.Kind
	coordinates kernel.Coordinates
	parameters  kernel.Parameters

	guard guard.ConstructorGuard
}

func NewCreateLocationCommand(
	locationID, name, kind string,
	latitude, longitude float64,
	parameters kernel.Parameters,
) (CreateLocationCommand, error) {
	coordinates, coordinatesErr := kernel.NewCoordinates(latitude, longitude)

	var kindErr error
	if kind == "" {
		kindErr = errs.NewValueIsRequiredError("type")
	}

	if err := errors.Join(
		requireValue("locationId", locationID),
		kindErr,
		coordinatesErr,
	); err != nil {
		return CreateLocationCommand{}, err
	}

	return CreateLocationCommand{
		locationID:  locationID,
		name:        name,
		kind:        location.Kind(kind),
		coordinates: coordinates,
		parameters:  parameters.Clone(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

func (c CreateLocationCommand) LocationID() string {
	return c.locationID
}

func (c CreateLocationCommand) Name() string {
	return c.name
}

func (c CreateLocationCommand) Kind() location.Kind {
	return c.kind
}

func (c CreateLocationCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}

func (c CreateLocationCommand) Parameters() kernel.Parameters {
	return c.parameters.Clone()
}
