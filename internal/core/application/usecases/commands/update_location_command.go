package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrUpdateLocationParametersCommandIsNotConstructed = errors.New(
		"UpdateLocationParametersCommand must be created via NewUpdateLocationParametersCommand constructor",
	)
	ErrUpdateLocationCoordinatesCommandIsNotConstructed = errors.New(
		"UpdateLocationCoordinatesCommand must be created via NewUpdateLocationCoordinatesCommand constructor",
	)
)

// UpdateLocationParametersCommand replaces the parameter map of a location.
type UpdateLocationParametersCommand struct {
	locationID string
	parameters kernel.Parameters

	guard guard.ConstructorGuard
}

func NewUpdateLocationParametersCommand(
	locationID string,
	parameters kernel.Parameters,
) (UpdateLocationParametersCommand, error) {
	if err := requireValue("locationId", locationID); err != nil {
		return UpdateLocationParametersCommand{}, err
	}

	return UpdateLocationParametersCommand{
		locationID: locationID,
		parameters: parameters.Clone(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLocationParametersCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationParametersCommandIsNotConstructed)
}

func (c UpdateLocationParametersCommand) LocationID() string {
	return c.locationID
}

func (c UpdateLocationParametersCommand) Parameters() kernel.Parameters {
	return c.parameters.Clone()
}

// UpdateLocationCoordinatesCommand moves a vehicle.
type UpdateLocationCoordinatesCommand struct {
	locationID  string
	coordinates kernel.Coordinates

	guard guard.ConstructorGuard
}

func NewUpdateLocationCoordinatesCommand(
	locationID string,
	latitude, longitude float64,
) (UpdateLocationCoordinatesCommand, error) {
	coordinates, coordinatesErr := kernel.NewCoordinates(latitude, longitude)
	if err := errors.Join(requireValue("locationId", locationID), coordinatesErr); err != nil {
		return UpdateLocationCoordinatesCommand{}, err
	}

	return UpdateLocationCoordinatesCommand{
		locationID:  locationID,
		coordinates: coordinates,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLocationCoordinatesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCoordinatesCommandIsNotConstructed)
}

func (c UpdateLocationCoordinatesCommand) LocationID() string {
	return c.locationID
}

func (c UpdateLocationCoordinatesCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}
