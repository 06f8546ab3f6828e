package chaincode

import (
	"fmt"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/location"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// CreateLocation registers a location held by the calling organization.
func (c *Contract) CreateLocation(
	tctx contractapi.TransactionContextInterface,
	locationID, name, kind string,
	latitude, longitude float64,
	parameters string,
) (string, error) {
	const op = "CreateLocation"

	params, err := kernel.ParseParameters(parameters)
	if err != nil {
		return "", c.reject(op, err)
	}
	cmd, err := commands.NewCreateLocationCommand(locationID, name, kind, latitude, longitude, params)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	created, err := c.handlers.CreateLocation.Handle(ctx, caller, cmd)
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, created)
}

func (c *Contract) GetLocation(tctx contractapi.TransactionContextInterface, locationID string) (string, error) {
	const op = "GetLocation"

	query, err := queries.NewGetLocationQuery(locationID)
	if err != nil {
		return "", c.reject(op, err)
	}
	ctx, _ := invocation(tctx)
	found, err := c.handlers.GetLocation.Handle(ctx, query)
	return c.found(op, found, err)
}

func (c *Contract) ListLocations(
	tctx contractapi.TransactionContextInterface, pageSize int32, bookmark string,
) (string, error) {
	return c.list(tctx, location.DocType, pageSize, bookmark)
}

func (c *Contract) UpdateLocationParameters(
	tctx contractapi.TransactionContextInterface, locationID, parameters string,
) (string, error) {
	const op = "UpdateLocationParameters"

	params, err := kernel.ParseParameters(parameters)
	if err != nil {
		return "", c.reject(op, err)
	}
	cmd, err := commands.NewUpdateLocationParametersCommand(locationID, params)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	if _, err = c.handlers.UpdateLocationParameters.Handle(ctx, caller, cmd); err != nil {
		return "", c.reject(op, err)
	}
	return fmt.Sprintf("parameters of location with id %s changed", locationID), nil
}

// UpdateLocationCoordinates moves a vehicle.
func (c *Contract) UpdateLocationCoordinates(
	tctx contractapi.TransactionContextInterface, locationID string, latitude, longitude float64,
) (string, error) {
	const op = "UpdateLocationCoordinates"

	cmd, err := commands.NewUpdateLocationCoordinatesCommand(locationID, latitude, longitude)
	if err != nil {
		return "", c.reject(op, err)
	}

	ctx, caller := invocation(tctx)
	if _, err = c.handlers.UpdateLocationCoordinates.Handle(ctx, caller, cmd); err != nil {
		return "", c.reject(op, err)
	}
	return fmt.Sprintf("coordinates of location with id %s changed", locationID), nil
}
