// Package usecases assembles the command and query handlers that the inbound
// adapters dispatch to.
package usecases

import (
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"

	"go.uber.org/zap"
)

// Handlers is the full operation surface of the ledger.
type Handlers struct {
	ProduceIngredientLot      commands.ProduceIngredientLotCommandHandler
	ManufactureProductLot     commands.ManufactureProductLotCommandHandler
	CreateLocation            commands.CreateLocationCommandHandler
	UpdateLocationParameters  commands.UpdateLocationParametersCommandHandler
	UpdateLocationCoordinates commands.UpdateLocationCoordinatesCommandHandler
	StartShipment             commands.StartShipmentCommandHandler
	ShipmentStep              commands.ShipmentStepCommandHandler
	FinishShipment            commands.FinishShipmentCommandHandler
	ValidateFinishShipment    commands.ValidateFinishShipmentCommandHandler
	UpdateItemLocation        commands.UpdateItemLocationCommandHandler
	UpdateItemParameters      commands.UpdateItemParametersCommandHandler
	InvalidateItem            commands.InvalidateItemCommandHandler
	DeleteIngredient          commands.DeleteIngredientCommandHandler

	GetLot           queries.GetLotQueryHandler
	GetLotStatus     queries.GetLotStatusQueryHandler
	GetLocation      queries.GetLocationQueryHandler
	GetHistory       queries.GetHistoryQueryHandler
	ListItems        queries.ListItemsQueryHandler
	SummarizeCustody queries.SummarizeCustodyQueryHandler
}

// NewHandlers builds every handler over one ledger.
func NewHandlers(ledger ports.UnitOfWorkFactory, authz *services.Authorizer, logger *zap.Logger) Handlers {
	f := LedgerUoWFactory{Factory: ledger}

	return Handlers{
		ProduceIngredientLot:      commands.NewProduceIngredientLotCommandHandler(f, authz, logger),
		ManufactureProductLot:     commands.NewManufactureProductLotCommandHandler(f, authz, logger),
		CreateLocation:            commands.NewCreateLocationCommandHandler(f, authz, logger),
		UpdateLocationParameters:  commands.NewUpdateLocationParametersCommandHandler(f, authz, logger),
		UpdateLocationCoordinates: commands.NewUpdateLocationCoordinatesCommandHandler(f, authz, logger),
		StartShipment:             commands.NewStartShipmentCommandHandler(f, authz, logger),
		ShipmentStep:              commands.NewShipmentStepCommandHandler(f, authz, logger),
		FinishShipment:            commands.NewFinishShipmentCommandHandler(f, authz, logger),
		ValidateFinishShipment:    commands.NewValidateFinishShipmentCommandHandler(f, authz, logger),
		UpdateItemLocation:        commands.NewUpdateItemLocationCommandHandler(f, authz, logger),
		UpdateItemParameters:      commands.NewUpdateItemParametersCommandHandler(f, authz, logger),
		InvalidateItem:            commands.NewInvalidateItemCommandHandler(f, authz, logger),
		DeleteIngredient:          commands.NewDeleteIngredientCommandHandler(f, authz, logger),

		GetLot:           queries.NewGetLotQueryHandler(ledger),
		GetLotStatus:     queries.NewGetLotStatusQueryHandler(ledger),
		GetLocation:      queries.NewGetLocationQueryHandler(ledger),
		GetHistory:       queries.NewGetHistoryQueryHandler(ledger),
		ListItems:        queries.NewListItemsQueryHandler(ledger, authz),
		SummarizeCustody: queries.NewSummarizeCustodyQueryHandler(ledger),
	}
}

// LedgerUoWFactory narrows a ledger unit of work to the command side.
type LedgerUoWFactory struct {
	Factory ports.UnitOfWorkFactory
}

func (f LedgerUoWFactory) Create() commands.UoW {
	return f.Factory.Create()
}
