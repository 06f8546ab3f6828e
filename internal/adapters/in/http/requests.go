package http

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type ProduceIngredientRequest struct {
	ID          string            `json:"id"          validate:"required"`
	Name        string            `json:"name"        validate:"required"`
	Description string            `json:"description"`
	Code        string            `json:"code"`
	LocationID  string            `json:"locationId"  validate:"required"`
	Parameters  kernel.Parameters `json:"parameters"`
}

type ManufactureProductRequest struct {
	ID            string            `json:"id"            validate:"required"`
	Name          string            `json:"name"          validate:"required"`
	Description   string            `json:"description"`
	Code          string            `json:"code"`
	IngredientIDs []string          `json:"ingredients"   validate:"required,min=1,dive,required"`
	LocationID    string            `json:"locationId"    validate:"required"`
	Parameters    kernel.Parameters `json:"parameters"`
}

type CreateLocationRequest struct {
	ID         string            `json:"id"         validate:"required"`
	Name       string            `json:"name"       validate:"required"`
	Type       string            `json:"type"       validate:"required"`
	Latitude   float64           `json:"latitude"   validate:"gte=-90,lte=90"`
	Longitude  float64           `json:"longitude"  validate:"gte=-180,lte=180"`
	Parameters kernel.Parameters `json:"parameters"`
}

type UpdateParametersRequest struct {
	Parameters kernel.Parameters `json:"parameters"`
}

type UpdateCoordinatesRequest struct {
	Latitude  float64 `json:"latitude"  validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type UpdateItemLocationRequest struct {
	LocationID string `json:"locationId" validate:"required"`
}

// ItemRequest names a lot by type and id.
type ItemRequest struct {
	ItemType string `json:"itemType" validate:"required,oneof=INGREDIENT PRODUCT"`
	ItemID   string `json:"itemId"   validate:"required"`
}

type StartShipmentRequest struct {
	ItemRequest
	CourierID     string `json:"courierId"     validate:"required"`
	OriginID      string `json:"originId"      validate:"required"`
	DestinationID string `json:"destinationId" validate:"required"`
}

type ShipmentStepRequest struct {
	ItemRequest
	CourierID  string `json:"courierId"  validate:"required"`
	LocationID string `json:"locationId" validate:"required"`
}

type FinishShipmentRequest struct {
	ItemRequest
	ReceiverID string `json:"receiverId" validate:"required"`
	LocationID string `json:"locationId" validate:"required"`
}

type ListRequest struct {
	PageSize int32  `query:"pageSize" validate:"gte=0"`
	Bookmark string `query:"bookmark"`
}

// bind decodes and validates a request body. Decoding failures are reported
// as invalid values so they map to 400 like every other bad argument.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(req)
}
