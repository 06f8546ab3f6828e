package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// StartShipment handles POST /api/v1/shipments/start.
func (s *Server) StartShipment(c echo.Context) error {
	const op = "StartShipment"

	var req StartShipmentRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewStartShipmentCommand(req.ItemType, req.ItemID, req.CourierID, req.OriginID, req.DestinationID)
	if err != nil {
		return s.fail(c, op, err)
	}

	custody, err := s.handlers.StartShipment.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusOK, custody)
}

// ShipmentStep handles POST /api/v1/shipments/step.
func (s *Server) ShipmentStep(c echo.Context) error {
	const op = "ShipmentStep"

	var req ShipmentStepRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewShipmentStepCommand(req.ItemType, req.ItemID, req.CourierID, req.LocationID)
	if err != nil {
		return s.fail(c, op, err)
	}

	custody, err := s.handlers.ShipmentStep.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusOK, custody)
}

// FinishShipment handles POST /api/v1/shipments/finish.
func (s *Server) FinishShipment(c echo.Context) error {
	const op = "FinishShipment"

	var req FinishShipmentRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewFinishShipmentCommand(req.ItemType, req.ItemID, req.ReceiverID, req.LocationID)
	if err != nil {
		return s.fail(c, op, err)
	}

	custody, err := s.handlers.FinishShipment.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusOK, custody)
}

// ValidateFinishShipment handles POST /api/v1/shipments/validate.
func (s *Server) ValidateFinishShipment(c echo.Context) error {
	const op = "ValidateFinishShipment"

	var req ItemRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewValidateFinishShipmentCommand(req.ItemType, req.ItemID)
	if err != nil {
		return s.fail(c, op, err)
	}

	custody, err := s.handlers.ValidateFinishShipment.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusOK, custody)
}

// InvalidateItem handles POST /api/v1/invalidations.
func (s *Server) InvalidateItem(c echo.Context) error {
	const op = "InvalidateItem"

	var req ItemRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewInvalidateItemCommand(req.ItemType, req.ItemID)
	if err != nil {
		return s.fail(c, op, err)
	}

	custody, err := s.handlers.InvalidateItem.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusOK, custody)
}
