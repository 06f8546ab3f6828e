package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateLocation handles POST /api/v1/locations.
func (s *Server) CreateLocation(c echo.Context) error {
	const op = "CreateLocation"

	var req CreateLocationRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewCreateLocationCommand(
		req.ID, req.Name, req.Type, req.Latitude, req.Longitude, req.Parameters,
	)
	if err != nil {
		return s.fail(c, op, err)
	}

	created, err := s.handlers.CreateLocation.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusCreated, created)
}

// GetLocation handles GET /api/v1/locations/:id.
func (s *Server) GetLocation(c echo.Context) error {
	const op = "GetLocation"

	query, err := queries.NewGetLocationQuery(c.Param("id"))
	if err != nil {
		return s.fail(c, op, err)
	}

	found, err := s.handlers.GetLocation.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusOK, found)
}

// UpdateLocationParameters handles PUT /api/v1/locations/:id/parameters.
func (s *Server) UpdateLocationParameters(c echo.Context) error {
	const op = "UpdateLocationParameters"

	var req UpdateParametersRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewUpdateLocationParametersCommand(c.Param("id"), req.Parameters)
	if err != nil {
		return s.fail(c, op, err)
	}

	updated, err := s.handlers.UpdateLocationParameters.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusOK, updated)
}

// UpdateLocationCoordinates handles PUT /api/v1/locations/:id/coordinates.
func (s *Server) UpdateLocationCoordinates(c echo.Context) error {
	const op = "UpdateLocationCoordinates"

	var req UpdateCoordinatesRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewUpdateLocationCoordinatesCommand(c.Param("id"), req.Latitude, req.Longitude)
	if err != nil {
		return s.fail(c, op, err)
	}

	updated, err := s.handlers.UpdateLocationCoordinates.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusOK, updated)
}
