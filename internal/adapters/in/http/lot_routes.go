package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/lot"

	"github.com/labstack/echo/v4"
)

// ProduceIngredientLot handles POST /api/v1/ingredients.
func (s *Server) ProduceIngredientLot(c echo.Context) error {
	const op = "ProduceIngredientLot"

	var req ProduceIngredientRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewProduceIngredientLotCommand(
		req.ID, req.Name, req.Description, req.Code, req.LocationID, req.Parameters,
	)
	if err != nil {
		return s.fail(c, op, err)
	}

	created, err := s.handlers.ProduceIngredientLot.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusCreated, created)
}

// ManufactureProductLot handles POST /api/v1/products.
func (s *Server) ManufactureProductLot(c echo.Context) error {
	const op = "ManufactureProductLot"

	var req ManufactureProductRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewManufactureProductLotCommand(
		req.ID, req.Name, req.Description, req.Code, req.IngredientIDs, req.LocationID, req.Parameters,
	)
	if err != nil {
		return s.fail(c, op, err)
	}

	created, err := s.handlers.ManufactureProductLot.Handle(c.Request().Context(), callerOf(c), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusCreated, created)
}

// DeleteIngredient handles DELETE /api/v1/ingredients/:id.
func (s *Server) DeleteIngredient(c echo.Context) error {
	const op = "DeleteIngredient"

	cmd, err := commands.NewDeleteIngredientCommand(c.Param("id"))
	if err != nil {
		return s.fail(c, op, err)
	}

	if err = s.handlers.DeleteIngredient.Handle(c.Request().Context(), callerOf(c), cmd); err != nil {
		return s.fail(c, op, err)
	}
	return s.ok(c, op, http.StatusNoContent, nil)
}

func (s *Server) getLot(t lot.Type) echo.HandlerFunc {
	op := "Get" + typeName(t)
	return func(c echo.Context) error {
		query, err := queries.NewGetLotQuery(string(t), c.Param("id"))
		if err != nil {
			return s.fail(c, op, err)
		}

		found, err := s.handlers.GetLot.Handle(c.Request().Context(), query)
		if err != nil {
			return s.fail(c, op, err)
		}
		return s.ok(c, op, http.StatusOK, found)
	}
}

func (s *Server) getLotStatus(t lot.Type) echo.HandlerFunc {
	op := "Get" + typeName(t) + "Status"
	return func(c echo.Context) error {
		query, err := queries.NewGetLotQuery(string(t), c.Param("id"))
		if err != nil {
			return s.fail(c, op, err)
		}

		custody, err := s.handlers.GetLotStatus.Handle(c.Request().Context(), query)
		if err != nil {
			return s.fail(c, op, err)
		}
		return s.ok(c, op, http.StatusOK, custody)
	}
}

func (s *Server) getHistory(t lot.Type) echo.HandlerFunc {
	op := "GetHistoricalData" + typeName(t)
	return func(c echo.Context) error {
		query, err := queries.NewGetHistoryQuery(string(t), c.Param("id"))
		if err != nil {
			return s.fail(c, op, err)
		}

		entries, err := s.handlers.GetHistory.Handle(c.Request().Context(), query)
		if err != nil {
			return s.fail(c, op, err)
		}
		return s.ok(c, op, http.StatusOK, entries)
	}
}

func (s *Server) updateItemLocation(t lot.Type) echo.HandlerFunc {
	op := "Update" + typeName(t) + "Location"
	return func(c echo.Context) error {
		var req UpdateItemLocationRequest
		if err := bind(c, &req); err != nil {
			return s.fail(c, op, err)
		}

		cmd, err := commands.NewUpdateItemLocationCommand(string(t), c.Param("id"), req.LocationID)
		if err != nil {
			return s.fail(c, op, err)
		}

		custody, err := s.handlers.UpdateItemLocation.Handle(c.Request().Context(), callerOf(c), cmd)
		if err != nil {
			return s.fail(c, op, err)
		}
		return s.ok(c, op, http.StatusOK, custody)
	}
}

func (s *Server) updateItemParameters(t lot.Type) echo.HandlerFunc {
	op := "Update" + typeName(t) + "Parameters"
	return func(c echo.Context) error {
		cmd, err := commands.NewUpdateItemParametersCommand(string(t), c.Param("id"))
		if err != nil {
			return s.fail(c, op, err)
		}

		custody, err := s.handlers.UpdateItemParameters.Handle(c.Request().Context(), callerOf(c), cmd)
		if err != nil {
			return s.fail(c, op, err)
		}
		return s.ok(c, op, http.StatusOK, custody)
	}
}

func (s *Server) listItems(docType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		op := "List" + docType

		var req ListRequest
		if err := bind(c, &req); err != nil {
			return s.fail(c, op, err)
		}

		query, err := queries.NewListItemsQuery(docType, req.PageSize, req.Bookmark)
		if err != nil {
			return s.fail(c, op, err)
		}
		op = string(query.Operation())

		page, err := s.handlers.ListItems.Handle(c.Request().Context(), callerOf(c), query)
		if err != nil {
			return s.fail(c, op, err)
		}
		return s.ok(c, op, http.StatusOK, page)
	}
}

// typeName is the capitalized type used in operation names ("Ingredient").
func typeName(t lot.Type) string {
	noun := t.Noun()
	return string(noun[0]-'a'+'A') + noun[1:]
}
