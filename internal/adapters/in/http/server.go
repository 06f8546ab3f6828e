package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases"
	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server translates HTTP requests into commands and queries and their results
// into JSON responses.
type Server struct {
	handlers usecases.Handlers
	tokens   *TokenService
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers usecases.Handlers, tokens *TokenService, m *metrics.Metrics, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		metrics:  m,
		logger:   logger.With(zap.String("component", "http")),
	}
}

// Register mounts the health and metrics endpoints and the authenticated API.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := e.Group("/api/v1", Authenticate(s.tokens))

	for _, t := range lot.AllTypes() {
		items := api.Group(collectionOf(t))
		items.GET("", s.listItems(string(t)))
		items.GET("/:id", s.getLot(t))
		items.GET("/:id/status", s.getLotStatus(t))
		items.GET("/:id/history", s.getHistory(t))
		items.PUT("/:id/location", s.updateItemLocation(t))
		items.PUT("/:id/parameters", s.updateItemParameters(t))
	}
	api.POST("/ingredients", s.ProduceIngredientLot)
	api.DELETE("/ingredients/:id", s.DeleteIngredient)
	api.POST("/products", s.ManufactureProductLot)

	api.POST("/locations", s.CreateLocation)
	api.GET("/locations", s.listItems(location.DocType))
	api.GET("/locations/:id", s.GetLocation)
	api.PUT("/locations/:id/parameters", s.UpdateLocationParameters)
	api.PUT("/locations/:id/coordinates", s.UpdateLocationCoordinates)

	api.POST("/shipments/start", s.StartShipment)
	api.POST("/shipments/step", s.ShipmentStep)
	api.POST("/shipments/finish", s.FinishShipment)
	api.POST("/shipments/validate", s.ValidateFinishShipment)
	api.POST("/invalidations", s.InvalidateItem)
}

func collectionOf(t lot.Type) string {
	return "/" + t.Noun() + "s"
}
