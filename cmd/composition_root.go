package cmd

import (
	httpin "supplychain/internal/adapters/in/http"
	"supplychain/internal/core/application/usecases"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
	"supplychain/internal/jobs"
	"supplychain/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CompositionRoot struct {
	configs  Config
	handlers usecases.Handlers
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewCompositionRoot wires the use cases over ledger for the organizations
// in configs.
func NewCompositionRoot(configs Config, ledger ports.UnitOfWorkFactory, logger *zap.Logger) (CompositionRoot, error) {
	dir, err := configs.Directory()
	if err != nil {
		return CompositionRoot{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return CompositionRoot{
		configs:  configs,
		handlers: usecases.NewHandlers(ledger, services.NewAuthorizer(dir), logger),
		metrics:  metrics.New(),
		logger:   logger,
	}, nil
}

func (c *CompositionRoot) Handlers() usecases.Handlers {
	return c.handlers
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// CreateEcho builds the HTTP surface with its routes registered.
func (c *CompositionRoot) CreateEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	tokens := httpin.NewTokenService(c.configs.JWTSecret, c.configs.JWTIssuer)
	httpin.NewServer(c.handlers, tokens, c.metrics, c.logger).Register(e)
	return e
}

// CreateJobManager schedules the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	snapshot := jobs.NewCustodySnapshotJob(
		c.handlers.SummarizeCustody,
		c.metrics,
		c.configs.SnapshotSchedule,
		c.logger,
	)
	return jobs.NewJobManager(snapshot)
}
