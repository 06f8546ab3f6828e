package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supplychain/cmd"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}
	if err = configs.ValidateForServer(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.NewForEnvironment(configs.Environment, configs.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	conn := configs.Connection()
	conn.Logger = logger.NewGormLogger(zl, logger.GormLevel(configs.LogLevel), 200*time.Millisecond)
	gormDB, ledger, err := postgres.Open(conn)
	if err != nil {
		log.Fatalf("Error connecting to the ledger database: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	app, err := cmd.NewCompositionRoot(configs, ledger, zl)
	if err != nil {
		log.Fatalf("Error wiring the application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, zl)
}

func startWebServer(app cmd.CompositionRoot, port string, zl *zap.Logger) {
	e := app.CreateEcho()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()
	zl.Info("http server started", zap.String("port", port))

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("http server shutdown", zap.Error(err))
	}
}
