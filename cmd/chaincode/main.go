package main

import (
	"os"

	"supplychain/cmd"
	"supplychain/internal/adapters/in/chaincode"
	"supplychain/internal/adapters/out/fabric"
	"supplychain/internal/core/application/usecases"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/logger"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := cmd.ConfigFromEnv(os.Getenv)

	dir, err := configs.Directory()
	if err != nil {
		log.Fatalf("Invalid organization directory: %v", err)
	}

	zl, err := logger.New(logger.Config{Level: configs.LogLevel, Format: "json", Output: "stderr"})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	handlers := usecases.NewHandlers(fabric.NewUnitOfWorkFactory(), services.NewAuthorizer(dir), zl)

	cc, err := contractapi.NewChaincode(chaincode.NewContract(handlers, zl))
	if err != nil {
		log.Fatalf("Error creating supplychain chaincode: %v", err)
	}
	if err := cc.Start(); err != nil {
		log.Fatalf("Error starting supplychain chaincode: %v", err)
	}
}
