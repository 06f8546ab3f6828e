// Package chaincode exposes the ledger operations as a Fabric contract.
//
// Every transaction function takes string-encoded arguments in the order the
// client SDKs already use, builds a command or query, and dispatches it with
// the stub and the submitter's certificate of the current invocation.
package chaincode

import (
	"context"
	"encoding/json"
	"errors"

	"supplychain/internal/adapters/out/fabric"
	"supplychain/internal/core/application/usecases"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"go.uber.org/zap"
)

// ContractName is the name the contract is registered under.
const ContractName = "supplychain"

// Contract is the custody ledger chaincode.
type Contract struct {
	contractapi.Contract

	handlers usecases.Handlers
	logger   *zap.Logger
}

func NewContract(handlers usecases.Handlers, logger *zap.Logger) *Contract {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Contract{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "chaincode")),
	}
	c.Name = ContractName
	c.Info.Title = "Supply chain custody ledger"
	c.Info.Version = "1.0.0"
	return c
}

// invocation binds a transaction context to the ledger and identity adapters.
func invocation(tctx contractapi.TransactionContextInterface) (context.Context, ports.Identity) {
	ctx := fabric.WithStub(context.Background(), tctx.GetStub())
	return ctx, fabric.NewClientIdentity(tctx.GetClientIdentity())
}

func (c *Contract) reject(op string, err error) error {
	c.logger.Debug("invocation rejected", zap.String("operation", op), zap.Error(err))
	return err
}

func (c *Contract) encode(op string, v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", c.reject(op, err)
	}
	return string(raw), nil
}

// found maps an absent record to an empty result, the way the ledger reports
// a missing key.
func (c *Contract) found(op string, v any, err error) (string, error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", nil
	}
	if err != nil {
		return "", c.reject(op, err)
	}
	return c.encode(op, v)
}
