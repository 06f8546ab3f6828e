// Package fabric binds the registry and the caller identity to a Hyperledger
// Fabric peer. The chaincode stub of the running transaction travels in the
// context.Context handed to the application handlers.
package fabric

import (
	"context"
	"errors"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// ErrNoStub is returned when a ledger call is made outside a chaincode invocation.
var ErrNoStub = errors.New("no chaincode stub in context")

type stubKey struct{}

// WithStub returns a context carrying the invocation's stub.
func WithStub(ctx context.Context, stub shim.ChaincodeStubInterface) context.Context {
	return context.WithValue(ctx, stubKey{}, stub)
}

// StubFrom extracts the stub stored by WithStub.
func StubFrom(ctx context.Context) (shim.ChaincodeStubInterface, error) {
	stub, ok := ctx.Value(stubKey{}).(shim.ChaincodeStubInterface)
	if !ok || stub == nil {
		return nil, ErrNoStub
	}
	return stub, nil
}
