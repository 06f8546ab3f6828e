package fabric

import (
	"context"
	"encoding/json"
	"fmt"

	"supplychain/internal/core/ports"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

var _ ports.Ledger = StubLedger{}

// StubLedger implements ports.Ledger with the world state of the current
// transaction. Writes land in the transaction's write set; the peer validates
// and commits them when the invocation succeeds.
type StubLedger struct{}

func (StubLedger) GetState(ctx context.Context, key string) ([]byte, error) {
	stub, err := StubFrom(ctx)
	if err != nil {
		return nil, err
	}
	return stub.GetState(key)
}

func (StubLedger) PutState(ctx context.Context, key string, value []byte) error {
	stub, err := StubFrom(ctx)
	if err != nil {
		return err
	}
	return stub.PutState(key, value)
}

func (StubLedger) DelState(ctx context.Context, key string) error {
	stub, err := StubFrom(ctx)
	if err != nil {
		return err
	}
	return stub.DelState(key)
}

func (StubLedger) CreateCompositeKey(objectType string, attributes []string) (string, error) {
	return shim.CreateCompositeKey(objectType, attributes)
}

// QueryByDocType runs a rich query, which requires CouchDB as the state database.
func (StubLedger) QueryByDocType(
	ctx context.Context,
	docType string,
	pageSize int32,
	bookmark string,
) ([]ports.KV, ports.QueryMetadata, error) {
	stub, err := StubFrom(ctx)
	if err != nil {
		return nil, ports.QueryMetadata{}, err
	}

	query, err := docTypeSelector(docType)
	if err != nil {
		return nil, ports.QueryMetadata{}, err
	}

	it, meta, err := stub.GetQueryResultWithPagination(query, pageSize, bookmark)
	if err != nil {
		return nil, ports.QueryMetadata{}, err
	}
	defer it.Close()

	var kvs []ports.KV
	for it.HasNext() {
		kv, err := it.Next()
		if err != nil {
			return nil, ports.QueryMetadata{}, fmt.Errorf("iterate %s records: %w", docType, err)
		}
		kvs = append(kvs, ports.KV{Key: kv.GetKey(), Value: kv.GetValue()})
	}

	return kvs, ports.QueryMetadata{
		FetchedRecordsCount: meta.GetFetchedRecordsCount(),
		Bookmark:            meta.GetBookmark(),
	}, nil
}

func (StubLedger) GetHistoryForKey(ctx context.Context, key string) ([]ports.KeyModification, error) {
	stub, err := StubFrom(ctx)
	if err != nil {
		return nil, err
	}

	it, err := stub.GetHistoryForKey(key)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var mods []ports.KeyModification
	for it.HasNext() {
		m, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("iterate history: %w", err)
		}
		mod := ports.KeyModification{
			TxID:     m.GetTxId(),
			Value:    m.GetValue(),
			IsDelete: m.GetIsDelete(),
		}
		if ts := m.GetTimestamp(); ts != nil {
			mod.Timestamp = ts.AsTime()
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

func docTypeSelector(docType string) (string, error) {
	raw, err := json.Marshal(map[string]any{
		"selector": map[string]string{"docType": docType},
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
