package ports

import (
	"context"
	"time"
)

// Ledger is the versioned key-value store the registry writes to. In a chaincode
// deployment it is the peer's world state; standalone it is a relational table.
//
// Writes made through a Ledger become visible to other invocations only when the
// surrounding UnitOfWork commits. Conflicting concurrent writes are detected by the
// implementation, not by callers.
type Ledger interface {
	// GetState returns the value stored under key, or nil when there is none.
	GetState(ctx context.Context, key string) ([]byte, error)

	// PutState stores value under key.
	PutState(ctx context.Context, key string, value []byte) error

	// DelState removes key. Deleting a missing key is not an error.
	DelState(ctx context.Context, key string) error

	// CreateCompositeKey joins objectType and attributes into a single key.
	CreateCompositeKey(objectType string, attributes []string) (string, error)

	// QueryByDocType returns one page of records whose JSON "docType" equals docType,
	// in key order, resuming after bookmark.
	QueryByDocType(ctx context.Context, docType string, pageSize int32, bookmark string) ([]KV, QueryMetadata, error)

	// GetHistoryForKey returns every committed modification of key.
	GetHistoryForKey(ctx context.Context, key string) ([]KeyModification, error)
}

// KV is one record of a query result.
type KV struct {
	Key   string
	Value []byte
}

// QueryMetadata describes a result page. Bookmark is empty after the last page.
type QueryMetadata struct {
	FetchedRecordsCount int32
	Bookmark            string
}

// KeyModification is one entry of a key's history.
type KeyModification struct {
	TxID      string
	Timestamp time.Time
	Value     []byte
	IsDelete  bool
}
