// Package ledgerrepo stores ledger state and its history in two relational tables,
// giving the registry the same key/value semantics a Fabric peer offers.
package ledgerrepo

import (
	"encoding/json"
	"time"

	"supplychain/internal/core/ports"
)

// StateDTO is the current value of one ledger key. Keys are stored as bytes
// because composite keys contain U+0000 separators.
type StateDTO struct {
	Key     []byte `gorm:"column:state_key;primaryKey"`
	DocType string `gorm:"size:64;index"`
	Value   []byte
	Version int64
	TxID    string `gorm:"size:64"`
}

func (StateDTO) TableName() string {
	return "ledger_states"
}

// HistoryDTO is one committed write or delete of a key.
type HistoryDTO struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Key       []byte `gorm:"column:state_key;index"`
	TxID      string `gorm:"size:64"`
	Timestamp time.Time
	Value     []byte
	IsDelete  bool
}

func (HistoryDTO) TableName() string {
	return "ledger_history"
}

// Models lists the tables to migrate.
func Models() []any {
	return []any{&StateDTO{}, &HistoryDTO{}}
}

// docTypeOf extracts the "docType" field of a JSON object. Values that are not
// JSON objects (presence markers) have no docType.
func docTypeOf(value []byte) string {
	var doc struct {
		DocType string `json:"docType"`
	}
	if err := json.Unmarshal(value, &doc); err != nil {
		return ""
	}
	return doc.DocType
}

func toKV(dto StateDTO) ports.KV {
	return ports.KV{Key: string(dto.Key), Value: dto.Value}
}

func toKeyModification(dto HistoryDTO) ports.KeyModification {
	return ports.KeyModification{
		TxID:      dto.TxID,
		Timestamp: dto.Timestamp,
		Value:     dto.Value,
		IsDelete:  dto.IsDelete,
	}
}
