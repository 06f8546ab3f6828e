package ledgerrepo

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"gorm.io/gorm"
)

var _ ports.Ledger = (*GormLedger)(nil)

// GormLedger implements ports.Ledger on a GORM connection. Every write updates
// ledger_states and appends to ledger_history under the same transaction id,
// so history is only ever as durable as the state it describes.
type GormLedger struct {
	db        *gorm.DB
	txID      string
	timestamp time.Time
}

// NewGormLedger binds a ledger to db (usually an open transaction). txID and
// timestamp stamp every history entry written through it.
func NewGormLedger(db *gorm.DB, txID string, timestamp time.Time) *GormLedger {
	return &GormLedger{
		db:        db,
		txID:      txID,
		timestamp: timestamp,
	}
}

func (l *GormLedger) GetState(ctx context.Context, key string) ([]byte, error) {
	var dto StateDTO
	err := l.db.WithContext(ctx).Where("state_key = ?", []byte(key)).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dto.Value, nil
}

func (l *GormLedger) PutState(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	db := l.db.WithContext(ctx)

	var dto StateDTO
	err := db.Where("state_key = ?", []byte(key)).Take(&dto).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		dto = StateDTO{
			Key:     []byte(key),
			DocType: docTypeOf(value),
			Value:   value,
			Version: 1,
			TxID:    l.txID,
		}
		if err := db.Create(&dto).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		result := db.Model(&StateDTO{}).
			Where("state_key = ? AND version = ?", dto.Key, dto.Version).
			Updates(map[string]any{
				"doc_type": docTypeOf(value),
				"value":    value,
				"version":  dto.Version + 1,
				"tx_id":    l.txID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewStateIsInvalidErrorWithCause("key", errors.New("concurrent modification"))
		}
	}

	return l.appendHistory(db, key, value, false)
}

func (l *GormLedger) DelState(ctx context.Context, key string) error {
	db := l.db.WithContext(ctx)

	result := db.Where("state_key = ?", []byte(key)).Delete(&StateDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nil
	}
	return l.appendHistory(db, key, nil, true)
}

// CreateCompositeKey uses the peer's encoding so that keys written here can be
// migrated to a chaincode deployment unchanged.
func (l *GormLedger) CreateCompositeKey(objectType string, attributes []string) (string, error) {
	return shim.CreateCompositeKey(objectType, attributes)
}

func (l *GormLedger) QueryByDocType(
	ctx context.Context,
	docType string,
	pageSize int32,
	bookmark string,
) ([]ports.KV, ports.QueryMetadata, error) {
	if pageSize <= 0 {
		return nil, ports.QueryMetadata{}, errs.NewValueIsInvalidErrorWithCause(
			"pageSize",
			fmt.Errorf("page size must be positive, got %d", pageSize),
		)
	}

	after, err := hex.DecodeString(bookmark)
	if err != nil {
		return nil, ports.QueryMetadata{}, errs.NewValueIsInvalidErrorWithCause("bookmark", err)
	}

	query := l.db.WithContext(ctx).Where("doc_type = ?", docType)
	if len(after) > 0 {
		query = query.Where("state_key > ?", after)
	}

	var dtos []StateDTO
	if err := query.Order("state_key").Limit(int(pageSize)).Find(&dtos).Error; err != nil {
		return nil, ports.QueryMetadata{}, err
	}

	kvs := make([]ports.KV, 0, len(dtos))
	for _, dto := range dtos {
		kvs = append(kvs, toKV(dto))
	}

	meta := ports.QueryMetadata{FetchedRecordsCount: int32(len(kvs))}
	if len(dtos) == int(pageSize) {
		meta.Bookmark = hex.EncodeToString(dtos[len(dtos)-1].Key)
	}
	return kvs, meta, nil
}

func (l *GormLedger) GetHistoryForKey(ctx context.Context, key string) ([]ports.KeyModification, error) {
	var dtos []HistoryDTO
	err := l.db.WithContext(ctx).
		Where("state_key = ?", []byte(key)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	mods := make([]ports.KeyModification, 0, len(dtos))
	for _, dto := range dtos {
		mods = append(mods, toKeyModification(dto))
	}
	return mods, nil
}

func (l *GormLedger) appendHistory(db *gorm.DB, key string, value []byte, isDelete bool) error {
	return db.Create(&HistoryDTO{
		Key:       []byte(key),
		TxID:      l.txID,
		Timestamp: l.timestamp,
		Value:     value,
		IsDelete:  isDelete,
	}).Error
}
