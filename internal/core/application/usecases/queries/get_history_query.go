package queries

import (
	"context"
	"errors"
	"slices"
	"time"

	"supplychain/internal/core/ports"
)

var ErrGetHistoryQueryIsNotConstructed = errors.New(
	"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
)

// GetHistoryQuery asks for every committed version of a lot's custody record.
type GetHistoryQuery struct {
	GetLotQuery
}

func NewGetHistoryQuery(itemType, itemID string) (GetHistoryQuery, error) {
	q, err := NewGetLotQuery(itemType, itemID)
	if err != nil {
		return GetHistoryQuery{}, err
	}
	return GetHistoryQuery{GetLotQuery: q}, nil
}

func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// HistoryEntry is one version of a custody record. Value holds the decoded
// JSON record, or the raw text when it is not JSON.
type HistoryEntry struct {
	TxID      string    `json:"TxId"`
	Timestamp time.Time `json:"Timestamp"`
	Value     any       `json:"Value"`
}

type GetHistoryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetHistoryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{uowFactory: uowFactory}
}

// Handle returns the versions oldest first. Deletions and other empty values
// are skipped. A lot with no history yields an empty slice.
func (h GetHistoryQueryHandler) Handle(ctx context.Context, query GetHistoryQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	modifications, err := h.uowFactory.Create().Registry().StatusHistory(ctx, query.ItemType(), query.ItemID())
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(modifications))
	for _, m := range modifications {
		if len(m.Value) == 0 {
			continue
		}
		entries = append(entries, HistoryEntry{
			TxID:      m.TxID,
			Timestamp: m.Timestamp,
			Value:     decodeValue(m.Value),
		})
	}

	slices.SortStableFunc(entries, func(a, b HistoryEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return entries, nil
}
