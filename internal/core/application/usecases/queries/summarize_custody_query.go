package queries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/guard"
)

const summaryPageSize int32 = 100

var ErrSummarizeCustodyQueryIsNotConstructed = errors.New(
	"SummarizeCustodyQuery must be created via NewSummarizeCustodyQuery constructor",
)

// SummarizeCustodyQuery counts the lots of one type per custody status.
type SummarizeCustodyQuery struct {
	itemType lot.Type

	guard guard.ConstructorGuard
}

func NewSummarizeCustodyQuery(itemType string) (SummarizeCustodyQuery, error) {
	t, err := lot.ParseType(itemType)
	if err != nil {
		return SummarizeCustodyQuery{}, err
	}
	return SummarizeCustodyQuery{itemType: t, guard: guard.NewConstructorGuard()}, nil
}

func (q SummarizeCustodyQuery) Validate() error {
	return q.guard.Validate(ErrSummarizeCustodyQueryIsNotConstructed)
}

func (q SummarizeCustodyQuery) ItemType() lot.Type {
	return q.itemType
}

// CustodySummary holds one counter per valid status, zeros included.
type CustodySummary struct {
	ItemType lot.Type
	Counts   map[lot.Status]int
	Total    int
}

// SummarizeCustodyQueryHandler walks every page of the type's records and
// reads each lot's custody record.
type SummarizeCustodyQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewSummarizeCustodyQueryHandler(uowFactory ports.UnitOfWorkFactory) SummarizeCustodyQueryHandler {
	return SummarizeCustodyQueryHandler{uowFactory: uowFactory}
}

func (h SummarizeCustodyQueryHandler) Handle(ctx context.Context, query SummarizeCustodyQuery) (CustodySummary, error) {
	if err := query.Validate(); err != nil {
		return CustodySummary{}, err
	}

	summary := CustodySummary{
		ItemType: query.ItemType(),
		Counts:   make(map[lot.Status]int, len(lot.AllStatuses())),
	}
	for _, s := range lot.AllStatuses() {
		summary.Counts[s] = 0
	}

	registry := h.uowFactory.Create().Registry()
	bookmark := ""
	for {
		page, err := registry.ListRecords(ctx, string(query.ItemType()), summaryPageSize, bookmark)
		if err != nil {
			return CustodySummary{}, err
		}

		for _, kv := range page.Records {
			var record lot.Record
			if err = json.Unmarshal(kv.Value, &record); err != nil {
				return CustodySummary{}, fmt.Errorf("decode record %s: %w", kv.Key, err)
			}

			custody, err := registry.GetCustody(ctx, query.ItemType(), record.ID)
			if err != nil {
				return CustodySummary{}, err
			}
			if custody == nil {
				continue
			}
			summary.Counts[custody.Status()]++
			summary.Total++
		}

		next := page.Metadata.Bookmark
		if len(page.Records) < int(summaryPageSize) || next == "" || next == bookmark {
			break
		}
		bookmark = next
	}

	return summary, nil
}
