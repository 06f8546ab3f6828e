package queries

import (
	"context"

	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
)

// ListItemsQueryHandler lists one page of records of a docType. Ingredient
// listings are open to producers, product listings to manufacturers and
// location listings to every participant.
type ListItemsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	authz      *services.Authorizer
}

func NewListItemsQueryHandler(uowFactory ports.UnitOfWorkFactory, authz *services.Authorizer) ListItemsQueryHandler {
	return ListItemsQueryHandler{uowFactory: uowFactory, authz: authz}
}

func (h ListItemsQueryHandler) Handle(
	ctx context.Context,
	caller ports.Identity,
	query ListItemsQuery,
) (ListItemsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListItemsResponse{}, err
	}

	if _, err := h.authz.Gate(query.Operation(), caller); err != nil {
		return ListItemsResponse{}, err
	}

	page, err := h.uowFactory.Create().Registry().ListRecords(ctx, query.DocType(), query.PageSize(), query.Bookmark())
	if err != nil {
		return ListItemsResponse{}, err
	}

	results := make([]ListedRecord, 0, len(page.Records))
	for _, kv := range page.Records {
		if len(kv.Value) == 0 {
			continue
		}
		results = append(results, ListedRecord{Key: kv.Key, Record: decodeValue(kv.Value)})
	}

	return ListItemsResponse{
		Results: results,
		ResponseMetadata: ResponseMetadata{
			RecordsCount: page.Metadata.FetchedRecordsCount,
			Bookmark:     page.Metadata.Bookmark,
		},
	}, nil
}
