package queries

import (
	"encoding/json"
	"errors"

	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// DefaultPageSize is used when a listing does not ask for a page size.
const DefaultPageSize int32 = 25

var ErrListItemsQueryIsNotConstructed = errors.New(
	"ListItemsQuery must be created via NewListItemsQuery constructor",
)

// ListItemsQuery pages through the records of one docType: INGREDIENT,
// PRODUCT or LOCATION. The bookmark of a previous page continues the listing.
type ListItemsQuery struct {
	docType  string
	op       services.Operation
	pageSize int32
	bookmark string

	guard guard.ConstructorGuard
}

func NewListItemsQuery(docType string, pageSize int32, bookmark string) (ListItemsQuery, error) {
	var op services.Operation
	switch docType {
	case string(lot.Ingredient):
		op = services.OpListIngredients
	case string(lot.Product):
		op = services.OpListProducts
	case location.DocType:
		op = services.OpListLocations
	case "":
		return ListItemsQuery{}, errs.NewValueIsRequiredError("docType")
	default:
		return ListItemsQuery{}, errs.NewValueIsInvalidError("docType")
	}

	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 0 {
		return ListItemsQuery{}, errs.NewValueIsInvalidErrorWithCause("pageSize", errors.New("page size must be positive"))
	}

	return ListItemsQuery{
		docType:  docType,
		op:       op,
		pageSize: pageSize,
		bookmark: bookmark,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

func (q ListItemsQuery) DocType() string {
	return q.docType
}

// Operation returns the gated operation the listing is authorized as.
func (q ListItemsQuery) Operation() services.Operation {
	return q.op
}

func (q ListItemsQuery) PageSize() int32 {
	return q.pageSize
}

func (q ListItemsQuery) Bookmark() string {
	return q.bookmark
}

// ListItemsResponse is one page of a listing.
type ListItemsResponse struct {
	Results          []ListedRecord   `json:"results"`
	ResponseMetadata ResponseMetadata `json:"ResponseMetadata"`
}

// ListedRecord is a raw ledger entry. Record holds the decoded JSON value, or
// the raw text when the value is not JSON.
type ListedRecord struct {
	Key    string `json:"Key"`
	Record any    `json:"Record"`
}

type ResponseMetadata struct {
	RecordsCount int32  `json:"RecordsCount"`
	Bookmark     string `json:"Bookmark"`
}

// decodeValue keeps JSON values as they are and falls back to text otherwise.
func decodeValue(raw []byte) any {
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	return string(raw)
}
