package ports

import (
	"context"

	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/model/lot"
)

// Registry stores lots, their custody records and locations on the ledger
// under the composite key scheme. Get methods return nil, nil when the
// entity does not exist.
type Registry interface {
	// CreateLot writes the lot record, its custody record and its presence marker.
	// Fails with errs.ObjectAlreadyExistsError if the lot record exists.
	CreateLot(ctx context.Context, l *lot.Lot, custody *lot.Custody) error

	GetLot(ctx context.Context, lotType lot.Type, id string) (*lot.Lot, error)

	GetCustody(ctx context.Context, lotType lot.Type, id string) (*lot.Custody, error)

	// SaveCustody overwrites the custody record of an existing lot.
	SaveCustody(ctx context.Context, custody *lot.Custody) error

	// DeleteLot removes the lot record, its custody record and its presence marker.
	DeleteLot(ctx context.Context, lotType lot.Type, id string) error

	// CreateLocation writes the location record and its presence marker.
	// Fails with errs.ObjectAlreadyExistsError if the location exists.
	CreateLocation(ctx context.Context, l *location.Location) error

	GetLocation(ctx context.Context, id string) (*location.Location, error)

	SaveLocation(ctx context.Context, l *location.Location) error

	// ListRecords returns one page of raw records tagged with docType.
	ListRecords(ctx context.Context, docType string, pageSize int32, bookmark string) (RecordPage, error)

	// StatusHistory returns the modifications of a lot's custody record.
	StatusHistory(ctx context.Context, lotType lot.Type, id string) ([]KeyModification, error)
}

// RecordPage is a page of raw ledger records.
type RecordPage struct {
	Records  []KV
	Metadata QueryMetadata
}
