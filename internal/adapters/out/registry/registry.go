// Package registry implements ports.Registry on top of a ports.Ledger.
//
// Every entity occupies up to three ledger keys built from the composite index
// "docType~id":
//
//	hex([docType, id])            canonical record (lot or location JSON)
//	hex([docType, id, "STATUS"])  custody record (lots only)
//	[docType, id]                 presence marker, value "\x00"
//
// The same encoding is used by every write path.
package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

var _ ports.Registry = (*LedgerRegistry)(nil)

// LedgerRegistry stores entities as JSON documents on a ledger.
type LedgerRegistry struct {
	ledger ports.Ledger
}

func New(ledger ports.Ledger) *LedgerRegistry {
	return &LedgerRegistry{ledger: ledger}
}

func (r *LedgerRegistry) CreateLot(ctx context.Context, l *lot.Lot, custody *lot.Custody) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := custody.Validate(); err != nil {
		return err
	}
	if custody.LotID() != l.ID() || custody.LotType() != l.Type() {
		return errs.NewValueIsInvalidErrorWithCause(
			"custody",
			fmt.Errorf("custody of %s %s does not belong to %s %s",
				custody.LotType().Noun(), custody.LotID(), l.Type().Noun(), l.ID()),
		)
	}

	k, err := entityKeys(r.ledger, string(l.Type()), l.ID())
	if err != nil {
		return err
	}
	if err := r.ensureAbsent(ctx, k.record, l.Type().Noun(), l.ID()); err != nil {
		return err
	}

	if err := r.putJSON(ctx, k.record, l.Record()); err != nil {
		return err
	}
	if err := r.putJSON(ctx, k.status, custody.Record()); err != nil {
		return err
	}
	return r.ledger.PutState(ctx, k.marker, presenceValue)
}

func (r *LedgerRegistry) GetLot(ctx context.Context, lotType lot.Type, id string) (*lot.Lot, error) {
	k, err := entityKeys(r.ledger, string(lotType), id)
	if err != nil {
		return nil, err
	}

	var rec lot.Record
	found, err := r.getJSON(ctx, k.record, &rec)
	if err != nil || !found {
		return nil, err
	}
	return lot.FromRecord(rec)
}

func (r *LedgerRegistry) GetCustody(ctx context.Context, lotType lot.Type, id string) (*lot.Custody, error) {
	k, err := entityKeys(r.ledger, string(lotType), id)
	if err != nil {
		return nil, err
	}

	var rec lot.StatusRecord
	found, err := r.getJSON(ctx, k.status, &rec)
	if err != nil || !found {
		return nil, err
	}
	return lot.RestoreCustody(lotType, id, rec)
}

func (r *LedgerRegistry) SaveCustody(ctx context.Context, custody *lot.Custody) error {
	if err := custody.Validate(); err != nil {
		return err
	}

	k, err := entityKeys(r.ledger, string(custody.LotType()), custody.LotID())
	if err != nil {
		return err
	}
	return r.putJSON(ctx, k.status, custody.Record())
}

func (r *LedgerRegistry) DeleteLot(ctx context.Context, lotType lot.Type, id string) error {
	k, err := entityKeys(r.ledger, string(lotType), id)
	if err != nil {
		return err
	}

	for _, key := range []string{k.record, k.status, k.marker} {
		if err := r.ledger.DelState(ctx, key); err != nil {
			return fmt.Errorf("delete %s %s: %w", lotType.Noun(), id, err)
		}
	}
	return nil
}

func (r *LedgerRegistry) CreateLocation(ctx context.Context, l *location.Location) error {
	if err := l.Validate(); err != nil {
		return err
	}

	k, err := entityKeys(r.ledger, location.DocType, l.ID())
	if err != nil {
		return err
	}
	if err := r.ensureAbsent(ctx, k.record, "location", l.ID()); err != nil {
		return err
	}

	if err := r.putJSON(ctx, k.record, l.Record()); err != nil {
		return err
	}
	return r.ledger.PutState(ctx, k.marker, presenceValue)
}

func (r *LedgerRegistry) GetLocation(ctx context.Context, id string) (*location.Location, error) {
	k, err := entityKeys(r.ledger, location.DocType, id)
	if err != nil {
		return nil, err
	}

	var rec location.Record
	found, err := r.getJSON(ctx, k.record, &rec)
	if err != nil || !found {
		return nil, err
	}
	return location.FromRecord(rec)
}

func (r *LedgerRegistry) SaveLocation(ctx context.Context, l *location.Location) error {
	if err := l.Validate(); err != nil {
		return err
	}

	k, err := entityKeys(r.ledger, location.DocType, l.ID())
	if err != nil {
		return err
	}
	return r.putJSON(ctx, k.record, l.Record())
}

func (r *LedgerRegistry) ListRecords(
	ctx context.Context,
	docType string,
	pageSize int32,
	bookmark string,
) (ports.RecordPage, error) {
	records, meta, err := r.ledger.QueryByDocType(ctx, docType, pageSize, bookmark)
	if err != nil {
		return ports.RecordPage{}, err
	}
	return ports.RecordPage{Records: records, Metadata: meta}, nil
}

func (r *LedgerRegistry) StatusHistory(
	ctx context.Context,
	lotType lot.Type,
	id string,
) ([]ports.KeyModification, error) {
	k, err := entityKeys(r.ledger, string(lotType), id)
	if err != nil {
		return nil, err
	}
	return r.ledger.GetHistoryForKey(ctx, k.status)
}

func (r *LedgerRegistry) ensureAbsent(ctx context.Context, key, noun, id string) error {
	existing, err := r.ledger.GetState(ctx, key)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return errs.NewObjectAlreadyExistsError(noun, id)
	}
	return nil
}

func (r *LedgerRegistry) putJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.ledger.PutState(ctx, key, raw)
}

func (r *LedgerRegistry) getJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, err := r.ledger.GetState(ctx, key)
	if err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode record %s: %w", key, err)
	}
	return true, nil
}
