package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/model/lot"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"go.uber.org/zap"
)

// itemRef addresses one lot by type and id. Commands that act on an existing
// lot embed it.
type itemRef struct {
	itemType lot.Type
	itemID   string
}

func newItemRef(itemType, itemID string) (itemRef, error) {
	t, err := lot.ParseType(itemType)
	return itemRef{itemType: t, itemID: itemID}, errors.Join(
		err,
		requireValue("itemId", itemID),
	)
}

// ItemType returns the kind of lot the command acts on.
func (r itemRef) ItemType() lot.Type {
	return r.itemType
}

// ItemID returns the id of the lot the command acts on.
func (r itemRef) ItemID() string {
	return r.itemID
}

func (r itemRef) subject() string {
	return subject(r.itemType, r.itemID)
}

func requireValue(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func subject(t lot.Type, id string) string {
	return fmt.Sprintf("%s %s", t.Noun(), id)
}

func requireLocation(ctx context.Context, registry ports.Registry, id string) (*location.Location, error) {
	l, err := registry.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errs.NewObjectNotFoundError("location", id)
	}
	return l, nil
}

func requireCustody(ctx context.Context, registry ports.Registry, t lot.Type, id string) (*lot.Custody, error) {
	c, err := registry.GetCustody(ctx, t, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errs.NewObjectNotFoundError(t.Noun(), id)
	}
	return c, nil
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func logTransition(logger *zap.Logger, op services.Operation, c *lot.Custody) {
	logger.Info("custody transition committed",
		zap.String("operation", string(op)),
		zap.String("itemType", string(c.LotType())),
		zap.String("itemId", c.LotID()),
		zap.Stringer("status", c.Status()),
		zap.Stringer("holder", c.Holder()),
	)
}
