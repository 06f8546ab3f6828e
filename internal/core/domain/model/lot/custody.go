package lot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// ErrCustodyIsNotConstructed is returned when a Custody did not come from NewCustody or RestoreCustody.
var ErrCustodyIsNotConstructed = errors.New("Custody must be created via NewCustody or RestoreCustody")

// Custody is the mutable status record of a lot: where it is, who holds it and
// how far along the custody chain it has travelled.
//
// Every mutating method validates first and only then assigns, so a failed
// call leaves the Custody exactly as it was.
type Custody struct {
	lotType Type
	lotID   string

	status        Status
	holder        kernel.OrgID
	locationID    string
	destinationID string
	active        bool
	parameters    kernel.Parameters

	guard guard.ConstructorGuard
}

// NewCustody opens the custody chain of a newly created lot in IDLE, held by
// holder at locationID.
func NewCustody(l *Lot, holder kernel.OrgID, locationID string, parameters kernel.Parameters) (*Custody, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if holder == "" {
		return nil, errs.NewValueIsRequiredError("holderId")
	}
	if strings.TrimSpace(locationID) == "" {
		return nil, errs.NewValueIsRequiredError("locationId")
	}

	return &Custody{
		lotType:    l.Type(),
		lotID:      l.ID(),
		status:     Idle,
		holder:     holder,
		locationID: locationID,
		active:     true,
		parameters: parameters.Clone(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustody rebuilds a Custody from its ledger record.
func RestoreCustody(lotType Type, lotID string, r StatusRecord) (*Custody, error) {
	if _, err := ParseType(string(lotType)); err != nil {
		return nil, err
	}
	if lotID == "" {
		return nil, errs.NewValueIsRequiredError(lotType.Noun() + "Id")
	}
	if err := r.Status.Validate(); err != nil {
		return nil, err
	}

	return &Custody{
		lotType:       lotType,
		lotID:         lotID,
		status:        r.Status,
		holder:        r.HolderID,
		locationID:    r.LocationID,
		destinationID: r.DestinationID,
		active:        r.Active,
		parameters:    r.Parameters.Clone(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c *Custody) Validate() error {
	if c == nil {
		return ErrCustodyIsNotConstructed
	}
	return c.guard.Validate(ErrCustodyIsNotConstructed)
}

func (c *Custody) LotType() Type {
	return c.lotType
}

func (c *Custody) LotID() string {
	return c.lotID
}

func (c *Custody) Status() Status {
	return c.status
}

func (c *Custody) Holder() kernel.OrgID {
	return c.holder
}

func (c *Custody) LocationID() string {
	return c.locationID
}

// DestinationID is empty until the first shipment starts and is kept afterwards
// so that the receiver can validate the delivery.
func (c *Custody) DestinationID() string {
	return c.destinationID
}

// Active is false once the lot has been invalidated.
func (c *Custody) Active() bool {
	return c.active
}

func (c *Custody) Parameters() kernel.Parameters {
	return c.parameters.Clone()
}

// StartShipment hands the lot to courier, leaving originID for destinationID.
func (c *Custody) StartShipment(courier kernel.OrgID, originID, destinationID string) error {
	if courier == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	next, err := c.status.StartShipment()
	if err != nil {
		return err
	}

	c.status = next
	c.holder = courier
	c.locationID = originID
	c.destinationID = destinationID
	return nil
}

// ShipmentStep moves an in-transit lot to the next courier, now at locationID.
func (c *Custody) ShipmentStep(courier kernel.OrgID, locationID string) error {
	if courier == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	next, err := c.status.HandOff()
	if err != nil {
		return err
	}
	if courier == c.holder {
		return errs.NewStateIsInvalidErrorWithCause(
			"courierId",
			fmt.Errorf("%s already holds %s %s", courier, c.lotType.Noun(), c.lotID),
		)
	}

	c.status = next
	c.holder = courier
	c.locationID = locationID
	return nil
}

// FinishShipment hands the lot to receiver at locationID.
func (c *Custody) FinishShipment(receiver kernel.OrgID, locationID string) error {
	if receiver == "" {
		return errs.NewValueIsRequiredError("receiverId")
	}
	next, err := c.status.FinishShipment()
	if err != nil {
		return err
	}

	c.status = next
	c.holder = receiver
	c.locationID = locationID
	return nil
}

// ValidateDelivery confirms that a delivered lot arrived at its destination.
func (c *Custody) ValidateDelivery() error {
	next, err := c.status.ValidateDelivery()
	if err != nil {
		return err
	}
	if c.locationID != c.destinationID {
		return errs.NewStateIsInvalidErrorWithCause(
			"locationId",
			fmt.Errorf("%s %s is at %s but was shipped to %s", c.lotType.Noun(), c.lotID, c.locationID, c.destinationID),
		)
	}

	c.status = next
	return nil
}

// Consume marks a validated ingredient as used by a manufacture at locationID.
func (c *Custody) Consume(locationID string) error {
	next, err := c.status.Consume()
	if err != nil {
		return err
	}
	if c.locationID != locationID {
		return errs.NewStateIsInvalidErrorWithCause(
			"locationId",
			fmt.Errorf("%s %s is at %s, not at %s", c.lotType.Noun(), c.lotID, c.locationID, locationID),
		)
	}

	c.status = next
	return nil
}

// Invalidate records the lot as lost or destroyed and deactivates it.
func (c *Custody) Invalidate() error {
	next, err := c.status.Invalidate()
	if err != nil {
		return err
	}

	c.status = next
	c.active = false
	return nil
}

// MoveTo changes the current location without touching status or holder.
func (c *Custody) MoveTo(locationID string) error {
	if strings.TrimSpace(locationID) == "" {
		return errs.NewValueIsRequiredError("locationId")
	}
	c.locationID = locationID
	return nil
}

// ReplaceParameters overwrites the parameter map.
func (c *Custody) ReplaceParameters(parameters kernel.Parameters) {
	c.parameters = parameters.Clone()
}

// Record returns the wire form stored under the lot's STATUS key.
func (c *Custody) Record() StatusRecord {
	return StatusRecord{
		Status:        c.status,
		HolderID:      c.holder,
		LocationID:    c.locationID,
		DestinationID: c.destinationID,
		Active:        c.active,
		Parameters:    c.parameters.Clone(),
	}
}

func (c *Custody) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Record())
}

// StatusRecord is the JSON form of a Custody on the ledger.
type StatusRecord struct {
	Status        Status            `json:"status"`
	HolderID      kernel.OrgID      `json:"holderId"`
	LocationID    string            `json:"locationId"`
	DestinationID string            `json:"destinationId,omitempty"`
	Active        bool              `json:"active"`
	Parameters    kernel.Parameters `json:"parameters"`
}
