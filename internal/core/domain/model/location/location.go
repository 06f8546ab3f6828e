// Package location models the physical places (warehouses, vehicles) that hold lots.
package location

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// DocType tags location records on the ledger.
const DocType = "LOCATION"

// Kind is the category of a location. Only VEHICLE locations move.
type Kind string

const (
	Warehouse Kind = "WAREHOUSE"
	Vehicle   Kind = "VEHICLE"
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation or FromRecord")

// Location is a registered place with an owner. Its id, name and kind never change;
// the parameters can be replaced by the holder and, for vehicles, so can the coordinates.
type Location struct {
	id          string
	name        string
	kind        Kind
	coordinates kernel.Coordinates
	holder      kernel.OrgID
	parameters  kernel.Parameters

	guard guard.ConstructorGuard
}

func NewLocation(
	id, name string,
	kind Kind,
	coordinates kernel.Coordinates,
	holder kernel.OrgID,
	parameters kernel.Parameters,
) (*Location, error) {
	l := &Location{
		name:       name,
		parameters: parameters.Clone(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setKind(kind),
		l.setCoordinates(coordinates),
		l.setHolder(holder),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// FromRecord restores a Location read back from the ledger.
func FromRecord(r Record) (*Location, error) {
	if r.DocType != DocType {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"docType",
			fmt.Errorf("expected %s, got %q", DocType, r.DocType),
		)
	}
	coordinates, err := kernel.NewCoordinates(r.Latitude, r.Longitude)
	if err != nil {
		return nil, err
	}
	return NewLocation(r.ID, r.Name, r.Type, coordinates, r.HolderID, r.Parameters)
}

func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) ID() string {
	return l.id
}

func (l *Location) Name() string {
	return l.name
}

func (l *Location) Kind() Kind {
	return l.kind
}

func (l *Location) Coordinates() kernel.Coordinates {
	return l.coordinates
}

func (l *Location) Holder() kernel.OrgID {
	return l.holder
}

func (l *Location) Parameters() kernel.Parameters {
	return l.parameters.Clone()
}

// IsMobile reports whether the coordinates may change.
func (l *Location) IsMobile() bool {
	return l.kind == Vehicle
}

// MoveTo updates the coordinates of a vehicle.
func (l *Location) MoveTo(coordinates kernel.Coordinates) error {
	if !l.IsMobile() {
		return errs.NewStateIsInvalidErrorWithCause(
			"type",
			fmt.Errorf("location %s is a %s and cannot move", l.id, l.kind),
		)
	}
	return l.setCoordinates(coordinates)
}

func (l *Location) ReplaceParameters(parameters kernel.Parameters) {
	l.parameters = parameters.Clone()
}

// Record returns the wire form stored on the ledger.
func (l *Location) Record() Record {
	return Record{
		DocType:    DocType,
		ID:         l.id,
		Name:       l.name,
		Type:       l.kind,
		Latitude:   l.coordinates.Latitude(),
		Longitude:  l.coordinates.Longitude(),
		HolderID:   l.holder,
		Parameters: l.parameters.Clone(),
	}
}

func (l *Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Record())
}

func (l *Location) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("locationId")
	}
	l.id = id
	return nil
}

func (l *Location) setKind(kind Kind) error {
	if strings.TrimSpace(string(kind)) == "" {
		return errs.NewValueIsRequiredError("type")
	}
	l.kind = kind
	return nil
}

func (l *Location) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	l.coordinates = coordinates
	return nil
}

func (l *Location) setHolder(holder kernel.OrgID) error {
	if holder == "" {
		return errs.NewValueIsRequiredError("holderId")
	}
	l.holder = holder
	return nil
}

// Record is the JSON form of a Location on the ledger.
type Record struct {
	DocType    string            `json:"docType"`
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       Kind              `json:"type"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	HolderID   kernel.OrgID      `json:"holderId"`
	Parameters kernel.Parameters `json:"parameters"`
}
