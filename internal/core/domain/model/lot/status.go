package lot

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status is the custody state of a lot. It is persisted by name.
type Status int

const (
	// Unknown is the zero value and never a valid persisted status.
	Unknown Status = iota
	Idle
	InTransit
	Delivered
	Validated
	Consumed
	LostOrDestroyed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Idle:            "IDLE",
		InTransit:       "IN_TRANSIT",
		Delivered:       "DELIVERED",
		Validated:       "VALIDATED",
		Consumed:        "CONSUMED",
		LostOrDestroyed: "LOST_OR_DESTROYED",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Idle, InTransit, Delivered, Validated, Consumed, LostOrDestroyed}
}

// ParseStatus maps a persisted name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > LostOrDestroyed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// MarshalText encodes the status by name so records read "status":"IN_TRANSIT".
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsTerminal reports whether the lot can no longer be shipped.
func (s Status) IsTerminal() bool {
	return s == Consumed || s == LostOrDestroyed
}

func invalidTransition(s Status, action string) error {
	return errs.NewStateIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s is not a valid status to %s", s, action),
	)
}

// StartShipment moves IDLE or VALIDATED to IN_TRANSIT.
func (s Status) StartShipment() (Status, error) {
	if s != Idle && s != Validated {
		return Unknown, invalidTransition(s, "start a shipment")
	}
	return InTransit, nil
}

// HandOff keeps an IN_TRANSIT lot in transit while it changes courier.
func (s Status) HandOff() (Status, error) {
	if s != InTransit {
		return Unknown, invalidTransition(s, "hand off to another courier")
	}
	return InTransit, nil
}

// FinishShipment moves IN_TRANSIT to DELIVERED.
func (s Status) FinishShipment() (Status, error) {
	if s != InTransit {
		return Unknown, invalidTransition(s, "finish a shipment")
	}
	return Delivered, nil
}

// ValidateDelivery moves DELIVERED to VALIDATED.
func (s Status) ValidateDelivery() (Status, error) {
	if s != Delivered {
		return Unknown, invalidTransition(s, "validate a delivery")
	}
	return Validated, nil
}

// Consume moves VALIDATED to CONSUMED.
func (s Status) Consume() (Status, error) {
	if s != Validated {
		return Unknown, invalidTransition(s, "be consumed")
	}
	return Consumed, nil
}

// Invalidate is legal from every valid status.
func (s Status) Invalidate() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return LostOrDestroyed, nil
}
