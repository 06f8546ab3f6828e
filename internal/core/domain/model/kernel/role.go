package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Role is a role claim asserted about the caller, distinct from its organization.
type Role string

const (
	RoleProducer     Role = "Producer"
	RoleManufacturer Role = "Manufacturer"
	RoleCourier      Role = "Courier"
	RoleClient       Role = "Client"
	RoleAdmin        Role = "Admin"
)

// ParticipantRoles are the roles of organizations that take part in custody.
var ParticipantRoles = []Role{RoleProducer, RoleManufacturer, RoleCourier, RoleClient}

// ParseRole returns the Role named by s.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleProducer, RoleManufacturer, RoleCourier, RoleClient, RoleAdmin:
		return r, nil
	case "":
		return "", errs.NewValueIsRequiredError("role")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

func (r Role) String() string {
	return string(r)
}
