package ports

import "supplychain/internal/core/domain/model/kernel"

// Identity describes the client that submitted the current invocation.
// It is created per invocation by the inbound adapter.
type Identity interface {
	// CurrentOrganization returns the caller's organization id (MSP id).
	CurrentOrganization() (kernel.OrgID, error)

	// HasRoleClaim reports whether the caller's credential asserts role.
	HasRoleClaim(role kernel.Role) bool
}
