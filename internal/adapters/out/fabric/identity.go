package fabric

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
)

// RoleAttribute is the certificate attribute carrying the caller's role.
const RoleAttribute = "role"

var _ ports.Identity = ClientIdentity{}

// ClientIdentity reads the submitter's MSP id and role attribute from its
// X.509 certificate.
type ClientIdentity struct {
	id cid.ClientIdentity
}

func NewClientIdentity(id cid.ClientIdentity) ClientIdentity {
	return ClientIdentity{id: id}
}

func (c ClientIdentity) CurrentOrganization() (kernel.OrgID, error) {
	msp, err := c.id.GetMSPID()
	if err != nil {
		return "", err
	}
	return kernel.OrgID(msp), nil
}

// HasRoleClaim is true when the certificate carries role=<role>.
func (c ClientIdentity) HasRoleClaim(role kernel.Role) bool {
	return c.id.AssertAttributeValue(RoleAttribute, role.String()) == nil
}
