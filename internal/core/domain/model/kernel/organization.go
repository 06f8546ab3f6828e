package kernel

import (
	"fmt"
	"slices"
	"strings"

	"supplychain/internal/pkg/errs"
)

// OrgID identifies an organization (a Fabric MSP id in a chaincode deployment).
type OrgID string

func (o OrgID) String() string {
	return string(o)
}

// Directory is the closed set of organizations known to the network, grouped by
// the part they play. It is immutable configuration, loaded once per process.
type Directory struct {
	Producers     []OrgID
	Manufacturers []OrgID
	Couriers      []OrgID
	Clients       []OrgID
}

// DefaultDirectory returns the organizations of the reference network.
func DefaultDirectory() Directory {
	return Directory{
		Producers:     []OrgID{"agr1MSP"},
		Manufacturers: []OrgID{"floretteMSP"},
		Couriers:      []OrgID{"courier1MSP", "courier2MSP"},
		Clients:       []OrgID{"retailerMSP"},
	}
}

// ParseOrgList splits a comma separated list of organization ids, dropping blanks.
func ParseOrgList(raw string) []OrgID {
	var orgs []OrgID
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			orgs = append(orgs, OrgID(part))
		}
	}
	return orgs
}

// Validate checks that every group is populated and that no organization is blank.
func (d Directory) Validate() error {
	groups := map[string][]OrgID{
		"producers":     d.Producers,
		"manufacturers": d.Manufacturers,
		"couriers":      d.Couriers,
		"clients":       d.Clients,
	}
	for name, orgs := range groups {
		if len(orgs) == 0 {
			return errs.NewValueIsRequiredError(name)
		}
		if slices.Contains(orgs, "") {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("blank organization id"))
		}
	}
	return nil
}

// Known returns every organization in the directory.
func (d Directory) Known() []OrgID {
	all := make([]OrgID, 0, len(d.Producers)+len(d.Manufacturers)+len(d.Couriers)+len(d.Clients))
	all = append(all, d.Producers...)
	all = append(all, d.Manufacturers...)
	all = append(all, d.Couriers...)
	return append(all, d.Clients...)
}

// Receivers returns the organizations that may take delivery at the end of a shipment.
func (d Directory) Receivers() []OrgID {
	all := make([]OrgID, 0, len(d.Producers)+len(d.Manufacturers)+len(d.Clients))
	all = append(all, d.Producers...)
	all = append(all, d.Manufacturers...)
	return append(all, d.Clients...)
}

func (d Directory) IsKnown(org OrgID) bool {
	return slices.Contains(d.Known(), org)
}

func (d Directory) IsCourier(org OrgID) bool {
	return slices.Contains(d.Couriers, org)
}

func (d Directory) IsReceiver(org OrgID) bool {
	return slices.Contains(d.Receivers(), org)
}
