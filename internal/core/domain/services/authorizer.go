package services

import (
	"fmt"
	"slices"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// Operation names a gated ledger operation.
type Operation string

const (
	OpProduceIngredientLot      Operation = "ProduceIngredientLot"
	OpManufactureProductLot     Operation = "ManufactureProductLot"
	OpCreateLocation            Operation = "CreateLocation"
	OpUpdateLocationParameters  Operation = "UpdateLocationParameters"
	OpUpdateLocationCoordinates Operation = "UpdateLocationCoordinates"
	OpStartShipment             Operation = "StartShipment"
	OpShipmentStep              Operation = "ShipmentStep"
	OpFinishShipment            Operation = "FinishShipment"
	OpValidateFinishShipment    Operation = "ValidateFinishShipment"
	OpUpdateItemLocation        Operation = "UpdateItemLocation"
	OpUpdateItemParameters      Operation = "UpdateItemParameters"
	OpInvalidateItem            Operation = "InvalidateItem"
	OpDeleteIngredient          Operation = "DeleteIngredient"
	OpListIngredients           Operation = "ListIngredients"
	OpListProducts              Operation = "ListProducts"
	OpListLocations             Operation = "ListLocations"
)

// HolderCheck selects which organization an entity must belong to.
type HolderCheck int

const (
	// NoHolderCheck skips the holder predicate.
	NoHolderCheck HolderCheck = iota
	// CurrentHolder requires the caller to be the entity's current holderId.
	CurrentHolder
	// Creator requires the caller to be the organization that created the entity.
	Creator
)

func (h HolderCheck) String() string {
	switch h {
	case CurrentHolder:
		return "holder"
	case Creator:
		return "creator"
	default:
		return "none"
	}
}

// Rule is one row of the authorization table. A nil Organizations or Roles
// list places no restriction on that dimension.
type Rule struct {
	Organizations []kernel.OrgID
	Roles         []kernel.Role
	Holder        HolderCheck
}

// Rules builds the authorization table for the given directory.
func Rules(dir kernel.Directory) map[Operation]Rule {
	known := only(dir.Known())
	participants := kernel.ParticipantRoles
	shippers := only(dir.Producers, dir.Manufacturers)

	return map[Operation]Rule{
		OpProduceIngredientLot: {
			Organizations: only(dir.Producers),
			Roles:         []kernel.Role{kernel.RoleProducer},
		},
		OpManufactureProductLot: {
			Organizations: only(dir.Manufacturers),
			Roles:         []kernel.Role{kernel.RoleManufacturer},
			Holder:        CurrentHolder,
		},
		OpCreateLocation: {
			Organizations: known,
			Roles:         participants,
		},
		OpUpdateLocationParameters: {
			Organizations: known,
			Roles:         participants,
			Holder:        CurrentHolder,
		},
		OpUpdateLocationCoordinates: {
			Organizations: known,
			Roles:         participants,
			Holder:        CurrentHolder,
		},
		OpStartShipment: {
			Organizations: shippers,
			Roles:         []kernel.Role{kernel.RoleProducer, kernel.RoleManufacturer},
			Holder:        CurrentHolder,
		},
		OpShipmentStep: {
			Organizations: only(dir.Couriers),
			Roles:         []kernel.Role{kernel.RoleCourier},
			Holder:        CurrentHolder,
		},
		OpFinishShipment: {
			Organizations: only(dir.Couriers),
			Roles:         []kernel.Role{kernel.RoleCourier},
			Holder:        CurrentHolder,
		},
		OpValidateFinishShipment: {
			Organizations: only(dir.Manufacturers, dir.Clients),
			Roles:         []kernel.Role{kernel.RoleManufacturer, kernel.RoleClient},
			Holder:        CurrentHolder,
		},
		OpUpdateItemLocation: {
			Holder: CurrentHolder,
		},
		OpUpdateItemParameters: {
			Roles:  participants,
			Holder: CurrentHolder,
		},
		OpInvalidateItem: {
			Organizations: shippers,
			Roles:         []kernel.Role{kernel.RoleProducer, kernel.RoleManufacturer},
			Holder:        CurrentHolder,
		},
		OpDeleteIngredient: {
			Organizations: only(dir.Producers),
			Roles:         []kernel.Role{kernel.RoleAdmin},
			Holder:        Creator,
		},
		OpListIngredients: {
			Organizations: only(dir.Producers),
			Roles:         []kernel.Role{kernel.RoleProducer},
		},
		OpListProducts: {
			Organizations: only(dir.Manufacturers),
			Roles:         []kernel.Role{kernel.RoleManufacturer},
		},
		OpListLocations: {
			Organizations: known,
			Roles:         participants,
		},
	}
}

// only merges organization groups into a non-nil whitelist. An empty whitelist denies everyone.
func only(groups ...[]kernel.OrgID) []kernel.OrgID {
	out := []kernel.OrgID{}
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Caller is the view of the invoking client the authorizer needs.
type Caller interface {
	CurrentOrganization() (kernel.OrgID, error)
	HasRoleClaim(role kernel.Role) bool
}

// Authorizer evaluates the rule table. It holds no mutable state and is safe
// for concurrent use.
//
// Example usage:
//
//	authz := services.NewAuthorizer(kernel.DefaultDirectory())
//	org, err := authz.Gate(services.OpStartShipment, caller)
//	if err != nil {
//	    return err // errs.AccessDeniedError
//	}
//	// read the lot ...
//	if err := authz.RequireHolder(services.OpStartShipment, org, custody.Holder(), "ingredient ING1"); err != nil {
//	    return err
//	}
type Authorizer struct {
	directory kernel.Directory
	rules     map[Operation]Rule
}

func NewAuthorizer(dir kernel.Directory) *Authorizer {
	return &Authorizer{
		directory: dir,
		rules:     Rules(dir),
	}
}

// Directory returns the organization directory the rules were built from.
func (a *Authorizer) Directory() kernel.Directory {
	return a.directory
}

// Rule returns the table row for op.
func (a *Authorizer) Rule(op Operation) (Rule, bool) {
	r, ok := a.rules[op]
	return r, ok
}

// Gate applies the organization whitelist and the role requirement of op and
// returns the caller's organization for the holder check that follows.
func (a *Authorizer) Gate(op Operation, caller Caller) (kernel.OrgID, error) {
	rule, ok := a.rules[op]
	if !ok {
		return "", errs.NewAccessDeniedError(fmt.Sprintf("no authorization rule for %s", op))
	}
	if caller == nil {
		return "", errs.NewAccessDeniedError("caller identity is missing")
	}

	org, err := caller.CurrentOrganization()
	if err != nil {
		return "", errs.NewAccessDeniedErrorWithCause("caller organization could not be determined", err)
	}

	if rule.Organizations != nil && !slices.Contains(rule.Organizations, org) {
		return "", errs.NewAccessDeniedError(fmt.Sprintf("organization %s is not allowed to %s", org, op))
	}

	if rule.Roles != nil && !slices.ContainsFunc(rule.Roles, caller.HasRoleClaim) {
		return "", errs.NewAccessDeniedError(fmt.Sprintf("%s requires role %s", op, joinRoles(rule.Roles)))
	}

	return org, nil
}

// RequireHolder applies the holder predicate of op. owner is the entity's current
// holder, or its creator for Creator rules; subject names the entity in the error.
func (a *Authorizer) RequireHolder(op Operation, caller, owner kernel.OrgID, subject string) error {
	rule, ok := a.rules[op]
	if !ok {
		return errs.NewAccessDeniedError(fmt.Sprintf("no authorization rule for %s", op))
	}
	if rule.Holder == NoHolderCheck || caller == owner {
		return nil
	}
	return errs.NewAccessDeniedError(fmt.Sprintf("organization %s is not the %s of %s", caller, rule.Holder, subject))
}

func joinRoles(roles []kernel.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return strings.Join(names, " or ")
}
