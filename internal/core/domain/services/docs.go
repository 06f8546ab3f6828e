// Package services provides domain services that span more than one aggregate
// of the custody ledger.
//
// The package includes:
//   - Authorizer: the rule engine that decides whether a caller may run an operation,
//     driven by a single declarative table (Rules) built from the organization directory
//
// Authorization is evaluated in a fixed order: organization whitelist, role claim,
// then the holder predicate once the target entity has been read.
package services
