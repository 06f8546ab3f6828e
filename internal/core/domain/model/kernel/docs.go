// Package kernel provides the shared primitives of the custody domain.
//
// The package includes:
//   - OrgID and Directory: organization identifiers and the closed set of known
//     organizations grouped by the role they play in the network
//   - Role: the role claims asserted by the identity collaborator
//   - Parameters: the schema-less attribute map carried by lots and locations
//   - Coordinates: a validated latitude/longitude pair
//
// None of these types interpret Parameters; they are opaque payload as far as
// the state machine is concerned.
package kernel
