// Package lot models tradable lots (ingredient and product batches) and the
// custody chain each of them moves through.
//
// The package includes:
//   - Lot: the immutable descriptive record created by Produce or Manufacture
//   - Custody: the mutable status record (status, holder, location, destination,
//     active flag, parameters) sharing the lot's id
//   - Status: the state machine that decides which transitions are legal
//
// State transitions:
//
//	IDLE ──StartShipment──> IN_TRANSIT ──FinishShipment──> DELIVERED ──Validate──> VALIDATED
//	  ^                      │    ^                                                   │  │
//	  │                      └────┘ ShipmentStep                                      │  │
//	  │                                                     StartShipment <───────────┘  │
//	  │                                                                    Consume ──────┴──> CONSUMED
//	  any status ──Invalidate──> LOST_OR_DESTROYED
//
// CONSUMED and LOST_OR_DESTROYED are terminal for shipping purposes.
package lot
