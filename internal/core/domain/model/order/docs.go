// Package order implements the order (commande) aggregate and the shipment
// progress derivation.
//
// The aggregate tracks product lines, the stored total, and an optional
// admin lifecycle override. ComputeProgress is the pure derivation that maps
// the creation instant onto a stage and completion percentage; Step is the
// state machine of lifecycle stages with their historical wire keys.
package order
