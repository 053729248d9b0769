// Package types defines the shared graph document shape — Graph, Node,
// Port, and Edge — consumed read-only by the validator and the scheduler.
// It intentionally carries no behavior of its own: validation lives in
// pkg/validate, execution lives in pkg/runtime. Keeping the data model in
// its own leaf package avoids a circular dependency between those two.
package types
