// Package paramtype is the single authority for what a parameter value of a
// given kind looks like on the wire and in memory.
//
// A kind is a capability bundle of four operations — Validate, Serialize,
// Deserialize, and Default — registered once at process start and never
// re-registered (see Default, which populates the nine built-in kinds plus
// the any pseudo-kind). Node ports and edges reference kinds by name; the
// validator and scheduler both consult this registry but never inspect a
// kind's internals directly.
package paramtype
