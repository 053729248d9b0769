// Package nodes implements the concrete, registered node kinds: the
// arithmetic operators, literal-value widgets, template expansion, JSON
// extraction and schema validation, the opaque model-invocation boundary,
// and the state-and-memory primitives (variables, counters, accumulators,
// cache). DefaultRegistry assembles all of them into a ready-to-use
// nodetype.Registry.
package nodes
