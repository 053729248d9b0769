// Package nodetype is the global registry of node kinds. Each entry pairs a
// static Descriptor (the declared input/output ports a validator can check
// against without running anything) with a Factory that produces the
// runtime Executor for that kind, so a graph can be type-checked before any
// node runs.
package nodetype
