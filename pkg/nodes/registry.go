package nodes

import "github.com/weavegraph/weave/pkg/nodetype"

// DefaultRegistry assembles every node kind this package implements into a
// ready-to-use nodetype.Registry, gathered into one entry point instead of
// being left to the caller to assemble by hand.
func DefaultRegistry() *nodetype.Registry {
	r := nodetype.NewRegistry()
	registerMath(r)
	registerWidgets(r)
	registerTemplate(r)
	registerExtract(r)
	registerSchemaValidate(r)
	registerModel(r)
	registerVariable(r)
	registerCounter(r)
	registerAccumulator(r)
	registerCache(r)
	return r
}
