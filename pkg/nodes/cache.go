package nodes

import (
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// cacheGetExecutor and cacheSetExecutor are separate node kinds for reading
// and writing a cache entry, mirroring the variable_get/variable_set split.
// There is no cache-delete node kind: ExecutionContext exposes no cache
// eviction primitive, only get/set.
type cacheGetExecutor struct{}

func (cacheGetExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	keyValue, ok := ec.Input("key")
	if !ok {
		return nodetype.Failure(errMissingInput("key"))
	}
	key, ok := keyValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("key"))
	}

	value, found := ec.GetCache(key)
	return nodetype.Success(map[string]paramtype.Value{
		"value": {Kind: paramtype.KindAny, Payload: value},
		"found": {Kind: paramtype.KindBoolean, Payload: found},
	})
}

func cacheGetDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "cache_get", Name: "Cache Get", Category: nodetype.CategoryState,
		Description: "Reads a value from the workflow-scoped TTL cache.",
		Inputs:      []nodetype.PortSpec{{Name: "key", Kind: paramtype.KindString, Required: true}},
		Outputs: []nodetype.PortSpec{
			{Name: "value", Kind: paramtype.KindAny},
			{Name: "found", Kind: paramtype.KindBoolean},
		},
	}
}

type cacheSetExecutor struct{}

func (cacheSetExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	keyValue, ok := ec.Input("key")
	if !ok {
		return nodetype.Failure(errMissingInput("key"))
	}
	key, ok := keyValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("key"))
	}
	value, ok := ec.Input("value")
	if !ok {
		return nodetype.Failure(errMissingInput("value"))
	}

	ec.SetCache(key, value.Payload)
	return nodetype.Success(map[string]paramtype.Value{"value": value})
}

func cacheSetDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "cache_set", Name: "Cache Set", Category: nodetype.CategoryState,
		Description: "Writes a value into the workflow-scoped TTL cache, subject to config.Config.DefaultCacheTTL.",
		Inputs: []nodetype.PortSpec{
			{Name: "key", Kind: paramtype.KindString, Required: true},
			{Name: "value", Kind: paramtype.KindAny, Required: true},
		},
		Outputs: []nodetype.PortSpec{{Name: "value", Kind: paramtype.KindAny}},
	}
}

func registerCache(r *nodetype.Registry) {
	r.MustRegister(cacheGetDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return cacheGetExecutor{}, nil
	})
	r.MustRegister(cacheSetDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return cacheSetExecutor{}, nil
	})
}
