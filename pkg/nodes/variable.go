package nodes

import (
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// variableGetExecutor and variableSetExecutor are separate node kinds for
// reading and writing a named variable, rather than a single node switching
// on an operation-mode input.
type variableGetExecutor struct{}

func (variableGetExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	nameValue, ok := ec.Input("name")
	if !ok {
		return nodetype.Failure(errMissingInput("name"))
	}
	name, ok := nameValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("name"))
	}

	value, found := ec.GetVariable(name)
	return nodetype.Success(map[string]paramtype.Value{
		"value": {Kind: paramtype.KindAny, Payload: value},
		"found": {Kind: paramtype.KindBoolean, Payload: found},
	})
}

func variableGetDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "variable_get", Name: "Variable Get", Category: nodetype.CategoryState,
		Description: "Reads a named variable from workflow-scoped state.",
		Inputs:      []nodetype.PortSpec{{Name: "name", Kind: paramtype.KindString, Required: true}},
		Outputs: []nodetype.PortSpec{
			{Name: "value", Kind: paramtype.KindAny},
			{Name: "found", Kind: paramtype.KindBoolean},
		},
	}
}

type variableSetExecutor struct{}

func (variableSetExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	nameValue, ok := ec.Input("name")
	if !ok {
		return nodetype.Failure(errMissingInput("name"))
	}
	name, ok := nameValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("name"))
	}
	value, ok := ec.Input("value")
	if !ok {
		return nodetype.Failure(errMissingInput("value"))
	}

	ec.SetVariable(name, value.Payload)
	return nodetype.Success(map[string]paramtype.Value{"value": value})
}

func variableSetDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "variable_set", Name: "Variable Set", Category: nodetype.CategoryState,
		Description: "Writes a named variable into workflow-scoped state.",
		Inputs: []nodetype.PortSpec{
			{Name: "name", Kind: paramtype.KindString, Required: true},
			{Name: "value", Kind: paramtype.KindAny, Required: true},
		},
		Outputs: []nodetype.PortSpec{{Name: "value", Kind: paramtype.KindAny}},
	}
}

func registerVariable(r *nodetype.Registry) {
	r.MustRegister(variableGetDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return variableGetExecutor{}, nil
	})
	r.MustRegister(variableSetDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return variableSetExecutor{}, nil
	})
}
