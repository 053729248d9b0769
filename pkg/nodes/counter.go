package nodes

import (
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// counterExecutor increments, decrements, resets, or reads a named counter
// through ExecutionContext.IncrementCounter, whose contract only exposes a
// relative delta rather than an absolute setter. "reset" is therefore
// expressed as two increments: subtract the current value back to zero,
// then add the configured reset value.
type counterExecutor struct{}

func (counterExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	nameValue, ok := ec.Input("name")
	if !ok {
		return nodetype.Failure(errMissingInput("name"))
	}
	name, ok := nameValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("name"))
	}
	opValue, ok := ec.Input("op")
	if !ok {
		return nodetype.Failure(errMissingInput("op"))
	}
	op, ok := opValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("op"))
	}

	delta := 1
	if deltaValue, ok := ec.Input("delta"); ok {
		if d, ok := deltaValue.Payload.(float64); ok {
			delta = int(d)
		}
	}

	var current int
	switch op {
	case "increment":
		current = ec.IncrementCounter(name, delta)
	case "decrement":
		current = ec.IncrementCounter(name, -delta)
	case "reset":
		reset := 0
		if resetValue, ok := ec.Input("reset_value"); ok {
			if r, ok := resetValue.Payload.(float64); ok {
				reset = int(r)
			}
		}
		existing := ec.IncrementCounter(name, 0)
		current = ec.IncrementCounter(name, reset-existing)
	case "get":
		current = ec.IncrementCounter(name, 0)
	default:
		return nodetype.Failure(errUnsupportedOperation("counter", op))
	}

	return nodetype.Success(map[string]paramtype.Value{
		"value": {Kind: paramtype.KindNumber, Payload: float64(current)},
	})
}

func counterDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "counter", Name: "Counter", Category: nodetype.CategoryState,
		Description: "Increments, decrements, resets, or reads a named counter.",
		Inputs: []nodetype.PortSpec{
			{Name: "name", Kind: paramtype.KindString, Required: true},
			{Name: "op", Kind: paramtype.KindString, Required: true},
			{Name: "delta", Kind: paramtype.KindNumber, Default: &paramtype.Value{Kind: paramtype.KindNumber, Payload: 1.0}},
			{Name: "reset_value", Kind: paramtype.KindNumber},
		},
		Outputs: []nodetype.PortSpec{{Name: "value", Kind: paramtype.KindNumber}},
	}
}

func registerCounter(r *nodetype.Registry) {
	r.MustRegister(counterDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return counterExecutor{}, nil
	})
}
