package nodes

import (
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// accumulatorExecutor maintains a named, append-only list
// (AppendAccumulator/GetAccumulator) and reports it reduced by "op"
// (sum/product/concat/array/count): each call appends the new input, then
// the full list reduces into the reported value.
type accumulatorExecutor struct{}

func (accumulatorExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
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

	if value, ok := ec.Input("value"); ok {
		ec.AppendAccumulator(name, value.Payload)
	}
	items := ec.GetAccumulator(name)

	result, err := reduceAccumulator(op, items)
	if err != nil {
		return nodetype.Failure(err)
	}
	return nodetype.Success(map[string]paramtype.Value{"value": result})
}

func reduceAccumulator(op string, items []any) (paramtype.Value, error) {
	switch op {
	case "sum":
		var total float64
		for _, item := range items {
			n, ok := item.(float64)
			if !ok {
				return paramtype.Value{}, errAccumulatorType("sum", "number")
			}
			total += n
		}
		return paramtype.Value{Kind: paramtype.KindNumber, Payload: total}, nil
	case "product":
		total := 1.0
		for _, item := range items {
			n, ok := item.(float64)
			if !ok {
				return paramtype.Value{}, errAccumulatorType("product", "number")
			}
			total *= n
		}
		return paramtype.Value{Kind: paramtype.KindNumber, Payload: total}, nil
	case "concat":
		var text string
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return paramtype.Value{}, errAccumulatorType("concat", "string")
			}
			text += s
		}
		return paramtype.Value{Kind: paramtype.KindString, Payload: text}, nil
	case "array":
		return paramtype.Value{Kind: paramtype.KindArray, Payload: append([]any{}, items...)}, nil
	case "count":
		return paramtype.Value{Kind: paramtype.KindNumber, Payload: float64(len(items))}, nil
	default:
		return paramtype.Value{}, errUnsupportedOperation("accumulator", op)
	}
}

func accumulatorDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "accumulator", Name: "Accumulator", Category: nodetype.CategoryState,
		Description: "Appends a value to a named accumulator and reports its sum, product, concatenation, array, or count.",
		Inputs: []nodetype.PortSpec{
			{Name: "name", Kind: paramtype.KindString, Required: true},
			{Name: "op", Kind: paramtype.KindString, Required: true},
			{Name: "value", Kind: paramtype.KindAny},
		},
		Outputs: []nodetype.PortSpec{{Name: "value", Kind: paramtype.KindAny}},
	}
}

func registerAccumulator(r *nodetype.Registry) {
	r.MustRegister(accumulatorDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return accumulatorExecutor{}, nil
	})
}
