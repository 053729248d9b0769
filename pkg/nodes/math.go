package nodes

import (
	"errors"

	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// errDivisionByZero reports an attempt to divide by zero.
var errDivisionByZero = errors.New("Division by zero is not allowed")

func numberPorts() []nodetype.PortSpec {
	return []nodetype.PortSpec{
		{Name: "a", Kind: paramtype.KindNumber, Required: true},
		{Name: "b", Kind: paramtype.KindNumber, Required: true},
	}
}

func resultPort() []nodetype.PortSpec {
	return []nodetype.PortSpec{{Name: "result", Kind: paramtype.KindNumber}}
}

// mathExecutor is parameterized by its binary operation, so each arithmetic
// kind can register its own Descriptor with the node type registry while
// sharing one executor implementation.
type mathExecutor struct {
	apply func(a, b float64) (float64, error)
}

func (e mathExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	a, ok := ec.Input("a")
	if !ok {
		return nodetype.Failure(errors.New("missing input a"))
	}
	b, ok := ec.Input("b")
	if !ok {
		return nodetype.Failure(errors.New("missing input b"))
	}
	left, ok := a.Payload.(float64)
	if !ok {
		return nodetype.Failure(errors.New("input a is not a number"))
	}
	right, ok := b.Payload.(float64)
	if !ok {
		return nodetype.Failure(errors.New("input b is not a number"))
	}

	result, err := e.apply(left, right)
	if err != nil {
		return nodetype.Failure(err)
	}
	return nodetype.Success(map[string]paramtype.Value{
		"result": {Kind: paramtype.KindNumber, Payload: result},
	})
}

func additionDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "addition", Name: "Addition", Category: nodetype.CategoryMath,
		Description: "Adds two numbers.",
		Inputs:      numberPorts(), Outputs: resultPort(),
	}
}

func subtractionDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "subtraction", Name: "Subtraction", Category: nodetype.CategoryMath,
		Description: "Subtracts b from a.",
		Inputs:      numberPorts(), Outputs: resultPort(),
	}
}

func multiplicationDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "multiplication", Name: "Multiplication", Category: nodetype.CategoryMath,
		Description: "Multiplies two numbers.",
		Inputs:      numberPorts(), Outputs: resultPort(),
	}
}

func divisionDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "division", Name: "Division", Category: nodetype.CategoryMath,
		Description: "Divides a by b.",
		Inputs:      numberPorts(), Outputs: resultPort(),
	}
}

func registerMath(r *nodetype.Registry) {
	r.MustRegister(additionDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return mathExecutor{apply: func(a, b float64) (float64, error) { return a + b, nil }}, nil
	})
	r.MustRegister(subtractionDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return mathExecutor{apply: func(a, b float64) (float64, error) { return a - b, nil }}, nil
	})
	r.MustRegister(multiplicationDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return mathExecutor{apply: func(a, b float64) (float64, error) { return a * b, nil }}, nil
	})
	r.MustRegister(divisionDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return mathExecutor{apply: func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errDivisionByZero
			}
			return a / b, nil
		}}, nil
	})
}
