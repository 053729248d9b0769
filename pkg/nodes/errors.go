package nodes

import "fmt"

// errMissingInput reports a node invoked without a required input port
// connected or defaulted — distinct from a paramtype mismatch, which the
// validator catches before the scheduler ever dispatches the node.
func errMissingInput(port string) error {
	return fmt.Errorf("missing input %q", port)
}

// errNotAString reports a port whose payload failed a string type assertion
// after passing paramtype validation — this should not happen in practice
// since the validator checks port kinds before dispatch, but Execute must
// still handle it defensively since ExecutionContext.Input is untyped.
func errNotAString(port string) error {
	return fmt.Errorf("input %q is not a string", port)
}

// errSchemaValidationFailed reports a strict-mode schema_validate failure.
func errSchemaValidationFailed(count int) error {
	return fmt.Errorf("validation failed: %d errors found", count)
}

// errNoModelInvoker reports a model_invoke node run against a host that
// never supplied a ModelInvoker.
func errNoModelInvoker() error {
	return fmt.Errorf("no model invoker available in this execution environment")
}

// errUnsupportedOperation reports an unrecognized "op" input value on a
// state/memory node.
func errUnsupportedOperation(node, op string) error {
	return fmt.Errorf("unsupported %s operation: %s", node, op)
}

// errAccumulatorType reports an accumulator item that doesn't match the
// type its reduction operation requires.
func errAccumulatorType(op, want string) error {
	return fmt.Errorf("%s accumulator requires %s items", op, want)
}
