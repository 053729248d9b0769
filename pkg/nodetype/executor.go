package nodetype

import (
	"context"
	"time"

	"github.com/weavegraph/weave/pkg/paramtype"
)

// Result is the outcome of one node's execution: exactly one of Outputs or
// Err is meaningful, keyed by output port name.
type Result struct {
	Outputs map[string]paramtype.Value
	Err     error
}

// Failed reports whether the result represents a node execution error.
func (r Result) Failed() bool { return r.Err != nil }

// Failure builds an error Result.
func Failure(err error) Result { return Result{Err: err} }

// Success builds a Result from named outputs.
func Success(outputs map[string]paramtype.Value) Result {
	return Result{Outputs: outputs}
}

// ModelInvoker is the opaque capability a model_invoke node calls through.
// The core (this package and pkg/runtime) never imports a concrete AI/ML
// SDK; a host process wires a real implementation (pkg/modelclient) in at
// startup and hands it to the scheduler as part of the execution
// environment.
type ModelInvoker interface {
	Invoke(ctx context.Context, prompt string, params map[string]paramtype.Value) (string, error)
}

// ExecutionContext is everything an Executor needs from the scheduler to do
// its work: its own resolved inputs, state accessors, and environment
// capabilities.
type ExecutionContext interface {
	Context() context.Context
	NodeID() string
	ExecutionID() string
	WorkflowID() string

	// Input returns the resolved value bound to the named input port,
	// whether it arrived via an inbound edge or a port-level literal.
	Input(port string) (paramtype.Value, bool)

	// State accessors for named variables, counters, accumulators, and
	// cache entries scoped to the current execution.
	GetVariable(name string) (any, bool)
	SetVariable(name string, value any)
	IncrementCounter(name string, delta int) int
	GetAccumulator(name string) []any
	AppendAccumulator(name string, value any)
	GetCache(key string) (any, bool)
	SetCache(key string, value any)

	// ModelInvoker returns the host-supplied AI/ML capability, if any was
	// configured for this execution.
	ModelInvoker() (ModelInvoker, bool)

	// RetryPolicy returns the run's default retry attempt count and initial
	// backoff delay, for node kinds whose work can fail transiently (e.g.
	// model_invoke calling out to an external model backend). The scheduler
	// itself never retries a failed node; a node kind opts in by reading
	// this and retrying its own work.
	RetryPolicy() (maxAttempts int, backoff time.Duration)
}

// Executor is the behavior a node kind contributes: given resolved inputs
// via ExecutionContext, produce named outputs or an error.
type Executor interface {
	Execute(ec ExecutionContext) Result
}

// Factory builds a fresh Executor for one node instance, given that node's
// id and any port-level configuration values (e.g. a JSON schema literal
// bound to a schema_validate node's "schema" input). Most node kinds are
// stateless and ignore both arguments, returning the same Executor value
// every time.
type Factory func(nodeID string, config map[string]paramtype.Value) (Executor, error)
