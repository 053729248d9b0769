package nodes

import (
	"context"
	"errors"
	"time"

	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// fakeContext is a minimal, in-memory nodetype.ExecutionContext for
// exercising a single Executor in isolation, without spinning up a
// pkg/runtime scheduler.
type fakeContext struct {
	inputs       map[string]paramtype.Value
	variables    map[string]any
	counters     map[string]int
	accumulators map[string][]any
	cache        map[string]any
	invoker      nodetype.ModelInvoker
	maxAttempts  int
	retryBackoff time.Duration
}

func newFakeContext(inputs map[string]paramtype.Value) *fakeContext {
	return &fakeContext{
		inputs:       inputs,
		variables:    make(map[string]any),
		counters:     make(map[string]int),
		accumulators: make(map[string][]any),
		cache:        make(map[string]any),
	}
}

func (c *fakeContext) Context() context.Context { return context.Background() }
func (c *fakeContext) NodeID() string            { return "test-node" }
func (c *fakeContext) ExecutionID() string        { return "test-exec" }
func (c *fakeContext) WorkflowID() string         { return "test-workflow" }

func (c *fakeContext) Input(port string) (paramtype.Value, bool) {
	v, ok := c.inputs[port]
	return v, ok
}

func (c *fakeContext) GetVariable(name string) (any, bool) { v, ok := c.variables[name]; return v, ok }
func (c *fakeContext) SetVariable(name string, value any)  { c.variables[name] = value }

func (c *fakeContext) IncrementCounter(name string, delta int) int {
	c.counters[name] += delta
	return c.counters[name]
}

func (c *fakeContext) GetAccumulator(name string) []any {
	return append([]any{}, c.accumulators[name]...)
}
func (c *fakeContext) AppendAccumulator(name string, value any) {
	c.accumulators[name] = append(c.accumulators[name], value)
}

func (c *fakeContext) GetCache(key string) (any, bool) { v, ok := c.cache[key]; return v, ok }
func (c *fakeContext) SetCache(key string, value any)  { c.cache[key] = value }

func (c *fakeContext) ModelInvoker() (nodetype.ModelInvoker, bool) {
	if c.invoker == nil {
		return nil, false
	}
	return c.invoker, true
}

// RetryPolicy defaults to a single attempt (no retry) unless a test sets
// maxAttempts/retryBackoff explicitly.
func (c *fakeContext) RetryPolicy() (int, time.Duration) {
	if c.maxAttempts == 0 {
		return 1, 0
	}
	return c.maxAttempts, c.retryBackoff
}

var _ nodetype.ExecutionContext = (*fakeContext)(nil)

type fakeInvoker struct {
	response string
	err      error
}

func (f fakeInvoker) Invoke(ctx context.Context, prompt string, params map[string]paramtype.Value) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

var errFakeInvoker = errors.New("fake invoker error")

// flakyInvoker fails the first failUntil calls, then succeeds, recording how
// many times it was called.
type flakyInvoker struct {
	failUntil int
	response  string
	calls     int
}

func (f *flakyInvoker) Invoke(ctx context.Context, prompt string, params map[string]paramtype.Value) (string, error) {
	f.calls++
	if f.calls <= f.failUntil {
		return "", errFakeInvoker
	}
	return f.response, nil
}
