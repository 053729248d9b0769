package runtime

import (
	"context"
	"time"

	"github.com/weavegraph/weave/pkg/logging"
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
	"github.com/weavegraph/weave/pkg/state"
)

// execContext is the scheduler's concrete nodetype.ExecutionContext. One is
// built per node dispatch; it carries that node's own resolved inputs plus
// a state.Manager shared across every node of the run.
type execContext struct {
	ctx          context.Context
	nodeID       string
	executionID  string
	workflowID   string
	inputs       map[string]paramtype.Value
	state        *state.Manager
	cacheTTL     time.Duration
	maxVariables int
	maxCacheSize int
	logger       *logging.Logger
	modelInvoker nodetype.ModelInvoker
	maxAttempts  int
	retryBackoff time.Duration
}

func (c *execContext) Context() context.Context { return c.ctx }
func (c *execContext) NodeID() string           { return c.nodeID }
func (c *execContext) ExecutionID() string      { return c.executionID }
func (c *execContext) WorkflowID() string       { return c.workflowID }

func (c *execContext) Input(port string) (paramtype.Value, bool) {
	v, ok := c.inputs[port]
	return v, ok
}

func (c *execContext) GetVariable(name string) (any, bool) {
	return c.state.GetVariable(name)
}

// SetVariable sets a named variable, unless doing so would introduce a new
// variable past config.Config.MaxVariables. ExecutionContext's SetVariable
// returns nothing, so a rejected write is logged rather than surfaced to
// the node; updating an already-existing variable is always allowed.
func (c *execContext) SetVariable(name string, value any) {
	if c.maxVariables > 0 {
		if _, exists := c.state.GetVariable(name); !exists && c.state.VariableCount() >= c.maxVariables {
			c.logger.WithNodeID(c.nodeID).WithField("variable", name).Warn("variable rejected: max variables exceeded")
			return
		}
	}
	c.state.SetVariable(name, value)
}

func (c *execContext) IncrementCounter(name string, delta int) int {
	return c.state.IncrementCounter(name, delta)
}

func (c *execContext) GetAccumulator(name string) []any {
	return c.state.GetAccumulator(name)
}

func (c *execContext) AppendAccumulator(name string, value any) {
	c.state.AppendAccumulator(name, value)
}

func (c *execContext) GetCache(key string) (any, bool) {
	return c.state.GetCache(key)
}

// SetCache delegates to state.Manager with the run's configured default
// TTL; ExecutionContext itself carries no per-call TTL parameter. A write
// that would introduce a new entry past config.Config.MaxCacheSize is
// logged and dropped rather than stored.
func (c *execContext) SetCache(key string, value any) {
	if c.maxCacheSize > 0 {
		if _, exists := c.state.GetCache(key); !exists && c.state.CacheSize() >= c.maxCacheSize {
			c.logger.WithNodeID(c.nodeID).WithField("cache_key", key).Warn("cache write rejected: max cache size exceeded")
			return
		}
	}
	c.state.SetCache(key, value, c.cacheTTL)
}

func (c *execContext) ModelInvoker() (nodetype.ModelInvoker, bool) {
	if c.modelInvoker == nil {
		return nil, false
	}
	return c.modelInvoker, true
}

func (c *execContext) RetryPolicy() (int, time.Duration) {
	return c.maxAttempts, c.retryBackoff
}
