package runtime

import (
	"context"
	"fmt"

	"github.com/weavegraph/weave/pkg/config"
	"github.com/weavegraph/weave/pkg/logging"
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/observer"
	"github.com/weavegraph/weave/pkg/paramtype"
	"github.com/weavegraph/weave/pkg/state"
)

// NodeStatus is a node's terminal (or in-flight) disposition within one run.
type NodeStatus string

const (
	NodeStatusPending   NodeStatus = "pending"
	NodeStatusRunning   NodeStatus = "running"
	NodeStatusCompleted NodeStatus = "completed"
	NodeStatusFailed    NodeStatus = "failed"
	NodeStatusSkipped   NodeStatus = "skipped"
)

// ExecutionState is the final snapshot of one Scheduler.Execute run.
type ExecutionState struct {
	Status  map[string]NodeStatus
	Outputs map[string]map[string]paramtype.Value
	Errors  map[string]string
	Aborted bool
}

// nodeOutcome is what a worker goroutine reports back to the dispatch loop.
type nodeOutcome struct {
	nodeID  string
	outputs map[string]paramtype.Value
	err     error
}

// runState holds everything the dispatch loop mutates over the course of
// one execution. Only the loop's own goroutine touches these fields —
// workers communicate exclusively through resultCh — so none of it needs
// its own lock.
type runState struct {
	plan         *execPlan
	config       *config.Config
	logger       *logging.Logger
	bundle       observer.Bundle
	state        *state.Manager
	modelInvoker nodetype.ModelInvoker
	workflowID   string
	executionID  string

	status   map[string]NodeStatus
	outputs  map[string]map[string]paramtype.Value
	errors   map[string]string
	inputs   map[string]map[string]paramtype.Value
	incoming map[string]int
	ready    []string

	executed int
}

func newRunState(plan *execPlan, cfg *config.Config, logger *logging.Logger, bundle observer.Bundle, modelInvoker nodetype.ModelInvoker, workflowID, executionID string) *runState {
	r := &runState{
		plan:         plan,
		config:       cfg,
		logger:       logger,
		bundle:       bundle,
		state:        state.New(),
		modelInvoker: modelInvoker,
		workflowID:   workflowID,
		executionID:  executionID,
		status:       make(map[string]NodeStatus, len(plan.order)),
		outputs:      make(map[string]map[string]paramtype.Value, len(plan.order)),
		errors:       make(map[string]string),
		inputs:       make(map[string]map[string]paramtype.Value, len(plan.order)),
		incoming:     make(map[string]int, len(plan.order)),
	}
	for id, n := range plan.nodeByID {
		r.status[id] = NodeStatusPending
		r.inputs[id] = literalConfig(n)
	}
	for id, c := range plan.incoming {
		r.incoming[id] = c
	}
	for _, id := range plan.order {
		if r.incoming[id] == 0 {
			r.ready = append(r.ready, id)
		}
	}
	return r
}

// onPanic is passed to every observer.Bundle.Notify* call so a misbehaving
// callback is recovered and logged rather than taking the run down with it.
func (r *runState) onPanic(recovered any) {
	r.logger.WithField("panic", recovered).Error("observer callback panicked")
}

// loop runs the bounded dispatch loop to completion, cancellation, or a
// fatal scheduler error. A non-nil error return is always fatal (protection
// limit tripped, or an internal invariant failed); cancellation is instead
// reported via the returned ExecutionState's Aborted field with a nil error.
func (r *runState) loop(ctx context.Context) (*ExecutionState, error) {
	poolSize := r.config.EffectiveWorkerPoolSize()
	// Buffered to poolSize: at most poolSize workers are ever in flight at
	// once, so every worker's send below can complete even if the loop has
	// stopped reading (the abort path drains by count, not by readiness).
	resultCh := make(chan nodeOutcome, poolSize)
	busy := 0
	var fatalErr error

	for fatalErr == nil {
		for busy < poolSize && len(r.ready) > 0 && ctx.Err() == nil {
			nodeID := r.ready[0]
			r.ready = r.ready[1:]
			if r.status[nodeID] != NodeStatusPending {
				continue
			}
			if r.config.MaxNodeExecutions > 0 && r.executed >= r.config.MaxNodeExecutions {
				fatalErr = ErrMaxNodeExecutionsExceeded
				break
			}
			r.dispatch(ctx, nodeID, resultCh)
			busy++
		}
		if fatalErr != nil {
			break
		}
		if busy == 0 && len(r.ready) == 0 {
			break
		}

		select {
		case <-ctx.Done():
		case res := <-resultCh:
			busy--
			if ctx.Err() == nil {
				r.handleResult(res)
				continue
			}
		}
		for busy > 0 {
			<-resultCh
			busy--
		}
		return r.snapshot(true), nil
	}

	if fatalErr != nil {
		for busy > 0 {
			<-resultCh
			busy--
		}
		return r.snapshot(false), fatalErr
	}

	if err := r.checkComplete(); err != nil {
		return r.snapshot(false), err
	}
	return r.snapshot(false), nil
}

func (r *runState) dispatch(ctx context.Context, nodeID string, resultCh chan<- nodeOutcome) {
	r.executed++
	r.status[nodeID] = NodeStatusRunning
	node := r.plan.nodeByID[nodeID]
	exec := r.plan.executors[nodeID]

	r.logger.WithNodeID(nodeID).WithNodeKind(node.Kind).Debug("node execution started")
	r.bundle.NotifyNodeStart(nodeID, r.onPanic)

	ec := &execContext{
		ctx:          ctx,
		nodeID:       nodeID,
		executionID:  r.executionID,
		workflowID:   r.workflowID,
		inputs:       r.inputs[nodeID],
		state:        r.state,
		cacheTTL:     r.config.DefaultCacheTTL,
		maxVariables: r.config.MaxVariables,
		maxCacheSize: r.config.MaxCacheSize,
		logger:       r.logger,
		modelInvoker: r.modelInvoker,
		maxAttempts:  r.config.DefaultMaxAttempts,
		retryBackoff: r.config.DefaultBackoff,
	}

	go func() {
		result := exec.Execute(ec)
		// Always send, even past cancellation: resultCh is buffered to
		// poolSize so this never blocks, and the loop's abort path drains
		// exactly `busy` sends rather than racing a second select here.
		resultCh <- nodeOutcome{nodeID: nodeID, outputs: result.Outputs, err: result.Err}
	}()
}

func (r *runState) handleResult(res nodeOutcome) {
	if res.err != nil {
		r.failNode(res.nodeID, res.err.Error())
		return
	}

	for _, e := range r.plan.downstream[res.nodeID] {
		if _, ok := res.outputs[e.SourcePort]; !ok {
			r.failNode(res.nodeID, fmt.Sprintf("MISSING_OUTPUT: node did not produce output %q", e.SourcePort))
			return
		}
	}

	r.status[res.nodeID] = NodeStatusCompleted
	r.outputs[res.nodeID] = res.outputs
	r.logger.WithNodeID(res.nodeID).Debug("node execution completed")
	r.bundle.NotifyNodeComplete(res.nodeID, res.outputs, r.onPanic)

	for _, e := range r.plan.downstream[res.nodeID] {
		if r.status[e.Target] != NodeStatusPending {
			continue
		}
		value := res.outputs[e.SourcePort]
		targetSpec, _ := r.plan.descByID[e.Target].InputSpec(e.TargetPort)
		if !paramtype.Compatible(value.Kind, targetSpec.Kind) {
			r.failNode(e.Target, fmt.Sprintf("INPUT_VALIDATION: port %q received incompatible kind %q, want %q", e.TargetPort, value.Kind, targetSpec.Kind))
			continue
		}
		r.inputs[e.Target][e.TargetPort] = value
		r.incoming[e.Target]--
		if r.incoming[e.Target] == 0 && r.status[e.Target] == NodeStatusPending {
			r.ready = append(r.ready, e.Target)
		}
	}
}

// failNode records nodeID as failed and silently skips its transitive
// downstream. A node that never reached dispatch (an INPUT_VALIDATION
// short-circuit discovered by the loop itself) still receives onNodeStart
// immediately before onNodeError, so "onNodeStart precedes a node's
// terminal event" holds for every node that produces one.
func (r *runState) failNode(nodeID string, message string) {
	if r.status[nodeID] == NodeStatusPending {
		r.bundle.NotifyNodeStart(nodeID, r.onPanic)
	}
	r.status[nodeID] = NodeStatusFailed
	r.errors[nodeID] = message
	r.logger.WithNodeID(nodeID).WithField("reason", message).Warn("node execution failed")
	r.bundle.NotifyNodeError(nodeID, message, r.onPanic)
	r.skipDownstream(nodeID)
}

// skipDownstream marks every not-yet-terminal descendant of nodeID as
// skipped, without ever dispatching it or invoking onNodeStart/onNodeError.
func (r *runState) skipDownstream(nodeID string) {
	queue := []string{nodeID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range r.plan.downstream[cur] {
			if r.status[e.Target] != NodeStatusPending {
				continue
			}
			r.status[e.Target] = NodeStatusSkipped
			r.logger.WithNodeID(e.Target).Debug("node skipped")
			queue = append(queue, e.Target)
		}
	}
}

// checkComplete is a defensive bug-catcher: every node must have reached a
// terminal status by the time the loop believes it is done.
func (r *runState) checkComplete() error {
	for _, id := range r.plan.order {
		if r.status[id] == NodeStatusPending || r.status[id] == NodeStatusRunning {
			return fmt.Errorf("runtime: execution ended with node %q still %s", id, r.status[id])
		}
	}
	return nil
}

func (r *runState) snapshot(aborted bool) *ExecutionState {
	status := make(map[string]NodeStatus, len(r.status))
	for k, v := range r.status {
		status[k] = v
	}
	outputs := make(map[string]map[string]paramtype.Value, len(r.outputs))
	for k, v := range r.outputs {
		outputs[k] = v
	}
	errs := make(map[string]string, len(r.errors))
	for k, v := range r.errors {
		errs[k] = v
	}
	return &ExecutionState{Status: status, Outputs: outputs, Errors: errs, Aborted: aborted}
}
