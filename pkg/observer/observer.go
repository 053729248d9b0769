// Package observer defines the scheduler's lifecycle-event surface:
// five independently-optional callbacks an embedder can fill in to watch
// a run without coupling to how the scheduler dispatches nodes. A struct of
// plain func fields lets every callback stay optional — a nil field is
// simply never called, with no dead-method implementations required.
package observer

import "github.com/weavegraph/weave/pkg/paramtype"

// Bundle is the set of lifecycle callbacks a Scheduler invokes. Every field
// is optional; a nil field is simply never called.
type Bundle struct {
	// OnNodeStart fires the instant a node is dispatched to a worker.
	OnNodeStart func(nodeID string)

	// OnNodeComplete fires when a node finishes successfully, carrying its
	// named output values.
	OnNodeComplete func(nodeID string, outputs map[string]paramtype.Value)

	// OnNodeError fires when a node's own execution fails. It is never
	// invoked for a node that was skipped due to an upstream failure —
	// skipping is silent by design.
	OnNodeError func(nodeID string, message string)

	// OnExecutionComplete fires exactly once, as the final event of a run
	// that was not aborted and did not hit a fatal scheduler error.
	OnExecutionComplete func()

	// OnExecutionError fires exactly once, as the final event of a run
	// that hit a fatal scheduler-internal invariant violation. Mutually
	// exclusive with OnExecutionComplete.
	OnExecutionError func(message string)
}

// onPanicFunc receives whatever recover() produced when a callback threw.
// The scheduler passes one in to log the panic through its own logger
// instead of letting it escape and take the run down with it: a callback
// that throws is logged, not retried, and the run continues.
type onPanicFunc func(recovered any)

// NotifyNodeStart invokes OnNodeStart if set.
func (b Bundle) NotifyNodeStart(nodeID string, onPanic onPanicFunc) {
	if b.OnNodeStart == nil {
		return
	}
	defer guard(onPanic)
	b.OnNodeStart(nodeID)
}

// NotifyNodeComplete invokes OnNodeComplete if set.
func (b Bundle) NotifyNodeComplete(nodeID string, outputs map[string]paramtype.Value, onPanic onPanicFunc) {
	if b.OnNodeComplete == nil {
		return
	}
	defer guard(onPanic)
	b.OnNodeComplete(nodeID, outputs)
}

// NotifyNodeError invokes OnNodeError if set.
func (b Bundle) NotifyNodeError(nodeID string, message string, onPanic onPanicFunc) {
	if b.OnNodeError == nil {
		return
	}
	defer guard(onPanic)
	b.OnNodeError(nodeID, message)
}

// NotifyExecutionComplete invokes OnExecutionComplete if set.
func (b Bundle) NotifyExecutionComplete(onPanic onPanicFunc) {
	if b.OnExecutionComplete == nil {
		return
	}
	defer guard(onPanic)
	b.OnExecutionComplete()
}

// NotifyExecutionError invokes OnExecutionError if set.
func (b Bundle) NotifyExecutionError(message string, onPanic onPanicFunc) {
	if b.OnExecutionError == nil {
		return
	}
	defer guard(onPanic)
	b.OnExecutionError(message)
}

func guard(onPanic onPanicFunc) {
	if r := recover(); r != nil && onPanic != nil {
		onPanic(r)
	}
}
