// Package runtime schedules and executes a validated workflow graph.
//
// # Overview
//
// Scheduler walks a types.GraphDocument's dependency structure — computed
// once up front as a per-node incoming-edge count plus a downstream
// adjacency list, the same shape pkg/graph's Kahn's-algorithm sort
// derives — and dispatches ready nodes onto a bounded worker pool as their
// predecessors complete. It never retries a node itself; that is left to
// individual node kinds that choose to, via ExecutionContext.RetryPolicy
// (pkg/config's DefaultMaxAttempts/DefaultBackoff, threaded through
// unchanged). model_invoke is the only node kind in pkg/nodes that actually
// retries today, since it is the only one whose work can fail transiently.
//
// # Execution Context
//
// Each dispatched node receives an ExecutionContext view onto its own
// resolved inputs and a state.Manager shared by every node in the run,
// matching pkg/nodetype.ExecutionContext exactly.
//
// # Failure Isolation
//
// A node's own failure never aborts the run. Its transitive downstream is
// marked skipped — silently, with neither onNodeStart nor onNodeError —
// while independent branches continue to completion. Only a fatal
// scheduler-internal invariant (e.g. the node-execution protection counter
// tripping) or caller cancellation ends a run early.
//
// # Cancellation
//
// Scheduler.Cancel, or the caller's context being canceled or timing out,
// stops the dispatch loop from pulling further ready nodes. In-flight
// workers are allowed to drain, but their results are not delivered to the
// observer bundle and no onExecutionComplete/onExecutionError fires —
// callers read ExecutionState.Aborted instead.
package runtime
