// Package observer provides the scheduler's lifecycle-event surface.
//
// # Overview
//
// A Bundle is a set of five optional callbacks an embedder fills in to
// observe a run without coupling to how the scheduler dispatches nodes:
// onNodeStart, onNodeComplete, onNodeError, onExecutionComplete, and
// onExecutionError. Every field may be left nil; the scheduler simply
// skips invoking it.
//
// # Event Ordering
//
// For any node that actually runs, onNodeStart strictly precedes its
// terminal event (onNodeComplete or onNodeError). A node skipped because
// an upstream dependency failed receives neither callback — skipping is
// silent by design, so an embedder can distinguish "this node errored"
// from "this node was cut off upstream". onExecutionComplete or
// onExecutionError, whichever applies, is always the last event of a run.
//
// # Failure Isolation
//
// Callbacks are invoked serially from the scheduler's own bookkeeping
// goroutine. A callback that panics is recovered and logged; it cannot
// abort the run or prevent later callbacks from firing.
//
// # Built-in Bundles
//
// NewLoggingBundle wraps a logging.Logger into a Bundle that logs every
// lifecycle event, useful for local development and debugging.
package observer
