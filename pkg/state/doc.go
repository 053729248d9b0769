// Package state provides per-execution state for workflow runs.
//
// # Overview
//
// Manager holds the named state primitives nodes use to coordinate
// across a single execution: variables, counters, accumulators, and a
// TTL cache. Every primitive is addressed by name, so a graph can host
// any number of independent variable/counter/accumulator/cache nodes
// without them colliding.
//
// # Variables
//
//	sm := state.New()
//	sm.SetVariable("total", 42.0)
//	value, ok := sm.GetVariable("total")
//
// # Counters
//
//	count := sm.IncrementCounter("requests", 1)
//
// # Accumulators
//
//	sm.AppendAccumulator("results", someValue)
//	all := sm.GetAccumulator("results")
//
// # Cache
//
//	sm.SetCache("lookup:42", result, 5*time.Minute)
//	if cached, ok := sm.GetCache("lookup:42"); ok {
//	    return cached
//	}
//
// # Scope and Lifetime
//
// A Manager is scoped to a single execution: the scheduler creates one
// per run and discards it when the run finishes. Values do not persist
// across executions; workflow-level persistence is a job for an
// embedder's own storage layer, not this package.
//
// # Thread Safety
//
// All Manager methods are safe for concurrent use from multiple node
// executors running in the scheduler's worker pool.
package state
