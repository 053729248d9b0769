package runtime

import "errors"

// ErrMaxNodeExecutionsExceeded is the fatal scheduler error raised when a
// run dispatches more nodes than config.Config.MaxNodeExecutions allows.
// It is a protection limit, not a graph-shape problem, so it surfaces as
// onExecutionError rather than a per-node failure.
var ErrMaxNodeExecutionsExceeded = errors.New("runtime: max node executions exceeded")
