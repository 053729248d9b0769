// Package logging provides structured logging for the workflow engine,
// built on the standard library's log/slog.
//
// # Overview
//
// Logger wraps an slog.Logger with chained With* methods that attach
// workflow/execution/node context to every subsequent log line, the way
// request-scoped loggers are built in most slog-based services.
//
// # Basic Usage
//
//	import "github.com/weavegraph/weave/pkg/logging"
//
//	logger := logging.New(logging.DefaultConfig())
//	logger.Info("execution started")
//
// # Chained Context
//
//	logger = logger.
//	    WithWorkflowID(workflowID).
//	    WithExecutionID(executionID).
//	    WithNodeID(nodeID).
//	    WithNodeKind(node.Kind)
//
//	logger.Debug("node started")
//
// # Configuration
//
//	cfg := logging.Config{
//	    Level:         "info",   // debug, info, warn, error
//	    Output:        os.Stdout,
//	    Pretty:        false,    // JSON when false, slog's text handler when true
//	    IncludeCaller: false,
//	}
//
// # Trace Correlation
//
// WithTraceContext attaches the trace_id/span_id of the active
// OpenTelemetry span in a context.Context, if any, so a log line can be
// cross-referenced with the span recorded for the same execution or node:
//
//	logger = logger.WithTraceContext(ctx)
//
// # Context Propagation
//
// WithContext/FromContext carry a *Logger through a context.Context so
// deeply nested calls can retrieve the request-scoped logger without
// threading it through every function signature:
//
//	ctx = logger.WithContext(ctx)
//	// ... later, in an unrelated call chain ...
//	logging.FromContext(ctx).Info("resumed")
//
// # Thread Safety
//
// Logger is safe for concurrent use; each With* call returns a new
// *Logger wrapping an independent slog.Logger handle rather than
// mutating the receiver.
package logging
