package types

import "context"

type contextKey int

const (
	contextKeyExecutionID contextKey = iota
	contextKeyWorkflowID
)

// WithExecutionID returns a context carrying the given execution id.
func WithExecutionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyExecutionID, id)
}

// GetExecutionID extracts the execution id stashed by WithExecutionID, if any.
func GetExecutionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKeyExecutionID).(string)
	return id, ok
}

// WithWorkflowID returns a context carrying the given graph document id.
func WithWorkflowID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyWorkflowID, id)
}

// GetWorkflowID extracts the graph document id stashed by WithWorkflowID, if any.
func GetWorkflowID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKeyWorkflowID).(string)
	return id, ok
}
