package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/weavegraph/weave/pkg/observer"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// executionSpans tracks the in-flight workflow span and per-node spans for
// one execution, since observer.Bundle callbacks carry no context of their
// own beyond the node id.
type executionSpans struct {
	mu         sync.Mutex
	workflow   trace.Span
	nodeSpans  map[string]trace.Span
	nodeStarts map[string]time.Time
}

// NewBundle builds an observer.Bundle that records an OpenTelemetry span
// per node plus workflow-level metrics through provider.
func NewBundle(ctx context.Context, provider *Provider, workflowID, executionID string) observer.Bundle {
	_, workflowSpan := provider.Tracer().Start(ctx, "workflow.execute",
		trace.WithAttributes(
			attribute.String("workflow.id", workflowID),
			attribute.String("execution.id", executionID),
		),
	)

	state := &executionSpans{
		workflow:   workflowSpan,
		nodeSpans:  make(map[string]trace.Span),
		nodeStarts: make(map[string]time.Time),
	}
	workflowStart := time.Now()
	nodesCompleted := 0

	return observer.Bundle{
		OnNodeStart: func(nodeID string) {
			state.mu.Lock()
			defer state.mu.Unlock()

			spanCtx := trace.ContextWithSpan(ctx, state.workflow)
			_, span := provider.Tracer().Start(spanCtx, "node.execute",
				trace.WithAttributes(
					attribute.String("node.id", nodeID),
					attribute.String("execution.id", executionID),
				),
			)
			state.nodeSpans[nodeID] = span
			state.nodeStarts[nodeID] = time.Now()
		},
		OnNodeComplete: func(nodeID string, outputs map[string]paramtype.Value) {
			endNodeSpan(provider, state, nodeID, nil)
			nodesCompleted++
		},
		OnNodeError: func(nodeID string, message string) {
			endNodeSpan(provider, state, nodeID, errString(message))
		},
		OnExecutionComplete: func() {
			endWorkflowSpan(provider, state, workflowID, workflowStart, nodesCompleted, nil)
		},
		OnExecutionError: func(message string) {
			endWorkflowSpan(provider, state, workflowID, workflowStart, nodesCompleted, errString(message))
		},
	}
}

type stringError string

func (e stringError) Error() string { return string(e) }

func errString(message string) error {
	if message == "" {
		return nil
	}
	return stringError(message)
}

func endNodeSpan(provider *Provider, state *executionSpans, nodeID string, err error) {
	state.mu.Lock()
	defer state.mu.Unlock()

	var duration time.Duration
	if start, ok := state.nodeStarts[nodeID]; ok {
		duration = time.Since(start)
		delete(state.nodeStarts, nodeID)
	}
	provider.RecordNodeExecution(context.Background(), nodeID, "", duration, err == nil)

	span, ok := state.nodeSpans[nodeID]
	if !ok {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "node completed successfully")
	}
	span.End()
	delete(state.nodeSpans, nodeID)
}

func endWorkflowSpan(provider *Provider, state *executionSpans, workflowID string, start time.Time, nodesExecuted int, err error) {
	state.mu.Lock()
	defer state.mu.Unlock()

	duration := time.Since(start)
	provider.RecordWorkflowExecution(context.Background(), workflowID, duration, err == nil, nodesExecuted)

	if state.workflow == nil {
		return
	}
	if err != nil {
		state.workflow.RecordError(err)
		state.workflow.SetStatus(codes.Error, err.Error())
	} else {
		state.workflow.SetStatus(codes.Ok, "workflow completed successfully")
	}
	state.workflow.End()
}
