package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/weavegraph/weave/pkg/config"
	"github.com/weavegraph/weave/pkg/nodes"
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/observer"
	"github.com/weavegraph/weave/pkg/paramtype"
	"github.com/weavegraph/weave/pkg/types"
)

func numberLiteral(v float64) *paramtype.Value {
	return &paramtype.Value{Kind: paramtype.KindNumber, Payload: v}
}

func mathNode(id, kind, name string, a, b *paramtype.Value) types.Node {
	return types.Node{
		ID:   id,
		Kind: types.NodeKind(kind),
		Name: name,
		Inputs: []types.Port{
			{Name: "a", Kind: paramtype.KindNumber, Required: true, Value: a},
			{Name: "b", Kind: paramtype.KindNumber, Required: true, Value: b},
		},
		Outputs: []types.Port{{Name: "result", Kind: paramtype.KindNumber}},
	}
}

func edge(id, source, sourcePort, target, targetPort string) types.Edge {
	return types.Edge{ID: id, Source: source, SourcePort: sourcePort, Target: target, TargetPort: targetPort}
}

// TestSingleAdditionNode runs a single addition node to completion.
func TestSingleAdditionNode(t *testing.T) {
	doc := types.GraphDocument{
		ID: "wf1",
		Nodes: []types.Node{
			mathNode("n1", "addition", "Add", numberLiteral(2), numberLiteral(3)),
		},
	}

	sched := NewScheduler(doc, nodes.DefaultRegistry(), config.Testing())
	state, err := sched.Execute(context.Background(), observer.Bundle{})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if state.Aborted {
		t.Fatalf("execution unexpectedly aborted")
	}
	if state.Status["n1"] != NodeStatusCompleted {
		t.Fatalf("expected n1 completed, got %s", state.Status["n1"])
	}
	result := state.Outputs["n1"]["result"]
	if result.Payload.(float64) != 5 {
		t.Fatalf("expected 5, got %v", result.Payload)
	}
}

// TestChainedMath runs a chain of addition -> multiplication -> subtraction
// nodes and checks the final result.
func TestChainedMath(t *testing.T) {
	doc := types.GraphDocument{
		ID: "wf2",
		Nodes: []types.Node{
			mathNode("add", "addition", "Add", numberLiteral(2), numberLiteral(3)),
			mathNode("mul", "multiplication", "Mul", nil, numberLiteral(4)),
			mathNode("sub", "subtraction", "Sub", nil, numberLiteral(1)),
		},
		Edges: []types.Edge{
			edge("e1", "add", "result", "mul", "a"),
			edge("e2", "mul", "result", "sub", "a"),
		},
	}

	sched := NewScheduler(doc, nodes.DefaultRegistry(), config.Testing())
	state, err := sched.Execute(context.Background(), observer.Bundle{})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	for _, id := range []string{"add", "mul", "sub"} {
		if state.Status[id] != NodeStatusCompleted {
			t.Fatalf("expected %s completed, got %s", id, state.Status[id])
		}
	}
	if got := state.Outputs["sub"]["result"].Payload.(float64); got != 19 {
		t.Fatalf("expected (2+3)*4-1=19, got %v", got)
	}
}

// TestDivisionByZero checks that a dividing node fails with the expected
// message and the execution still completes normally.
func TestDivisionByZero(t *testing.T) {
	doc := types.GraphDocument{
		ID: "wf3",
		Nodes: []types.Node{
			mathNode("n1", "division", "Div", numberLiteral(10), numberLiteral(0)),
		},
	}

	var gotMessage string
	bundle := observer.Bundle{
		OnNodeError: func(nodeID, message string) { gotMessage = message },
	}

	sched := NewScheduler(doc, nodes.DefaultRegistry(), config.Testing())
	state, err := sched.Execute(context.Background(), bundle)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if state.Aborted {
		t.Fatalf("execution unexpectedly aborted")
	}
	if state.Status["n1"] != NodeStatusFailed {
		t.Fatalf("expected n1 failed, got %s", state.Status["n1"])
	}
	if gotMessage != "Division by zero is not allowed" {
		t.Fatalf("unexpected error message: %q", gotMessage)
	}
}

// TestPartialFailureIsolatesIndependentBranch checks that an independent
// branch completes even though another node fails, and the failing node's
// downstream is silently skipped.
func TestPartialFailureIsolatesIndependentBranch(t *testing.T) {
	doc := types.GraphDocument{
		ID: "wf6",
		Nodes: []types.Node{
			mathNode("fail", "division", "Div", numberLiteral(1), numberLiteral(0)),
			mathNode("downstream", "addition", "Add", nil, numberLiteral(1)),
			mathNode("independent", "addition", "Add", numberLiteral(1), numberLiteral(1)),
		},
		Edges: []types.Edge{
			edge("e1", "fail", "result", "downstream", "a"),
		},
	}

	var started, errored, completed []string
	bundle := observer.Bundle{
		OnNodeStart:    func(nodeID string) { started = append(started, nodeID) },
		OnNodeError:    func(nodeID, message string) { errored = append(errored, nodeID) },
		OnNodeComplete: func(nodeID string, outputs map[string]paramtype.Value) { completed = append(completed, nodeID) },
	}

	sched := NewScheduler(doc, nodes.DefaultRegistry(), config.Testing())
	state, err := sched.Execute(context.Background(), bundle)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if state.Status["fail"] != NodeStatusFailed {
		t.Fatalf("expected fail failed, got %s", state.Status["fail"])
	}
	if state.Status["downstream"] != NodeStatusSkipped {
		t.Fatalf("expected downstream skipped, got %s", state.Status["downstream"])
	}
	if state.Status["independent"] != NodeStatusCompleted {
		t.Fatalf("expected independent completed, got %s", state.Status["independent"])
	}
	for _, id := range []string{"downstream"} {
		for _, s := range started {
			if s == id {
				t.Fatalf("skipped node %s unexpectedly received onNodeStart", id)
			}
		}
		for _, e := range errored {
			if e == id {
				t.Fatalf("skipped node %s unexpectedly received onNodeError", id)
			}
		}
	}
}

// TestCancellationAborts covers the cancellation-finality property: a
// canceled context yields Aborted=true with no fatal error.
func TestCancellationAborts(t *testing.T) {
	doc := types.GraphDocument{
		ID: "wf-cancel",
		Nodes: []types.Node{
			mathNode("n1", "addition", "Add", numberLiteral(1), numberLiteral(1)),
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sched := NewScheduler(doc, nodes.DefaultRegistry(), config.Testing())
	state, err := sched.Execute(ctx, observer.Bundle{})
	if err != nil {
		t.Fatalf("cancellation should not return a fatal error, got %v", err)
	}
	if !state.Aborted {
		t.Fatalf("expected aborted execution")
	}
}

// TestMaxNodeExecutionsIsFatal covers the protection-counter fatal path.
func TestMaxNodeExecutionsIsFatal(t *testing.T) {
	doc := types.GraphDocument{
		ID: "wf-limit",
		Nodes: []types.Node{
			mathNode("n1", "addition", "Add", numberLiteral(1), numberLiteral(1)),
			mathNode("n2", "addition", "Add", numberLiteral(1), numberLiteral(1)),
		},
	}

	cfg := config.Testing()
	cfg.MaxNodeExecutions = 1

	sched := NewScheduler(doc, nodes.DefaultRegistry(), cfg)
	_, err := sched.Execute(context.Background(), observer.Bundle{})
	if err == nil {
		t.Fatalf("expected fatal error when MaxNodeExecutions is exceeded")
	}
}

// TestUnregisteredKindIsFatal covers the node-kind lookup failure path.
func TestUnregisteredKindIsFatal(t *testing.T) {
	doc := types.GraphDocument{
		ID: "wf-bad-kind",
		Nodes: []types.Node{
			{ID: "n1", Kind: types.NodeKind("not_a_real_kind")},
		},
	}

	sched := NewScheduler(doc, nodes.DefaultRegistry(), config.Testing())
	_, err := sched.Execute(context.Background(), observer.Bundle{})
	if err == nil {
		t.Fatalf("expected fatal error for an unregistered node kind")
	}
}

// TestExecutionTimeoutAborts exercises MaxExecutionTime end-to-end against a
// model_invoke node whose invoker deliberately blocks.
func TestExecutionTimeoutAborts(t *testing.T) {
	doc := types.GraphDocument{
		ID: "wf-timeout",
		Nodes: []types.Node{
			{
				ID:   "n1",
				Kind: "model_invoke",
				Inputs: []types.Port{
					{Name: "prompt", Kind: paramtype.KindString, Required: true, Value: &paramtype.Value{Kind: paramtype.KindString, Payload: "hello"}},
				},
				Outputs: []types.Port{{Name: "response", Kind: paramtype.KindString}},
			},
		},
	}

	cfg := config.Testing()
	cfg.MaxExecutionTime = 10 * time.Millisecond

	sched := NewScheduler(doc, nodes.DefaultRegistry(), cfg).WithModelInvoker(blockingInvoker{})
	state, err := sched.Execute(context.Background(), observer.Bundle{})
	if err != nil {
		t.Fatalf("timeout should not surface as a fatal scheduler error, got %v", err)
	}
	if !state.Aborted {
		t.Fatalf("expected aborted execution on timeout")
	}
}

type blockingInvoker struct{}

func (blockingInvoker) Invoke(ctx context.Context, prompt string, params map[string]paramtype.Value) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

var _ nodetype.ModelInvoker = blockingInvoker{}
