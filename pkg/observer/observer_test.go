package observer

import (
	"testing"

	"github.com/weavegraph/weave/pkg/paramtype"
)

func TestBundleNilFieldsAreNoOps(t *testing.T) {
	var b Bundle
	b.NotifyNodeStart("n1", nil)
	b.NotifyNodeComplete("n1", nil, nil)
	b.NotifyNodeError("n1", "boom", nil)
	b.NotifyExecutionComplete(nil)
	b.NotifyExecutionError("boom", nil)
	// No field set means none of the above should have done anything
	// observable; reaching this line without panicking is the assertion.
}

func TestBundleInvokesSetCallbacks(t *testing.T) {
	var started, completed, errored, execDone, execErrored bool
	var gotOutputs map[string]paramtype.Value

	b := Bundle{
		OnNodeStart: func(nodeID string) {
			if nodeID != "n1" {
				t.Errorf("unexpected node id %q", nodeID)
			}
			started = true
		},
		OnNodeComplete: func(nodeID string, outputs map[string]paramtype.Value) {
			completed = true
			gotOutputs = outputs
		},
		OnNodeError: func(nodeID string, message string) {
			errored = true
		},
		OnExecutionComplete: func() {
			execDone = true
		},
		OnExecutionError: func(message string) {
			execErrored = true
		},
	}

	b.NotifyNodeStart("n1", nil)
	b.NotifyNodeComplete("n1", map[string]paramtype.Value{"result": {Kind: paramtype.KindNumber, Payload: 8.0}}, nil)
	b.NotifyNodeError("n2", "boom", nil)
	b.NotifyExecutionComplete(nil)
	b.NotifyExecutionError("fatal", nil)

	if !started || !completed || !errored || !execDone || !execErrored {
		t.Fatalf("expected all callbacks invoked: %v %v %v %v %v", started, completed, errored, execDone, execErrored)
	}
	if len(gotOutputs) != 1 {
		t.Fatalf("expected outputs to be passed through, got %v", gotOutputs)
	}
}

func TestBundleRecoversFromPanickingCallback(t *testing.T) {
	var recovered any
	b := Bundle{
		OnNodeStart: func(nodeID string) {
			panic("observer exploded")
		},
	}

	b.NotifyNodeStart("n1", func(r any) { recovered = r })

	if recovered == nil {
		t.Fatal("expected panic to be recovered and reported")
	}
}
