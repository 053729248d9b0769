package nodes

import (
	"testing"

	"github.com/weavegraph/weave/pkg/paramtype"
)

func TestVariableSetThenGet(t *testing.T) {
	r := DefaultRegistry()
	setExec, err := r.NewExecutor("variable_set", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	getExec, err := r.NewExecutor("variable_get", "n2", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := newFakeContext(map[string]paramtype.Value{
		"name":  {Kind: paramtype.KindString, Payload: "counter_seed"},
		"value": {Kind: paramtype.KindNumber, Payload: 7.0},
	})
	if result := setExec.Execute(ctx); result.Err != nil {
		t.Fatalf("unexpected set error: %v", result.Err)
	}

	ctx.inputs = map[string]paramtype.Value{"name": {Kind: paramtype.KindString, Payload: "counter_seed"}}
	result := getExec.Execute(ctx)
	if result.Err != nil {
		t.Fatalf("unexpected get error: %v", result.Err)
	}
	if !result.Outputs["found"].Payload.(bool) {
		t.Fatal("expected found=true")
	}
	if got := result.Outputs["value"].Payload.(float64); got != 7.0 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestVariableGetNotFound(t *testing.T) {
	r := DefaultRegistry()
	exec, err := r.NewExecutor("variable_get", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := newFakeContext(map[string]paramtype.Value{"name": {Kind: paramtype.KindString, Payload: "nope"}})
	result := exec.Execute(ctx)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Outputs["found"].Payload.(bool) {
		t.Fatal("expected found=false")
	}
}
