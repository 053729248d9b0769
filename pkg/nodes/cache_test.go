package nodes

import (
	"testing"

	"github.com/weavegraph/weave/pkg/paramtype"
)

func TestCacheSetThenGet(t *testing.T) {
	r := DefaultRegistry()
	setExec, err := r.NewExecutor("cache_set", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	getExec, err := r.NewExecutor("cache_get", "n2", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := newFakeContext(map[string]paramtype.Value{
		"key":   {Kind: paramtype.KindString, Payload: "k"},
		"value": {Kind: paramtype.KindString, Payload: "v"},
	})
	if result := setExec.Execute(ctx); result.Err != nil {
		t.Fatalf("unexpected set error: %v", result.Err)
	}

	ctx.inputs = map[string]paramtype.Value{"key": {Kind: paramtype.KindString, Payload: "k"}}
	result := getExec.Execute(ctx)
	if result.Err != nil {
		t.Fatalf("unexpected get error: %v", result.Err)
	}
	if !result.Outputs["found"].Payload.(bool) {
		t.Fatal("expected found=true")
	}
	if got := result.Outputs["value"].Payload.(string); got != "v" {
		t.Fatalf("unexpected cached value: %q", got)
	}
}

func TestCacheGetMiss(t *testing.T) {
	r := DefaultRegistry()
	exec, err := r.NewExecutor("cache_get", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := newFakeContext(map[string]paramtype.Value{"key": {Kind: paramtype.KindString, Payload: "missing"}})
	result := exec.Execute(ctx)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Outputs["found"].Payload.(bool) {
		t.Fatal("expected found=false")
	}
}
