package nodes

import (
	"testing"

	"github.com/weavegraph/weave/pkg/paramtype"
)

func runAccumulator(t *testing.T, ctx *fakeContext, op, name string, value *paramtype.Value) paramtype.Value {
	t.Helper()
	r := DefaultRegistry()
	exec, err := r.NewExecutor("accumulator", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inputs := map[string]paramtype.Value{
		"name": {Kind: paramtype.KindString, Payload: name},
		"op":   {Kind: paramtype.KindString, Payload: op},
	}
	if value != nil {
		inputs["value"] = *value
	}
	ctx.inputs = inputs
	result := exec.Execute(ctx)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	return result.Outputs["value"]
}

func TestAccumulatorSum(t *testing.T) {
	ctx := newFakeContext(nil)
	v1 := numberValue(2)
	v2 := numberValue(3)
	runAccumulator(t, ctx, "sum", "acc", &v1)
	got := runAccumulator(t, ctx, "sum", "acc", &v2)
	if got.Payload.(float64) != 5 {
		t.Fatalf("expected sum 5, got %v", got.Payload)
	}
}

func TestAccumulatorCount(t *testing.T) {
	ctx := newFakeContext(nil)
	v1 := numberValue(1)
	v2 := numberValue(1)
	v3 := numberValue(1)
	runAccumulator(t, ctx, "count", "acc", &v1)
	runAccumulator(t, ctx, "count", "acc", &v2)
	got := runAccumulator(t, ctx, "count", "acc", &v3)
	if got.Payload.(float64) != 3 {
		t.Fatalf("expected count 3, got %v", got.Payload)
	}
}

func TestAccumulatorArray(t *testing.T) {
	ctx := newFakeContext(nil)
	v1 := paramtype.Value{Kind: paramtype.KindString, Payload: "a"}
	v2 := paramtype.Value{Kind: paramtype.KindString, Payload: "b"}
	runAccumulator(t, ctx, "array", "acc", &v1)
	got := runAccumulator(t, ctx, "array", "acc", &v2)
	arr := got.Payload.([]any)
	if len(arr) != 2 || arr[0] != "a" || arr[1] != "b" {
		t.Fatalf("unexpected array accumulation: %v", arr)
	}
}

func TestAccumulatorTypeMismatch(t *testing.T) {
	ctx := newFakeContext(nil)
	text := paramtype.Value{Kind: paramtype.KindString, Payload: "oops"}
	r := DefaultRegistry()
	exec, err := r.NewExecutor("accumulator", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx.inputs = map[string]paramtype.Value{
		"name":  {Kind: paramtype.KindString, Payload: "acc"},
		"op":    {Kind: paramtype.KindString, Payload: "sum"},
		"value": text,
	}
	result := exec.Execute(ctx)
	if result.Err == nil {
		t.Fatal("expected a type mismatch error summing a string")
	}
}
