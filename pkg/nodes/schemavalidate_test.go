package nodes

import (
	"testing"

	"github.com/weavegraph/weave/pkg/paramtype"
)

func testSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	}
}

func TestSchemaValidateExecutorValid(t *testing.T) {
	r := DefaultRegistry()
	exec, err := r.NewExecutor("schema_validate", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := newFakeContext(map[string]paramtype.Value{
		"document": {Kind: paramtype.KindJSON, Payload: map[string]any{"name": "Ada"}},
		"schema":   {Kind: paramtype.KindJSON, Payload: testSchema()},
	})
	result := exec.Execute(ctx)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if !result.Outputs["valid"].Payload.(bool) {
		t.Fatal("expected valid=true")
	}
}

func TestSchemaValidateExecutorInvalidLenient(t *testing.T) {
	r := DefaultRegistry()
	exec, err := r.NewExecutor("schema_validate", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := newFakeContext(map[string]paramtype.Value{
		"document": {Kind: paramtype.KindJSON, Payload: map[string]any{}},
		"schema":   {Kind: paramtype.KindJSON, Payload: testSchema()},
	})
	result := exec.Execute(ctx)
	if result.Err != nil {
		t.Fatalf("unexpected error in lenient mode: %v", result.Err)
	}
	if result.Outputs["valid"].Payload.(bool) {
		t.Fatal("expected valid=false")
	}
}

func TestSchemaValidateExecutorInvalidStrict(t *testing.T) {
	r := DefaultRegistry()
	exec, err := r.NewExecutor("schema_validate", "n1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := newFakeContext(map[string]paramtype.Value{
		"document": {Kind: paramtype.KindJSON, Payload: map[string]any{}},
		"schema":   {Kind: paramtype.KindJSON, Payload: testSchema()},
		"strict":   {Kind: paramtype.KindBoolean, Payload: true},
	})
	result := exec.Execute(ctx)
	if result.Err == nil {
		t.Fatal("expected an error in strict mode")
	}
}
