package nodetype

import (
	"testing"

	"github.com/weavegraph/weave/pkg/paramtype"
)

func testDescriptor(kind string) Descriptor {
	return Descriptor{
		Kind: kind,
		Name: kind,
		Inputs: []PortSpec{
			{Name: "a", Kind: paramtype.KindNumber, Required: true},
		},
		Outputs: []PortSpec{
			{Name: "result", Kind: paramtype.KindNumber},
		},
	}
}

func noopFactory(string, map[string]paramtype.Value) (Executor, error) {
	return noopExecutor{}, nil
}

type noopExecutor struct{}

func (noopExecutor) Execute(ec ExecutionContext) Result {
	return Success(map[string]paramtype.Value{"result": {Kind: paramtype.KindNumber, Payload: 0.0}})
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testDescriptor("double"), noopFactory)

	if !r.Has("double") {
		t.Fatal("expected double to be registered")
	}
	d, ok := r.Descriptor("double")
	if !ok {
		t.Fatal("expected descriptor for double")
	}
	if _, ok := d.InputSpec("a"); !ok {
		t.Fatal("expected input spec a")
	}
	exec, err := r.NewExecutor("double", "node-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exec == nil {
		t.Fatal("expected non-nil executor")
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testDescriptor("double"), noopFactory)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate kind registration")
		}
	}()
	r.MustRegister(testDescriptor("double"), noopFactory)
}

func TestNewExecutorUnknownKind(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewExecutor("missing", "node-1", nil); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestListKinds(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testDescriptor("a"), noopFactory)
	r.MustRegister(testDescriptor("b"), noopFactory)
	kinds := r.ListKinds()
	if len(kinds) != 2 {
		t.Fatalf("expected 2 kinds, got %d", len(kinds))
	}
}
