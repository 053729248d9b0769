package nodes

import (
	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// widgetExecutor returns a literal value supplied at graph-authoring time.
// The literal arrives as the node's "value" input port, resolved from its
// port-level default/Value before the node ever runs (pkg/runtime's
// literalConfig), so Execute only has to pass it through to its declared
// output.
type widgetExecutor struct {
	kind paramtype.Kind
}

func (e widgetExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	value, ok := ec.Input("value")
	if !ok {
		return nodetype.Failure(errMissingInput("value"))
	}
	return nodetype.Success(map[string]paramtype.Value{"value": value})
}

func widgetDescriptor(kind string, name string, paramKind paramtype.Kind) nodetype.Descriptor {
	port := nodetype.PortSpec{Name: "value", Kind: paramKind}
	return nodetype.Descriptor{
		Kind: kind, Name: name, Category: nodetype.CategoryIO,
		Description: name + " literal value.",
		Inputs:      []nodetype.PortSpec{port},
		Outputs:     []nodetype.PortSpec{port},
	}
}

func registerWidgets(r *nodetype.Registry) {
	widgets := []struct {
		kind      string
		name      string
		paramKind paramtype.Kind
	}{
		{"number_widget", "Number", paramtype.KindNumber},
		{"text_widget", "Text", paramtype.KindString},
		{"boolean_widget", "Boolean", paramtype.KindBoolean},
	}
	for _, w := range widgets {
		w := w
		r.MustRegister(widgetDescriptor(w.kind, w.name, w.paramKind), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
			return widgetExecutor{kind: w.paramKind}, nil
		})
	}
}
