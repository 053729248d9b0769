package nodes

import (
	"strings"
	"text/template"

	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// templateExecutor expands a text/template against a JSON data payload. A
// key missing from the data renders as empty text.
type templateExecutor struct{}

func (templateExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	tmplValue, ok := ec.Input("template")
	if !ok {
		return nodetype.Failure(errMissingInput("template"))
	}
	text, ok := tmplValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("template"))
	}

	data := any(map[string]any{})
	if dataValue, ok := ec.Input("data"); ok {
		data = dataValue.Payload
	}

	tmpl, err := template.New(ec.NodeID()).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nodetype.Failure(err)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return nodetype.Failure(err)
	}
	// missingkey=zero on map[string]any data yields a nil interface, which
	// text/template prints as "<no value>".
	rendered := strings.ReplaceAll(out.String(), "<no value>", "")
	return nodetype.Success(map[string]paramtype.Value{
		"result": {Kind: paramtype.KindString, Payload: rendered},
	})
}

func templateDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "template", Name: "Template", Category: nodetype.CategoryData,
		Description: "Expands a text/template string against a JSON data payload.",
		Inputs: []nodetype.PortSpec{
			{Name: "template", Kind: paramtype.KindString, Required: true},
			{Name: "data", Kind: paramtype.KindJSON},
		},
		Outputs: []nodetype.PortSpec{{Name: "result", Kind: paramtype.KindString}},
	}
}

func registerTemplate(r *nodetype.Registry) {
	r.MustRegister(templateDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return templateExecutor{}, nil
	})
}
