package nodes

import (
	"github.com/xeipuuv/gojsonpointer"

	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// jsonExtractExecutor pulls a value out of a json input by JSON Pointer
// (RFC 6901), using the same gojsonpointer library gojsonschema already
// pulls in transitively for $ref resolution.
type jsonExtractExecutor struct{}

func (jsonExtractExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	doc, ok := ec.Input("document")
	if !ok {
		return nodetype.Failure(errMissingInput("document"))
	}
	pathValue, ok := ec.Input("path")
	if !ok {
		return nodetype.Failure(errMissingInput("path"))
	}
	path, ok := pathValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("path"))
	}

	pointer, err := gojsonpointer.NewJsonPointer(path)
	if err != nil {
		return nodetype.Failure(err)
	}
	value, _, err := pointer.Get(doc.Payload)
	if err != nil {
		return nodetype.Failure(err)
	}
	return nodetype.Success(map[string]paramtype.Value{
		"value": {Kind: paramtype.KindAny, Payload: value},
	})
}

func jsonExtractDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "json_extract", Name: "JSON Extract", Category: nodetype.CategoryData,
		Description: "Extracts a value from a JSON document by JSON Pointer path.",
		Inputs: []nodetype.PortSpec{
			{Name: "document", Kind: paramtype.KindJSON, Required: true},
			{Name: "path", Kind: paramtype.KindString, Required: true},
		},
		Outputs: []nodetype.PortSpec{{Name: "value", Kind: paramtype.KindAny}},
	}
}

func registerExtract(r *nodetype.Registry) {
	r.MustRegister(jsonExtractDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return jsonExtractExecutor{}, nil
	})
}
