package nodes

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// schemaValidateExecutor validates a json input against an embedded JSON
// Schema. An explicit "strict" input selects whether a failing validation
// aborts the node (strict) or reports its errors through a second output
// port instead (lenient).
type schemaValidateExecutor struct{}

func (schemaValidateExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	doc, ok := ec.Input("document")
	if !ok {
		return nodetype.Failure(errMissingInput("document"))
	}
	schema, ok := ec.Input("schema")
	if !ok {
		return nodetype.Failure(errMissingInput("schema"))
	}
	strict := false
	if strictValue, ok := ec.Input("strict"); ok {
		if b, ok := strictValue.Payload.(bool); ok {
			strict = b
		}
	}

	schemaBytes, err := json.Marshal(schema.Payload)
	if err != nil {
		return nodetype.Failure(err)
	}
	docBytes, err := json.Marshal(doc.Payload)
	if err != nil {
		return nodetype.Failure(err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaBytes), gojsonschema.NewBytesLoader(docBytes))
	if err != nil {
		return nodetype.Failure(err)
	}

	if result.Valid() {
		return nodetype.Success(map[string]paramtype.Value{
			"valid":  {Kind: paramtype.KindBoolean, Payload: true},
			"errors": {Kind: paramtype.KindJSON, Payload: map[string]any{}},
		})
	}

	if strict {
		return nodetype.Failure(errSchemaValidationFailed(len(result.Errors())))
	}

	errs := make([]any, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, map[string]any{
			"field":       e.Field(),
			"type":        e.Type(),
			"description": e.Description(),
		})
	}
	return nodetype.Success(map[string]paramtype.Value{
		"valid":  {Kind: paramtype.KindBoolean, Payload: false},
		"errors": {Kind: paramtype.KindJSON, Payload: map[string]any{"errors": errs}},
	})
}

func schemaValidateDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "schema_validate", Name: "Schema Validate", Category: nodetype.CategoryValidation,
		Description: "Validates a JSON document against an embedded JSON Schema.",
		Inputs: []nodetype.PortSpec{
			{Name: "document", Kind: paramtype.KindJSON, Required: true},
			{Name: "schema", Kind: paramtype.KindJSON, Required: true},
			{Name: "strict", Kind: paramtype.KindBoolean, Default: &paramtype.Value{Kind: paramtype.KindBoolean, Payload: false}},
		},
		Outputs: []nodetype.PortSpec{
			{Name: "valid", Kind: paramtype.KindBoolean},
			{Name: "errors", Kind: paramtype.KindJSON},
		},
	}
}

func registerSchemaValidate(r *nodetype.Registry) {
	r.MustRegister(schemaValidateDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return schemaValidateExecutor{}, nil
	})
}
