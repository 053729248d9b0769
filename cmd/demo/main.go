// Command demo runs a handful of graph documents directly against the
// scheduler, without going through the HTTP server, and prints the node
// outputs and any errors as they arrive.
package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/weavegraph/weave/pkg/config"
	"github.com/weavegraph/weave/pkg/nodes"
	"github.com/weavegraph/weave/pkg/observer"
	"github.com/weavegraph/weave/pkg/paramtype"
	"github.com/weavegraph/weave/pkg/runtime"
	"github.com/weavegraph/weave/pkg/types"
)

func main() {
	fmt.Println("=== Example 1: Simple Addition ===")
	runGraph(additionGraph())

	fmt.Println("\n=== Example 2: Chained Arithmetic (10 + 5) * 2 - 3 ===")
	runGraph(chainedGraph())

	fmt.Println("\n=== Example 3: Division by Zero ===")
	runGraph(divisionByZeroGraph())

	fmt.Println("\n=== Example 4: Template Rendering ===")
	runGraph(templateGraph())
}

func runGraph(doc types.GraphDocument) {
	registry := nodes.DefaultRegistry()
	sched := runtime.NewScheduler(doc, registry, config.Default())

	bundle := observer.Bundle{
		OnNodeStart: func(nodeID string) {
			fmt.Printf("  [start]    %s\n", nodeID)
		},
		OnNodeComplete: func(nodeID string, outputs map[string]paramtype.Value) {
			fmt.Printf("  [complete] %s outputs=%v\n", nodeID, outputs)
		},
		OnNodeError: func(nodeID, message string) {
			fmt.Printf("  [error]    %s: %s\n", nodeID, message)
		},
	}

	state, err := sched.Execute(context.Background(), bundle)
	if err != nil {
		fmt.Printf("Execution failed: %v\n", err)
		return
	}

	stateJSON, _ := json.MarshalIndent(state, "", "  ")
	fmt.Println(string(stateJSON))
}

func numberPort(name string, value float64) types.Port {
	v := paramtype.Value{Kind: paramtype.KindNumber, Payload: value}
	return types.Port{Name: name, Kind: paramtype.KindNumber, Value: &v}
}

func stringPort(name string, value string) types.Port {
	v := paramtype.Value{Kind: paramtype.KindString, Payload: value}
	return types.Port{Name: name, Kind: paramtype.KindString, Value: &v}
}

func edge(id, source, sourcePort, target, targetPort string) types.Edge {
	return types.Edge{ID: id, Source: source, SourcePort: sourcePort, Target: target, TargetPort: targetPort}
}

func additionGraph() types.GraphDocument {
	return types.GraphDocument{
		ID:   "demo-addition",
		Name: "simple addition",
		Nodes: []types.Node{
			{ID: "1", Kind: "number_widget", Inputs: []types.Port{numberPort("value", 10)}, Outputs: []types.Port{{Name: "value", Kind: paramtype.KindNumber}}},
			{ID: "2", Kind: "number_widget", Inputs: []types.Port{numberPort("value", 5)}, Outputs: []types.Port{{Name: "value", Kind: paramtype.KindNumber}}},
			{ID: "3", Kind: "addition", Inputs: []types.Port{{Name: "a", Kind: paramtype.KindNumber}, {Name: "b", Kind: paramtype.KindNumber}}, Outputs: []types.Port{{Name: "result", Kind: paramtype.KindNumber}}},
		},
		Edges: []types.Edge{
			edge("e1-3", "1", "value", "3", "a"),
			edge("e2-3", "2", "value", "3", "b"),
		},
	}
}

func chainedGraph() types.GraphDocument {
	return types.GraphDocument{
		ID:   "demo-chained",
		Name: "chained arithmetic",
		Nodes: []types.Node{
			{ID: "1", Kind: "number_widget", Inputs: []types.Port{numberPort("value", 10)}, Outputs: []types.Port{{Name: "value", Kind: paramtype.KindNumber}}},
			{ID: "2", Kind: "number_widget", Inputs: []types.Port{numberPort("value", 5)}, Outputs: []types.Port{{Name: "value", Kind: paramtype.KindNumber}}},
			{ID: "3", Kind: "addition", Inputs: []types.Port{{Name: "a", Kind: paramtype.KindNumber}, {Name: "b", Kind: paramtype.KindNumber}}, Outputs: []types.Port{{Name: "result", Kind: paramtype.KindNumber}}},
			{ID: "4", Kind: "number_widget", Inputs: []types.Port{numberPort("value", 2)}, Outputs: []types.Port{{Name: "value", Kind: paramtype.KindNumber}}},
			{ID: "5", Kind: "multiplication", Inputs: []types.Port{{Name: "a", Kind: paramtype.KindNumber}, {Name: "b", Kind: paramtype.KindNumber}}, Outputs: []types.Port{{Name: "result", Kind: paramtype.KindNumber}}},
			{ID: "6", Kind: "number_widget", Inputs: []types.Port{numberPort("value", 3)}, Outputs: []types.Port{{Name: "value", Kind: paramtype.KindNumber}}},
			{ID: "7", Kind: "subtraction", Inputs: []types.Port{{Name: "a", Kind: paramtype.KindNumber}, {Name: "b", Kind: paramtype.KindNumber}}, Outputs: []types.Port{{Name: "result", Kind: paramtype.KindNumber}}},
		},
		Edges: []types.Edge{
			edge("e1-3", "1", "value", "3", "a"),
			edge("e2-3", "2", "value", "3", "b"),
			edge("e3-5", "3", "result", "5", "a"),
			edge("e4-5", "4", "value", "5", "b"),
			edge("e5-7", "5", "result", "7", "a"),
			edge("e6-7", "6", "value", "7", "b"),
		},
	}
}

func divisionByZeroGraph() types.GraphDocument {
	return types.GraphDocument{
		ID:   "demo-division-by-zero",
		Name: "division by zero",
		Nodes: []types.Node{
			{ID: "1", Kind: "number_widget", Inputs: []types.Port{numberPort("value", 100)}, Outputs: []types.Port{{Name: "value", Kind: paramtype.KindNumber}}},
			{ID: "2", Kind: "number_widget", Inputs: []types.Port{numberPort("value", 0)}, Outputs: []types.Port{{Name: "value", Kind: paramtype.KindNumber}}},
			{ID: "3", Kind: "division", Inputs: []types.Port{{Name: "a", Kind: paramtype.KindNumber}, {Name: "b", Kind: paramtype.KindNumber}}, Outputs: []types.Port{{Name: "result", Kind: paramtype.KindNumber}}},
		},
		Edges: []types.Edge{
			edge("e1-3", "1", "value", "3", "a"),
			edge("e2-3", "2", "value", "3", "b"),
		},
	}
}

func templateGraph() types.GraphDocument {
	return types.GraphDocument{
		ID:   "demo-template",
		Name: "template rendering",
		Nodes: []types.Node{
			{ID: "1", Kind: "template", Inputs: []types.Port{stringPort("template", "Hello, {{.Name}}!")}, Outputs: []types.Port{{Name: "result", Kind: paramtype.KindString}}},
		},
	}
}
