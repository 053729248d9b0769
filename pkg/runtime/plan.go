package runtime

import (
	"fmt"

	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
	"github.com/weavegraph/weave/pkg/types"
)

// execPlan is the static shape of one execution, computed once before any
// node runs: each node's instantiated Executor, its declared descriptor,
// and the dependency structure the dispatch loop walks — a per-node count
// of distinct inbound edges plus a downstream adjacency list, mirroring
// the in-degree/adjacency pair pkg/graph's TopologicalSort builds for
// Kahn's algorithm.
type execPlan struct {
	order      []string
	nodeByID   map[string]types.Node
	descByID   map[string]nodetype.Descriptor
	executors  map[string]nodetype.Executor
	downstream map[string][]types.Edge
	incoming   map[string]int
}

// buildPlan instantiates an Executor for every node and computes the
// dependency structure the dispatch loop needs. It assumes doc has already
// passed pkg/validate.Validate; it re-resolves descriptors but does not
// repeat structural validation.
func buildPlan(doc types.GraphDocument, nodeRegistry *nodetype.Registry) (*execPlan, error) {
	plan := &execPlan{
		nodeByID:   make(map[string]types.Node, len(doc.Nodes)),
		descByID:   make(map[string]nodetype.Descriptor, len(doc.Nodes)),
		executors:  make(map[string]nodetype.Executor, len(doc.Nodes)),
		downstream: make(map[string][]types.Edge, len(doc.Nodes)),
		incoming:   make(map[string]int, len(doc.Nodes)),
	}

	for _, n := range doc.Nodes {
		plan.order = append(plan.order, n.ID)
		plan.nodeByID[n.ID] = n
		plan.incoming[n.ID] = 0

		desc, ok := nodeRegistry.Descriptor(string(n.Kind))
		if !ok {
			return nil, fmt.Errorf("runtime: node %q references unregistered kind %q", n.ID, n.Kind)
		}
		plan.descByID[n.ID] = desc

		exec, err := nodeRegistry.NewExecutor(string(n.Kind), n.ID, literalConfig(n))
		if err != nil {
			return nil, fmt.Errorf("runtime: building executor for node %q: %w", n.ID, err)
		}
		plan.executors[n.ID] = exec
	}

	for _, e := range doc.Edges {
		plan.downstream[e.Source] = append(plan.downstream[e.Source], e)
		plan.incoming[e.Target]++
	}

	return plan, nil
}

// literalConfig collects the editor-supplied literal values on a node's
// input ports — used both as the Factory's static config argument and to
// seed a node's resolved inputs before any inbound edge delivers a value.
func literalConfig(n types.Node) map[string]paramtype.Value {
	cfg := make(map[string]paramtype.Value)
	for _, p := range n.Inputs {
		switch {
		case p.Value != nil:
			cfg[p.Name] = *p.Value
		case p.Default != nil:
			cfg[p.Name] = *p.Default
		}
	}
	return cfg
}
