// Package graph provides graph algorithms and utilities for workflow execution.
//
// # Overview
//
// A Graph wraps a workflow's nodes and edges (types.Node, types.Edge) and
// answers ordering and structure questions about them. Edges point from
// source to target in the direction data flows; several edges may connect
// the same pair of nodes.
//
// # Operations
//
//   - TopologicalSort orders node ids so that every edge's source comes
//     before its target, using Kahn's algorithm. Nodes with no inbound edges
//     start the queue sorted by id; every other node is queued when its last
//     inbound edge has been processed. A cycle yields a nil order and an
//     error; an empty graph yields an empty order and no error.
//   - DetectCycles runs TopologicalSort and returns only its error. It
//     reports that a cycle exists, not which nodes form it.
//   - GetNode, GetNodeInputEdges and GetNodeOutputEdges look up a node by id
//     and the edges entering or leaving it.
//   - GetTerminalNodes returns the ids of nodes with no outgoing edges, in no
//     fixed order.
//
// # Usage
//
//	g := graph.New(nodes, edges)
//	order, err := g.TopologicalSort()
//	if err != nil {
//	    // the graph contains a cycle
//	}
//	for _, nodeID := range order {
//	    execute(nodeID)
//	}
//
// # Performance Characteristics
//
// TopologicalSort and DetectCycles visit each node and edge once, after an
// insertion sort of the nodes that have no inbound edges. The lookup
// methods scan the node or edge list.
//
// # Thread Safety
//
// No method modifies the Graph, so several goroutines may query the same
// Graph at once.
package graph
