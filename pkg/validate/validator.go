package validate

import (
	"fmt"
	"sort"

	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
	"github.com/weavegraph/weave/pkg/types"
)

// Validate checks doc against nodeRegistry's declared node kinds and
// paramRegistry's parameter kinds, returning every structural and semantic
// problem it finds. An empty result means the graph is safe to schedule.
//
// Errors are appended in a fixed pass order — unknown kinds, then missing
// endpoints, then type mismatches, then duplicate connections, then
// required-input gaps, then cycles — and within each pass in node/edge
// declaration order (required-input gaps are instead sorted by node id, then
// port name), making the result deterministic for identical input.
func Validate(doc types.GraphDocument, nodeRegistry *nodetype.Registry, paramRegistry *paramtype.Registry) []Error {
	var errs []Error

	nodeByID := make(map[string]types.Node, len(doc.Nodes))
	descByNode := make(map[string]nodetype.Descriptor, len(doc.Nodes))
	for _, n := range doc.Nodes {
		nodeByID[n.ID] = n
	}

	errs = append(errs, checkUnknownKinds(doc, nodeRegistry, descByNode)...)
	errs = append(errs, checkEndpoints(doc, nodeByID, descByNode)...)
	errs = append(errs, checkTypeCompatibility(doc, nodeByID, descByNode, paramRegistry)...)
	errs = append(errs, checkDuplicateConnections(doc)...)
	errs = append(errs, checkRequiredInputs(doc, descByNode)...)
	errs = append(errs, checkCycles(doc)...)

	return errs
}

func checkUnknownKinds(doc types.GraphDocument, registry *nodetype.Registry, descByNode map[string]nodetype.Descriptor) []Error {
	var errs []Error
	for _, n := range doc.Nodes {
		desc, ok := registry.Descriptor(string(n.Kind))
		if !ok {
			errs = append(errs, Error{
				Kind:    KindUnknownNodeKind,
				Message: fmt.Sprintf("node %q references unknown node kind %q", n.ID, n.Kind),
				Details: Details{NodeID: n.ID},
			})
			continue
		}
		descByNode[n.ID] = desc
	}
	return errs
}

func checkEndpoints(doc types.GraphDocument, nodeByID map[string]types.Node, descByNode map[string]nodetype.Descriptor) []Error {
	var errs []Error
	for i, e := range doc.Edges {
		source, ok := nodeByID[e.Source]
		if !ok {
			errs = append(errs, missingEndpoint(i, e.Source, e.SourcePort, "source node does not exist"))
			continue
		}
		if desc, ok := descByNode[e.Source]; ok {
			if _, ok := desc.OutputSpec(e.SourcePort); !ok {
				errs = append(errs, missingEndpoint(i, e.Source, e.SourcePort, "source output port does not exist"))
			}
		} else if _, ok := source.OutputPort(e.SourcePort); !ok {
			errs = append(errs, missingEndpoint(i, e.Source, e.SourcePort, "source output port does not exist"))
		}

		target, ok := nodeByID[e.Target]
		if !ok {
			errs = append(errs, missingEndpoint(i, e.Target, e.TargetPort, "target node does not exist"))
			continue
		}
		if desc, ok := descByNode[e.Target]; ok {
			if _, ok := desc.InputSpec(e.TargetPort); !ok {
				errs = append(errs, missingEndpoint(i, e.Target, e.TargetPort, "target input port does not exist"))
			}
		} else if _, ok := target.InputPort(e.TargetPort); !ok {
			errs = append(errs, missingEndpoint(i, e.Target, e.TargetPort, "target input port does not exist"))
		}
	}
	return errs
}

func missingEndpoint(edgeIndex int, nodeID, portName, reason string) Error {
	return Error{
		Kind:    KindMissingEndpoint,
		Message: fmt.Sprintf("edge %d: %s (node %q, port %q)", edgeIndex, reason, nodeID, portName),
		Details: Details{NodeID: nodeID, PortName: portName, EdgeIndex: edgeIndex, HasEdge: true},
	}
}

func checkTypeCompatibility(doc types.GraphDocument, nodeByID map[string]types.Node, descByNode map[string]nodetype.Descriptor, paramRegistry *paramtype.Registry) []Error {
	var errs []Error
	for i, e := range doc.Edges {
		sourceKind, ok := portKind(e.Source, e.SourcePort, nodeByID, descByNode, true)
		if !ok {
			continue // already reported as a missing endpoint
		}
		targetKind, ok := portKind(e.Target, e.TargetPort, nodeByID, descByNode, false)
		if !ok {
			continue
		}
		if !paramtype.Compatible(sourceKind, targetKind) {
			errs = append(errs, Error{
				Kind: KindTypeMismatch,
				Message: fmt.Sprintf("edge %d: output kind %q is not compatible with input kind %q",
					i, sourceKind, targetKind),
				Details: Details{NodeID: e.Target, PortName: e.TargetPort, EdgeIndex: i, HasEdge: true},
			})
		}
	}
	return errs
}

func portKind(nodeID, portName string, nodeByID map[string]types.Node, descByNode map[string]nodetype.Descriptor, isOutput bool) (paramtype.Kind, bool) {
	if desc, ok := descByNode[nodeID]; ok {
		if isOutput {
			spec, ok := desc.OutputSpec(portName)
			return spec.Kind, ok
		}
		spec, ok := desc.InputSpec(portName)
		return spec.Kind, ok
	}
	node, ok := nodeByID[nodeID]
	if !ok {
		return "", false
	}
	if isOutput {
		p, ok := node.OutputPort(portName)
		return p.Kind, ok
	}
	p, ok := node.InputPort(portName)
	return p.Kind, ok
}

func checkDuplicateConnections(doc types.GraphDocument) []Error {
	var errs []Error
	seen := make(map[string]int, len(doc.Edges))
	for i, e := range doc.Edges {
		key := e.Source + "\x00" + e.SourcePort + "\x00" + e.Target + "\x00" + e.TargetPort
		if first, exists := seen[key]; exists {
			errs = append(errs, Error{
				Kind: KindDuplicateConnection,
				Message: fmt.Sprintf("edge %d duplicates edge %d: %s.%s -> %s.%s",
					i, first, e.Source, e.SourcePort, e.Target, e.TargetPort),
				Details: Details{NodeID: e.Target, PortName: e.TargetPort, EdgeIndex: i, HasEdge: true},
			})
			continue
		}
		seen[key] = i
	}
	return errs
}

func checkRequiredInputs(doc types.GraphDocument, descByNode map[string]nodetype.Descriptor) []Error {
	var errs []Error

	incoming := make(map[string]map[string]bool, len(doc.Nodes))
	for _, e := range doc.Edges {
		if incoming[e.Target] == nil {
			incoming[e.Target] = make(map[string]bool)
		}
		incoming[e.Target][e.TargetPort] = true
	}

	for _, n := range doc.Nodes {
		desc, ok := descByNode[n.ID]
		if !ok {
			continue // unknown kind already reported
		}
		for _, spec := range desc.Inputs {
			if !spec.Required {
				continue
			}
			if incoming[n.ID][spec.Name] {
				continue
			}
			if port, ok := n.InputPort(spec.Name); ok && (port.Value != nil || port.Default != nil) {
				continue
			}
			if spec.Default != nil {
				continue
			}
			errs = append(errs, Error{
				Kind:    KindMissingRequiredInput,
				Message: fmt.Sprintf("node %q is missing required input %q", n.ID, spec.Name),
				Details: Details{NodeID: n.ID, PortName: spec.Name},
			})
		}
	}

	sort.Slice(errs, func(i, j int) bool {
		if errs[i].Details.NodeID != errs[j].Details.NodeID {
			return errs[i].Details.NodeID < errs[j].Details.NodeID
		}
		return errs[i].Details.PortName < errs[j].Details.PortName
	})
	return errs
}

// checkCycles performs three-color depth-first traversal over the edge set.
// Encountering a gray (in-progress) node while descending reports a cycle
// against that node's id.
func checkCycles(doc types.GraphDocument) []Error {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	adjacency := make(map[string][]string, len(doc.Nodes))
	for _, e := range doc.Edges {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
	}

	color := make(map[string]int, len(doc.Nodes))
	order := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		order = append(order, n.ID)
	}

	var cycleNode string
	found := false

	var visit func(id string)
	visit = func(id string) {
		if found {
			return
		}
		color[id] = gray
		for _, next := range adjacency[id] {
			if found {
				return
			}
			switch color[next] {
			case gray:
				cycleNode = next
				found = true
				return
			case white:
				visit(next)
			}
		}
		color[id] = black
	}

	for _, id := range order {
		if found {
			break
		}
		if color[id] == white {
			visit(id)
		}
	}

	if !found {
		return nil
	}
	return []Error{{
		Kind:    KindCycleDetected,
		Message: fmt.Sprintf("cycle detected, passing through node %q", cycleNode),
		Details: Details{NodeID: cycleNode},
	}}
}
