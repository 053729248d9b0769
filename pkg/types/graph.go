package types

import (
	"time"

	"github.com/weavegraph/weave/pkg/paramtype"
)

// NodeKind identifies a registered node kind, e.g. "addition" or
// "model_invoke". The node type registry (pkg/nodetype) owns the mapping
// from kind to static descriptor and executor factory.
type NodeKind string

// Position is the node's editor canvas position. The core never interprets
// it; it is carried through purely for the graphical editor collaborator.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Port is an input or output slot declared on a node. The Default/Value
// fields are populated by the editor; Value, when present, is a literal
// supplied directly on the port instead of via an inbound edge.
type Port struct {
	Name        string          `json:"name"`
	Kind        paramtype.Kind  `json:"kind"`
	Description string          `json:"description,omitempty"`
	Default     *paramtype.Value `json:"default,omitempty"`
	Required    bool            `json:"required,omitempty"`
	Hidden      bool            `json:"hidden,omitempty"`
	Value       *paramtype.Value `json:"value,omitempty"`
}

// Node is one vertex of a workflow graph. Inputs/Outputs are the node's own
// port instances — they start out as copies of the node kind's static
// descriptor ports (pkg/nodetype.Descriptor) with any editor-supplied
// defaults/values already applied.
type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Name     string   `json:"name,omitempty"`
	Position Position `json:"position,omitempty"`
	Inputs   []Port   `json:"inputs"`
	Outputs  []Port   `json:"outputs"`
}

// InputPort returns the named input port, or false if none exists.
func (n Node) InputPort(name string) (Port, bool) {
	for _, p := range n.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// OutputPort returns the named output port, or false if none exists.
func (n Node) OutputPort(name string) (Port, bool) {
	for _, p := range n.Outputs {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// Edge is a typed, directed connection from one node's output port to
// another node's input port.
type Edge struct {
	ID         string `json:"id,omitempty"`
	Source     string `json:"source"`
	SourcePort string `json:"sourcePort"`
	Target     string `json:"target"`
	TargetPort string `json:"targetPort"`
}

// GraphDocument is the wire-level shape of a submitted workflow graph.
type GraphDocument struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	Nodes     []Node    `json:"nodes"`
	Edges     []Edge    `json:"edges"`
}

// NodeByID returns the node with the given id, or false if not found.
func (g GraphDocument) NodeByID(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
