package nodetype

import "github.com/weavegraph/weave/pkg/paramtype"

// PortSpec is a node kind's static declaration of one input or output slot.
// It is what the validator checks a graph's wiring against — it carries no
// runtime state.
type PortSpec struct {
	Name        string
	Kind        paramtype.Kind
	Description string
	Required    bool
	Hidden      bool
	Default     *paramtype.Value
}

// Category groups node kinds for presentation purposes only (editor palette
// sections); the core never branches on it.
type Category string

const (
	CategoryMath       Category = "math"
	CategoryIO         Category = "io"
	CategoryControl    Category = "control"
	CategoryData       Category = "data"
	CategoryState      Category = "state"
	CategoryModel      Category = "model"
	CategoryValidation Category = "validation"
)

// Descriptor is the static, immutable shape of a node kind: its declared
// input and output ports plus presentation metadata.
type Descriptor struct {
	Kind        string
	Name        string
	Category    Category
	Description string
	Inputs      []PortSpec
	Outputs     []PortSpec
}

// InputSpec returns the named input port spec, or false if undeclared.
func (d Descriptor) InputSpec(name string) (PortSpec, bool) {
	for _, p := range d.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	return PortSpec{}, false
}

// OutputSpec returns the named output port spec, or false if undeclared.
func (d Descriptor) OutputSpec(name string) (PortSpec, bool) {
	for _, p := range d.Outputs {
		if p.Name == name {
			return p, true
		}
	}
	return PortSpec{}, false
}
