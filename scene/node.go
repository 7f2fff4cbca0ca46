// Package scene holds the minimal scene graph the experience places and
// spins: named nodes with a position, a Y rotation, a uniform scale, and
// children. Node trees are built once by the loader and mutated only from
// the frame loop.
package scene

import (
	"strings"

	"github.com/lixenwraith/prize-wheel/vmath"
)

// Node is one scene-graph object
type Node struct {
	Name string

	Position  vmath.Vec3
	RotationY float64 // radians about the vertical axis
	Scale     float64
	Visible   bool

	children []*Node
}

// NewNode creates a visible node at the origin with unit scale
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   1,
		Visible: true,
	}
}

// AddChild appends a child node
func (n *Node) AddChild(c *Node) *Node {
	n.children = append(n.children, c)
	return c
}

// Children returns the top-level children
func (n *Node) Children() []*Node {
	return n.children
}

// FindChild returns the first top-level child whose name contains substr,
// case-insensitive. The bool result makes absence explicit instead of
// handing back a nil to dereference.
func (n *Node) FindChild(substr string) (*Node, bool) {
	needle := strings.ToLower(substr)
	for _, c := range n.children {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return c, true
		}
	}
	return nil, false
}

// FindSpinner locates the rotating sub-part of a loaded model: the first
// top-level child named like a wheel. When the model carries no such part
// the whole model is returned as the rotating reference, so the experience
// spins the entire object instead of failing; found reports which case
// applies so the caller can log the degradation.
func FindSpinner(root *Node) (spinner *Node, found bool) {
	if c, ok := root.FindChild("wheel"); ok {
		return c, true
	}
	return root, false
}
