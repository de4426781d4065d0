package zoiflow

import (
	"github.com/paulmach/orb"
)

// Node is a node of clustering tree.
//
// Node owns its zone of interest, fragments clipped to that zone and either zero or four children.
// Parent is nil for root node.
type Node struct {
	zone      *Zone
	fragments []Fragment
	parent    *Node
	children  []*Node
}

// Zone returns zone of interest of the node
func (node *Node) Zone() *Zone {
	return node.zone
}

// Fragments returns fragments clipped to the node zone. Returned slice must not be modified
func (node *Node) Fragments() []Fragment {
	return node.fragments
}

// Parent returns parent node (nil for root)
func (node *Node) Parent() *Node {
	return node.parent
}

// Children returns either zero or four children. Order is: south-west, south-east, north-east, north-west
func (node *Node) Children() []*Node {
	return node.children
}

// IsLeaf tells if node has no children
func (node *Node) IsLeaf() bool {
	return len(node.children) == 0
}

// Level returns number of steps between node and tree root
func (node *Node) Level() int {
	level := 0
	for current := node.parent; current != nil; current = current.parent {
		level++
	}
	return level
}

// paths returns geometries of node fragments
func (node *Node) paths() []orb.LineString {
	paths := make([]orb.LineString, len(node.fragments))
	for i := range node.fragments {
		paths[i] = node.fragments[i].Path
	}
	return paths
}
