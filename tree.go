package zoiflow

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Tree is a clustering tree: zone of interest recursively split into quadrants
type Tree struct {
	root     *Node
	depth    int
	logger   zerolog.Logger
	parallel bool
}

// NewTree builds clustering tree by starting from given node and splitting it as many times as wanted.
//
// Given node is not modified: tree root is a new node sharing zone and fragments with it
func NewTree(root *Node, depth int, options ...func(*Tree)) (*Tree, error) {
	if err := validateDepth(depth); err != nil {
		return nil, err
	}
	tree := &Tree{
		root: &Node{
			zone:      root.zone,
			fragments: root.fragments,
		},
		depth:  depth,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(tree)
	}
	err := tree.buildTree()
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// CreateTree clips trajectories regarding zone of interest and builds clustering tree of given depth
func CreateTree(zone *Zone, trajectories []orb.LineString, depth int, options ...func(*Tree)) (*Tree, error) {
	if err := validateDepth(depth); err != nil {
		return nil, err
	}
	root, err := Clip(zone, trajectories)
	if err != nil {
		return nil, errors.Wrap(err, "Can't clip trajectories")
	}
	return NewTree(root, depth, options...)
}

func validateDepth(depth int) error {
	if depth < 0 {
		return errors.Wrapf(ErrInvalidDepth, "Tree depth must be greater or equal to zero (was %d)", depth)
	}
	return nil
}

// Root returns tree root node
func (tree *Tree) Root() *Node {
	return tree.root
}

// Depth returns tree depth
func (tree *Tree) Depth() int {
	return tree.depth
}

func (tree *Tree) buildTree() error {
	tree.logger.Debug().Int("depth", tree.depth).Int("fragments", len(tree.root.fragments)).Bool("parallel", tree.parallel).Msg("Building tree")
	st := time.Now()
	if tree.depth > 0 {
		err := tree.buildNodeChildren(tree.root, tree.depth)
		if err != nil {
			return err
		}
	}
	tree.logger.Debug().Int("leaves", len(tree.Leaves())).Dur("elapsed", time.Since(st)).Msg("Tree has been built")
	return nil
}

func (tree *Tree) buildNodeChildren(node *Node, depth int) error {
	if depth == 0 {
		return nil
	}
	tree.logger.Trace().Int("level", node.Level()).Int("fragments", len(node.fragments)).Msg("Splitting node")
	children, err := tree.splitNode(node)
	if err != nil {
		return errors.Wrapf(err, "Can't split node at level %d", node.Level())
	}
	node.children = children
	for _, child := range children {
		err = tree.buildNodeChildren(child, depth-1)
		if err != nil {
			return err
		}
	}
	return nil
}

func (tree *Tree) splitNode(node *Node) ([]*Node, error) {
	if tree.parallel {
		return splitNodeParallel(node)
	}
	return SplitNode(node)
}

// Leaves returns nodes at the end of the tree
func (tree *Tree) Leaves() []*Node {
	return Leaves(tree.root)
}

// AveragePaths gathers average paths of every leaf having fragments
func (tree *Tree) AveragePaths() ([]AveragePath, error) {
	averagePaths := []AveragePath{}
	for _, leaf := range tree.Leaves() {
		if len(leaf.fragments) == 0 {
			continue
		}
		leafPaths, err := ExtractAveragePaths(leaf)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't extract average paths for leaf at level %d", leaf.Level())
		}
		averagePaths = append(averagePaths, leafPaths...)
	}
	return averagePaths, nil
}

// Leaves returns nodes without children in depth-first order. Node without children is a leaf itself
func Leaves(node *Node) []*Node {
	leaves := []*Node{}
	var lookForLeaves func(current *Node)
	lookForLeaves = func(current *Node) {
		if current.IsLeaf() {
			leaves = append(leaves, current)
			return
		}
		for _, child := range current.children {
			lookForLeaves(child)
		}
	}
	lookForLeaves(node)
	return leaves
}

// SplitNode splits a node into four nodes of equal area. Fragments of the node are clipped regarding each quadrant.
//
// Children are returned in order: south-west, south-east, north-east, north-west. Node itself is not modified,
// but children refer to it as parent
func SplitNode(node *Node) ([]*Node, error) {
	zones, err := quadrants(node.zone)
	if err != nil {
		return nil, err
	}
	paths := node.paths()
	children := make([]*Node, 0, len(zones))
	for i, zone := range zones {
		child, err := Clip(zone, paths)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't clip quadrant #%d", i)
		}
		child.parent = node
		children = append(children, child)
	}
	return children, nil
}

func splitNodeParallel(node *Node) ([]*Node, error) {
	zones, err := quadrants(node.zone)
	if err != nil {
		return nil, err
	}
	paths := node.paths()
	children := make([]*Node, len(zones))
	var group errgroup.Group
	for i := range zones {
		group.Go(func() error {
			child, err := Clip(zones[i], paths)
			if err != nil {
				return errors.Wrapf(err, "Can't clip quadrant #%d", i)
			}
			child.parent = node
			children[i] = child
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return children, nil
}

// quadrants returns four zones covering bounding box of given zone.
// Each quadrant is made of a bounding box corner, two middle points of adjacent sides and the box center
func quadrants(zone *Zone) ([]*Zone, error) {
	bound := zone.Bound()
	center := bound.Center()
	box := bound.ToRing()
	zones := make([]*Zone, 4)
	for i := 0; i < 4; i++ {
		corner := box[i]
		quadrant, err := NewZone(orb.Ring{
			corner,
			orb.Point{center[0], corner[1]},
			center,
			orb.Point{corner[0], center[1]},
			corner,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "Can't prepare quadrant #%d", i)
		}
		zones[i] = quadrant
	}
	return zones, nil
}
