// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/closestavl/counter"
)

// ReleaseFunc - called with the key and value of every node that
// leaves the tree by Delete or Clear
type ReleaseFunc func(key int, value interface{})

// Tree - type to hold the root node of a tree
type Tree struct {
	root       *Node
	count      int
	nodes      allocator
	release    ReleaseFunc
	leftTurns  counter.Counter
	rightTurns counter.Counter
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewLimited - create an initially empty tree that will hold at most
// maximumNodes nodes, further inserts fail with ErrNodeLimitReached
func NewLimited(maximumNodes int) *Tree {
	tree := New()
	if maximumNodes > 0 {
		tree.nodes.limit = maximumNodes
	}
	return tree
}

// Limit - maximum number of nodes, zero if unlimited
func (tree *Tree) Limit() int {
	return tree.nodes.limit
}

// SetRelease - install a function to dispose of values removed from
// the tree
func (tree *Tree) SetRelease(release ReleaseFunc) {
	tree.release = release
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Min - lowest key in the tree, MaxKey if empty
func (tree *Tree) Min() int {
	return tree.root.Min()
}

// Max - highest key in the tree, MinKey if empty
func (tree *Tree) Max() int {
	return tree.root.Max()
}

// ClosestPair - the pair of keys with the smallest difference in
// the whole tree, false if there are less than two keys
func (tree *Tree) ClosestPair() (Pair, bool) {
	return tree.root.ClosestPair()
}

// Rotations - number of single left and right rotations performed
func (tree *Tree) Rotations() (left uint64, right uint64) {
	return tree.leftTurns.Uint64(), tree.rightTurns.Uint64()
}

// Allocated - total nodes ever created and the number of those held
// in the reuse pool
func (tree *Tree) Allocated() (total int, free int) {
	return tree.nodes.total, tree.nodes.free
}

// Clear - remove all nodes, releasing their values
func (tree *Tree) Clear() {
	tree.clear(tree.root)
	tree.root = nil
	tree.count = 0
}

// post-order so children are reclaimed before their parent
func (tree *Tree) clear(p *Node) {
	if nil == p {
		return
	}
	tree.clear(p.left)
	tree.clear(p.right)
	if nil != tree.release {
		tree.release(p.key, p.value)
	}
	tree.nodes.freeNode(p)
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() int {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
