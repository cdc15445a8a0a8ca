// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - node holding the lowest key, nil for an empty tree
func (tree *Tree) First() *Node {
	return tree.root.leftmost()
}

// Last - node holding the highest key, nil for an empty tree
func (tree *Tree) Last() *Node {
	return tree.root.rightmost()
}

func (p *Node) leftmost() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

func (p *Node) rightmost() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - in-order successor, nil after the last node
//
// without a right sub-tree the successor is the first ancestor
// reached from its left side
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.leftmost()
	}
	child, up := p, p.up
	for nil != up && child == up.right {
		child, up = up, up.up
	}
	return up
}

// Prev - in-order predecessor, nil before the first node
func (p *Node) Prev() *Node {
	if nil != p.left {
		return p.left.rightmost()
	}
	child, up := p, p.up
	for nil != up && child == up.left {
		child, up = up, up.up
	}
	return up
}
