// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single LL rotation: promote the left child
//
//	      p           p1
//	     / \         /  \
//	    p1  c  =>   a    p
//	   / \              / \
//	  a   b            b   c
//
// returns the new sub-tree root, or p if there is no left child
func (tree *Tree) rotateRight(p *Node) *Node {
	if nil == p || nil == p.left {
		return p
	}
	p1 := p.left

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p

	p1.up = p.up
	p.up = p1

	// p is now below p1 so must be updated first
	update(p)
	update(p1)

	tree.rightTurns.Increment()
	return p1
}

// single RR rotation: promote the right child, mirror of rotateRight
func (tree *Tree) rotateLeft(p *Node) *Node {
	if nil == p || nil == p.right {
		return p
	}
	p1 := p.right

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p

	p1.up = p.up
	p.up = p1

	update(p)
	update(p1)

	tree.leftTurns.Increment()
	return p1
}

// double LR rotation
func (tree *Tree) rotateLeftRight(p *Node) *Node {
	if nil == p || nil == p.left {
		return p
	}
	p.left = tree.rotateLeft(p.left)
	return tree.rotateRight(p)
}

// double RL rotation
func (tree *Tree) rotateRightLeft(p *Node) *Node {
	if nil == p || nil == p.right {
		return p
	}
	p.right = tree.rotateRight(p.right)
	return tree.rotateLeft(p)
}
