// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value of the removed item and true, or nil and false
// if the key was not in the tree
func (tree *Tree) Delete(key int) (interface{}, bool) {
	root, value, removed := tree.delete(key, tree.root)
	if !removed {
		return nil, false
	}
	tree.root = root
	if nil != root {
		root.up = nil
	}
	tree.count -= 1
	if nil != tree.release {
		tree.release(key, value)
	}
	return value, true
}

// internal delete routine
func (tree *Tree) delete(key int, p *Node) (*Node, interface{}, bool) {
	if nil == p { // key not in tree
		return nil, nil, false
	}

	value := interface{}(nil)
	removed := false

	switch {
	case key < p.key:
		p.left, value, removed = tree.delete(key, p.left)
		if nil != p.left {
			p.left.up = p
		}

	case key > p.key:
		p.right, value, removed = tree.delete(key, p.right)
		if nil != p.right {
			p.right.up = p
		}

	default: // found: delete p
		value = p.value // preserve the value part
		removed = true

		if nil == p.left || nil == p.right {
			// splice in the only child, if any
			child := p.left
			if nil == child {
				child = p.right
			}
			if nil != child {
				child.up = p.up
			}
			tree.nodes.freeNode(p)
			return child, value, true
		}

		// two children: take over the successor's item then
		// remove the successor from the right sub-tree, its value
		// now lives here so it must not be released
		s := p.right.leftmost()
		p.key = s.key
		p.value = s.value
		p.right, _, _ = tree.delete(s.key, p.right)
		if nil != p.right {
			p.right.up = p
		}
	}

	if !removed {
		return p, nil, false
	}

	update(p)
	return tree.rebalance(p), value, true
}

// delete: tree balancer
//
// the heavier grandchild decides between single and double rotation
func (tree *Tree) rebalance(p *Node) *Node {
	balance := balanceFactor(p)
	switch {
	case balance > 1 && balanceFactor(p.left) >= 0:
		return tree.rotateRight(p)
	case balance > 1:
		return tree.rotateLeftRight(p)
	case balance < -1 && balanceFactor(p.right) <= 0:
		return tree.rotateLeft(p)
	case balance < -1:
		return tree.rotateRightLeft(p)
	}
	return p
}
