// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns true if the key was added; an existing key is left
// unchanged together with its value.  The only error is
// fault.ErrNodeLimitReached in which case the tree is not modified.
func (tree *Tree) Insert(key int, value interface{}) (bool, error) {
	root, added, err := tree.insert(key, value, tree.root)
	if nil != err {
		return false, err
	}
	if added {
		tree.root = root
		tree.root.up = nil
		tree.count += 1
	}
	return added, nil
}

// internal routine for insert
func (tree *Tree) insert(key int, value interface{}, p *Node) (*Node, bool, error) {
	if nil == p { // insert new node
		n, err := tree.nodes.newNode(key, value)
		if nil != err {
			return nil, false, err
		}
		return n, true, nil
	}

	switch {
	case key < p.key:
		p1, added, err := tree.insert(key, value, p.left)
		if nil != err || !added {
			return p, false, err
		}
		p.left = p1
		p1.up = p

	case key > p.key:
		p1, added, err := tree.insert(key, value, p.right)
		if nil != err || !added {
			return p, false, err
		}
		p.right = p1
		p1.up = p

	default: // duplicate
		return p, false, nil
	}

	update(p)

	// the new key decides which of the four cases applies
	balance := balanceFactor(p)
	switch {
	case balance > 1 && key < p.left.key:
		return tree.rotateRight(p), true, nil
	case balance < -1 && key > p.right.key:
		return tree.rotateLeft(p), true, nil
	case balance > 1 && key > p.left.key:
		return tree.rotateLeftRight(p), true, nil
	case balance < -1 && key < p.right.key:
		return tree.rotateRightLeft(p), true, nil
	}
	return p, true, nil
}
