// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns the node and its index, or nil and -1 if not found
func (tree *Tree) Search(key int) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key int, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	switch {
	case key < tree.key:
		return search(key, tree.left, index)
	case key > tree.key:
		return search(key, tree.right, index+tree.left.Size()+1)
	default:
		return tree, index + tree.left.Size()
	}
}
