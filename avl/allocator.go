// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/closestavl/fault"
)

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	key     int         // key part for ordering
	value   interface{} // value part for data storage
	height  int         // longest path to a leaf, leaf = 1
	min     int         // lowest key in sub-tree
	max     int         // highest key in sub-tree
	size    int         // number of nodes in sub-tree
	closest Pair        // closest pair of keys in sub-tree
	paired  bool        // closest is only valid if true
}

// allocator data, one per tree
type allocator struct {
	pool  *Node // linked list of reclaimed nodes
	limit int   // maximum live nodes, zero for no limit
	total int   // total nodes created
	free  int   // number of nodes in the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator) newNode(key int, value interface{}) (*Node, error) {
	if 0 != a.limit && a.total-a.free >= a.limit {
		return nil, fault.ErrNodeLimitReached
	}

	p := a.pool
	if nil == p {
		if 0 != a.free {
			fault.Panic("pool corrupt")
		}
		a.total += 1
		p = &Node{}
	} else {
		a.pool = p.up
		a.free -= 1
	}

	p.key = key
	p.value = value
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	p.height = 1
	p.min = key
	p.max = key
	p.size = 1
	p.closest = Pair{}
	p.paired = false
	return p, nil
}

// reclaim a node and keep it in the pool
func (a *allocator) freeNode(node *Node) {
	node.up = a.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = 0
	node.value = nil
	node.height = 0
	node.size = 0
	node.closest = Pair{}
	node.paired = false
	a.free += 1

	a.pool = node
}
