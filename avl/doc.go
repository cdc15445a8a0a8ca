// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys where every
// node caches aggregates of the sub-tree it roots: height, minimum
// key, maximum key, node count and the closest pair of keys
//
// The closest pair of a sub-tree is the pair of keys with the
// smallest difference.  It is recomputed in constant time from the
// children's cached pairs and the keys adjacent to the node, so the
// closest pair of the whole tree is always available from the root
// without any traversal.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Parent pointers are maintained to allow iteration through the
// nodes.  Inserting an existing key does not change its value, and
// deleting a node with two children moves the successor's key and
// value into that node.
package avl
