// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/closestavl/fault"
)

// CheckError - a failed consistency check at a specific key
type CheckError struct {
	Key int
	Err error
	Msg string
}

// Error - the error interface
func (e *CheckError) Error() string {
	return fmt.Sprintf("key: %d  %s: %s", e.Key, e.Err, e.Msg)
}

// Cause - the underlying fault
func (e *CheckError) Cause() error {
	return e.Err
}

// Check - verify every cached value and link in the tree against
// values computed directly from the keys
//
// nil if the tree is consistent
func (tree *Tree) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return &CheckError{Key: tree.root.key, Err: fault.ErrInvalidParentLink, Msg: "root has a parent"}
	}
	keys, err := check(tree.root, nil)
	if nil != err {
		return err
	}
	if len(keys) != tree.count {
		return &CheckError{Key: tree.root.Min(), Err: fault.ErrInvalidCount, Msg: fmt.Sprintf("nodes: %d  count: %d", len(keys), tree.count)}
	}
	return nil
}

// internal: consistency checker, returns the keys of the sub-tree
// in ascending order
func check(p *Node, up *Node) ([]int, error) {
	if nil == p {
		return nil, nil
	}
	fail := func(err error, format string, arguments ...interface{}) ([]int, error) {
		return nil, &CheckError{Key: p.key, Err: err, Msg: fmt.Sprintf(format, arguments...)}
	}

	if p.up != up {
		return fail(fault.ErrInvalidParentLink, "parent link is incorrect")
	}

	leftKeys, err := check(p.left, p)
	if nil != err {
		return nil, err
	}
	rightKeys, err := check(p.right, p)
	if nil != err {
		return nil, err
	}

	if n := len(leftKeys); n > 0 && leftKeys[n-1] >= p.key {
		return fail(fault.ErrKeysNotOrdered, "left key: %d", leftKeys[n-1])
	}
	if len(rightKeys) > 0 && rightKeys[0] <= p.key {
		return fail(fault.ErrKeysNotOrdered, "right key: %d", rightKeys[0])
	}

	keys := make([]int, 0, len(leftKeys)+1+len(rightKeys))
	keys = append(keys, leftKeys...)
	keys = append(keys, p.key)
	keys = append(keys, rightKeys...)

	lh := p.left.Height()
	rh := p.right.Height()
	if b := lh - rh; b < -1 || b > 1 {
		return fail(fault.ErrTreeUnbalanced, "balance: %d", b)
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return fail(fault.ErrInvalidHeight, "height: %d  expected: %d", p.height, h)
	}
	if keys[0] != p.min {
		return fail(fault.ErrInvalidMinimum, "min: %d  expected: %d", p.min, keys[0])
	}
	if keys[len(keys)-1] != p.max {
		return fail(fault.ErrInvalidMaximum, "max: %d  expected: %d", p.max, keys[len(keys)-1])
	}
	if len(keys) != p.size {
		return fail(fault.ErrInvalidCount, "size: %d  expected: %d", p.size, len(keys))
	}

	// in sorted keys the closest pair is always adjacent
	if len(keys) < 2 {
		if p.paired {
			return fail(fault.ErrInvalidClosestPair, "single key has pair: %v", p.closest)
		}
		return keys, nil
	}
	if !p.paired {
		return fail(fault.ErrInvalidClosestPair, "missing pair")
	}
	gap := Pair{Lower: keys[0], Upper: keys[1]}.Difference()
	for i := 2; i < len(keys); i += 1 {
		if d := (Pair{Lower: keys[i-1], Upper: keys[i]}).Difference(); d < gap {
			gap = d
		}
	}
	if p.closest.Lower > p.closest.Upper {
		return fail(fault.ErrInvalidClosestPair, "pair not ordered: %v", p.closest)
	}
	if gap != p.closest.Difference() {
		return fail(fault.ErrInvalidClosestPair, "pair: %v  difference: %d  expected: %d", p.closest, p.closest.Difference(), gap)
	}
	if !contains(keys, p.closest.Lower) || !contains(keys, p.closest.Upper) {
		return fail(fault.ErrInvalidClosestPair, "pair: %v  not in sub-tree", p.closest)
	}

	return keys, nil
}

func contains(keys []int, key int) bool {
	i := sort.SearchInts(keys, key)
	return i < len(keys) && keys[i] == key
}
