// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// identities for the aggregation of an empty sub-tree
const (
	MaxKey = int(^uint(0) >> 1) // minimum of an empty sub-tree
	MinKey = -MaxKey - 1        // maximum of an empty sub-tree
)

// Pair - two keys of a sub-tree, Lower <= Upper
type Pair struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// Difference - the distance between the two keys
//
// unsigned arithmetic so that keys at both ends of the int range
// do not overflow
func (p Pair) Difference() uint64 {
	return uint64(p.Upper) - uint64(p.Lower)
}

// make an ordered pair from two keys
func makePair(a int, b int) Pair {
	if a > b {
		return Pair{Lower: b, Upper: a}
	}
	return Pair{Lower: a, Upper: b}
}

// Height - number of nodes on the longest path to a leaf, zero for nil
func (p *Node) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Min - lowest key in the sub-tree, MaxKey for nil
func (p *Node) Min() int {
	if nil == p {
		return MaxKey
	}
	return p.min
}

// Max - highest key in the sub-tree, MinKey for nil
func (p *Node) Max() int {
	if nil == p {
		return MinKey
	}
	return p.max
}

// Size - number of nodes in the sub-tree
func (p *Node) Size() int {
	if nil == p {
		return 0
	}
	return p.size
}

// ClosestPair - the cached closest pair of the sub-tree
// false if the sub-tree has less than two keys
func (p *Node) ClosestPair() (Pair, bool) {
	if nil == p || !p.paired {
		return Pair{}, false
	}
	return p.closest, true
}

// Balance - height of left sub-tree minus height of right sub-tree
func (p *Node) Balance() int {
	return balanceFactor(p)
}

func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// the updaters below only read the node's key and the cached
// values of its children, so must be applied children first

func updateHeight(p *Node) {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

func updateMin(p *Node) {
	m := p.key
	if nil != p.left && p.left.min < m {
		m = p.left.min
	}
	if nil != p.right && p.right.min < m {
		m = p.right.min
	}
	p.min = m
}

func updateMax(p *Node) {
	m := p.key
	if nil != p.left && p.left.max > m {
		m = p.left.max
	}
	if nil != p.right && p.right.max > m {
		m = p.right.max
	}
	p.max = m
}

func updateSize(p *Node) {
	p.size = 1 + p.left.Size() + p.right.Size()
}

// the closest pair is one of: the left pair, the right pair, the key
// with the left maximum or the key with the right minimum
//
// candidates are tried in that order and only a strictly smaller
// difference replaces the current best, so ties keep the earliest
func updateClosestPair(p *Node) {
	found := false
	best := Pair{}

	consider := func(candidate Pair) {
		if !found || candidate.Difference() < best.Difference() {
			best = candidate
			found = true
		}
	}

	if nil != p.left && p.left.paired {
		consider(p.left.closest)
	}
	if nil != p.right && p.right.paired {
		consider(p.right.closest)
	}
	if nil != p.left {
		consider(makePair(p.key, p.left.max))
	}
	if nil != p.right {
		consider(makePair(p.key, p.right.min))
	}

	p.closest = best
	p.paired = found
}

// recompute all cached values of a node
func update(p *Node) {
	updateHeight(p)
	updateMin(p)
	updateMax(p)
	updateClosestPair(p)
	updateSize(p)
}
