// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree on stdout
func (tree *Tree) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - write an ASCII graphic representation of the tree
//
// each node shows: key [height / min / max / closest pair]
// returns the maximum depth of the tree
func (tree *Tree) Fprint(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}

	pair := "NULL"
	if cp, ok := tree.ClosestPair(); ok {
		pair = fmt.Sprintf("(%d, %d)", cp.Lower, cp.Upper)
	}
	if printData {
		fmt.Fprintf(w, "%d [%d / %d / %d / %s] → %q %+2d/%d\n", tree.key, tree.height, tree.min, tree.max, pair, fmt.Sprint(tree.value), balanceFactor(tree), tree.size)
	} else {
		fmt.Fprintf(w, "%d [%d / %d / %d / %s]\n", tree.key, tree.height, tree.min, tree.max, pair)
	}

	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
