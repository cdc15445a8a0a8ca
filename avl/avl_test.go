// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"testing"

	"github.com/bitmark-inc/closestavl/avl"
)

func TestListShort(t *testing.T) {
	addList := []int{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247,
		1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133,
		2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433,
		1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582,
		1720, 506, 8382, 6774, 1042,

		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		-17, -4000, 0, -1, 1,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListExtremes(t *testing.T) {
	addList := []int{
		avl.MaxKey, avl.MinKey, 0, avl.MaxKey - 1, avl.MinKey + 1,
		-1, 1,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func dataFor(key int) string {
	return fmt.Sprintf("data:%d", key)
}

// fail the test with a picture of the tree
func checkTree(t *testing.T, tree *avl.Tree, stage string) {
	err := tree.Check()
	if nil == err {
		return
	}
	buffer := &bytes.Buffer{}
	depth := tree.Fprint(buffer, true)
	t.Logf("tree:\n%s", buffer.String())
	t.Logf("depth: %d", depth)
	t.Fatalf("%s: inconsistent tree: %s", stage, err)
}

func doList(t *testing.T, addList []int) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[int]struct{})

		tree := avl.New()
		for _, key := range addList {
			if _, err := tree.Insert(key, dataFor(key)); nil != err {
				t.Fatalf("insert: %d  error: %s", key, err)
			}
		}

		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Delete(key)
			ev := dataFor(key)
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
			checkTree(t, tree, "delete")
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Delete(key)
			ev := dataFor(key)
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			buffer := &bytes.Buffer{}
			tree.Fprint(buffer, true)
			t.Logf("tree:\n%s", buffer.String())
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

func uniqueSorted(addList []int) []int {
	unique := make(map[int]struct{})
	for _, key := range addList {
		unique[key] = struct{}{}
	}
	expected := make([]int, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Ints(expected)
	return expected
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []int) {

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, dataFor(key))
	}
	expected := uniqueSorted(addList)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %d  expected: %d", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %d  expected: %d", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	keys := tree.Keys()
	if len(keys) != len(expected) {
		t.Fatalf("keys: actual: %v  expected: %v", keys, expected)
	}
	for i := range keys {
		if keys[i] != expected[i] {
			t.Fatalf("keys: actual: %v  expected: %v", keys, expected)
		}
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(key)
	}

	if !tree.IsEmpty() {
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
	if nil != tree.First() || nil != tree.Last() {
		t.Fatalf("empty tree has first or last")
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, addList []int) {

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, dataFor(key))
	}
	expected := uniqueSorted(addList)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %d not in tree (nil result)", index, key)
		}
		if node.Key() != key {
			t.Fatalf("[%d]: expected: %d but found: %d", index, key, node.Key())
		}
		if node.Value() != dataFor(key) {
			t.Fatalf("[%d]: value: %q  expected: %q", index, node.Value(), dataFor(key))
		}
		node1, index1 := tree.Search(key)
		if nil == node1 {
			t.Fatalf("[%d]: search: %d returned nil", index, key)
		}
		if index != index1 {
			t.Errorf("[%d]: search: %d index: %d expected: %d", index, key, index1, index)
		}
	}

	if nil != tree.Get(-1) || nil != tree.Get(len(expected)) {
		t.Fatal("out of range index returned a node")
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Delete(key)
		}
	}

	// check odd elements are all present
odd_scan:
	for index, key := range expected {
		if 0 == index%2 {
			continue odd_scan
		}
		index >>= 1 // 1,3,5, … → 0,1,2, …
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %d not in tree (nil result)", index, key)
		}
		if node.Key() != key {
			t.Fatalf("[%d]: expected: %d but found: %d", index, key, node.Key())
		}
	}
	checkTree(t, tree, "odd")
}

func makeKey() int {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return n%20000 - 10000
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]int, toDelete)
	present := make(map[int]struct{})

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, dataFor(key))
		present[key] = struct{}{}
	}

	checkTree(t, tree, "random add")

	for i, key := range d {
		tree.Delete(key)
		delete(present, key)
		if 0 == i%50 {
			checkTree(t, tree, "random delete")
		}
		if !closestMatches(tree, present) {
			t.Fatalf("closest pair mismatch after delete: %d", key)
		}
	}
	checkTree(t, tree, "random final")

	// add back the test value
	const testKey = 12345678
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)

	node, _ := tree.Search(testKey)
	if nil == node {
		t.Fatalf("search: %d not found", testKey)
	}
	if node.Value() != testValue {
		t.Fatalf("search: value: %q  expected: %q", node.Value(), testValue)
	}
	checkTree(t, tree, "re-add")
}

// compare the root's closest pair difference with a brute force
// scan of all keys
func closestMatches(tree *avl.Tree, present map[int]struct{}) bool {
	keys := make([]int, 0, len(present))
	for k := range present {
		keys = append(keys, k)
	}
	pair, ok := tree.ClosestPair()
	if len(keys) < 2 {
		return !ok
	}
	if !ok {
		return false
	}
	return pair.Difference() == bruteForceDifference(keys)
}

// O(n²) scan over every pair of keys
func bruteForceDifference(keys []int) uint64 {
	best := uint64(0)
	found := false
	for i := 0; i < len(keys); i += 1 {
		for j := i + 1; j < len(keys); j += 1 {
			a, b := keys[i], keys[j]
			if a > b {
				a, b = b, a
			}
			d := avl.Pair{Lower: a, Upper: b}.Difference()
			if !found || d < best {
				best = d
				found = true
			}
		}
	}
	return best
}

func TestIdempotentInsert(t *testing.T) {
	tree := avl.New()

	added, err := tree.Insert(42, "first")
	if nil != err || !added {
		t.Fatalf("first insert: added: %t  error: %v", added, err)
	}
	height := tree.Height()

	added, err = tree.Insert(42, "second")
	if nil != err {
		t.Fatalf("second insert error: %s", err)
	}
	if added {
		t.Fatal("duplicate reported as added")
	}
	if 1 != tree.Count() || height != tree.Height() {
		t.Fatalf("duplicate changed tree: count: %d  height: %d", tree.Count(), tree.Height())
	}
	node, _ := tree.Search(42)
	if "first" != node.Value() {
		t.Fatalf("duplicate replaced value: %q", node.Value())
	}
}

func TestDeleteAbsent(t *testing.T) {
	tree := avl.New()

	if v, ok := tree.Delete(7); ok || nil != v {
		t.Fatalf("delete from empty tree: %v, %t", v, ok)
	}

	for _, k := range []int{5, 3, 8} {
		tree.Insert(k, dataFor(k))
	}
	if v, ok := tree.Delete(4); ok || nil != v {
		t.Fatalf("delete absent key: %v, %t", v, ok)
	}
	if 3 != tree.Count() {
		t.Fatalf("count changed: %d", tree.Count())
	}
	checkTree(t, tree, "absent")
}

func TestRoundTrip(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{50, 20, 80, 10, 30, 70, 90} {
		tree.Insert(k, dataFor(k))
	}
	before := tree.Keys()
	beforePair, _ := tree.ClosestPair()

	tree.Insert(25, "new")
	tree.Delete(25)

	after := tree.Keys()
	if fmt.Sprint(before) != fmt.Sprint(after) {
		t.Fatalf("keys: before: %v  after: %v", before, after)
	}
	afterPair, ok := tree.ClosestPair()
	if !ok || beforePair.Difference() != afterPair.Difference() {
		t.Fatalf("closest: before: %v  after: %v", beforePair, afterPair)
	}
	checkTree(t, tree, "round trip")
}

func TestPrint(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Insert(k, dataFor(k))
	}

	buffer := &bytes.Buffer{}
	depth := tree.Fprint(buffer, false)
	if 3 != depth {
		t.Fatalf("depth: %d  expected: 3", depth)
	}
	s := buffer.String()
	if !bytes.Contains([]byte(s), []byte("5 [3 / 1 / 8 / (3, 4)]")) {
		t.Fatalf("root line missing from:\n%s", s)
	}
	if !bytes.Contains([]byte(s), []byte("8 [1 / 8 / 8 / NULL]")) {
		t.Fatalf("leaf line missing from:\n%s", s)
	}

	buffer.Reset()
	tree.Fprint(buffer, true)
	if !bytes.Contains(buffer.Bytes(), []byte(`"data:5"`)) {
		t.Fatalf("data missing from:\n%s", buffer.String())
	}

	buffer.Reset()
	if 0 != avl.New().Fprint(buffer, true) || 0 != buffer.Len() {
		t.Fatalf("empty tree printed: %q", buffer.String())
	}
}
