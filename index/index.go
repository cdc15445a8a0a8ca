// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"io"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/closestavl/avl"
	"github.com/bitmark-inc/closestavl/counter"
	"github.com/bitmark-inc/closestavl/fault"
)

//go:generate mockgen -source=index.go -destination=mocks/index.go -package=mocks

// Handle - the operations available to RPC and the daemon
type Handle interface {
	Insert(key int, value string) (bool, error)
	Delete(key int) (string, bool)
	Search(key int) (Entry, bool)
	Get(index int) (Entry, bool)
	List(start int, count int) []Entry
	ClosestPair() (avl.Pair, bool)
	Sync(entries map[int]string) (int, int, error)
	Info() Info
	Check() error
}

// Entry - a key/value pair with its position in key order
type Entry struct {
	Key   int    `json:"key"`
	Value string `json:"value"`
	Index int    `json:"index"`
}

// Counters - operations performed
type Counters struct {
	Inserts  uint64 `json:"inserts"`
	Deletes  uint64 `json:"deletes"`
	Searches uint64 `json:"searches"`
	Failures uint64 `json:"failures"`
}

// Info - summary of the tree state
type Info struct {
	Count      int       `json:"count"`
	Height     int       `json:"height"`
	Min        int       `json:"min"`
	Max        int       `json:"max"`
	Closest    *avl.Pair `json:"closest,omitempty"`
	Difference uint64    `json:"difference"`
	Rotations  Rotations `json:"rotations"`
	Allocated  int       `json:"allocated"`
	Free       int       `json:"free"`
	Counters   Counters  `json:"counters"`
}

// Rotations - rebalancing performed since start
type Rotations struct {
	Left  uint64 `json:"left"`
	Right uint64 `json:"right"`
}

// Index - lock protected tree
type Index struct {
	sync.RWMutex
	log  *logger.L
	tree *avl.Tree

	inserts  counter.Counter
	deletes  counter.Counter
	searches counter.Counter
	failures counter.Counter
}

// New - create an empty index
//
// maximumNodes of zero allows the tree to grow without limit
func New(log *logger.L, maximumNodes int) *Index {
	idx := &Index{
		log:  log,
		tree: avl.NewLimited(maximumNodes),
	}
	idx.tree.SetRelease(func(key int, value interface{}) {
		idx.log.Tracef("release: %d → %v", key, value)
	})
	return idx
}

// Insert - add a key, an existing key keeps its value
func (idx *Index) Insert(key int, value string) (bool, error) {
	idx.Lock()
	defer idx.Unlock()

	added, err := idx.tree.Insert(key, value)
	if nil != err {
		idx.failures.Increment()
		idx.log.Warnf("insert: %d  error: %s", key, err)
		return false, err
	}
	if added {
		idx.inserts.Increment()
		idx.log.Debugf("insert: %d → %q", key, value)
	}
	return added, nil
}

// Delete - remove a key returning its value
func (idx *Index) Delete(key int) (string, bool) {
	idx.Lock()
	defer idx.Unlock()

	value, ok := idx.tree.Delete(key)
	if !ok {
		return "", false
	}
	idx.deletes.Increment()
	idx.log.Debugf("delete: %d", key)
	s, _ := value.(string)
	return s, true
}

// Search - find a key and its index
func (idx *Index) Search(key int) (Entry, bool) {
	idx.RLock()
	defer idx.RUnlock()

	idx.searches.Increment()

	node, index := idx.tree.Search(key)
	if nil == node {
		return Entry{}, false
	}
	return makeEntry(node, index), true
}

// Get - fetch the entry at an index in key order
func (idx *Index) Get(index int) (Entry, bool) {
	idx.RLock()
	defer idx.RUnlock()

	node := idx.tree.Get(index)
	if nil == node {
		return Entry{}, false
	}
	return makeEntry(node, index), true
}

// List - up to count entries in key order starting at an index
func (idx *Index) List(start int, count int) []Entry {
	idx.RLock()
	defer idx.RUnlock()

	entries := make([]Entry, 0, count)
	if start < 0 {
		return entries
	}
	node := idx.tree.Get(start)
	for i := start; nil != node && len(entries) < count; i += 1 {
		entries = append(entries, makeEntry(node, i))
		node = node.Next()
	}
	return entries
}

// ClosestPair - pair of keys with the smallest difference
func (idx *Index) ClosestPair() (avl.Pair, bool) {
	idx.RLock()
	defer idx.RUnlock()

	return idx.tree.ClosestPair()
}

// Keys - all keys in ascending order
func (idx *Index) Keys() []int {
	idx.RLock()
	defer idx.RUnlock()

	return idx.tree.Keys()
}

// Sync - make the tree hold exactly the keys of entries
//
// extra keys are deleted, missing keys inserted in ascending order and
// existing keys keep their value.  Returns the number added and
// removed.  If the entries cannot all fit within the node limit the
// tree is left unchanged.
func (idx *Index) Sync(entries map[int]string) (int, int, error) {
	idx.Lock()
	defer idx.Unlock()

	if limit := idx.tree.Limit(); 0 != limit && len(entries) > limit {
		idx.failures.Increment()
		idx.log.Errorf("sync: entries: %d  exceed limit: %d", len(entries), limit)
		return 0, 0, fault.ErrNodeLimitReached
	}

	removed := 0
	for _, key := range idx.tree.Keys() {
		if _, ok := entries[key]; ok {
			continue
		}
		if _, ok := idx.tree.Delete(key); ok {
			idx.deletes.Increment()
			removed += 1
		}
	}

	keys := make([]int, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	added := 0
	for _, key := range keys {
		ok, err := idx.tree.Insert(key, entries[key])
		if nil != err {
			idx.failures.Increment()
			idx.log.Errorf("sync: insert: %d  error: %s", key, err)
			return added, removed, err
		}
		if ok {
			idx.inserts.Increment()
			added += 1
		}
	}

	idx.log.Infof("sync: added: %d  removed: %d  count: %d", added, removed, idx.tree.Count())
	return added, removed, nil
}

// Info - snapshot of the tree aggregates and counters
func (idx *Index) Info() Info {
	idx.RLock()
	defer idx.RUnlock()

	left, right := idx.tree.Rotations()
	total, free := idx.tree.Allocated()

	info := Info{
		Count:  idx.tree.Count(),
		Height: idx.tree.Height(),
		Rotations: Rotations{
			Left:  left,
			Right: right,
		},
		Allocated: total - free,
		Free:      free,
		Counters: Counters{
			Inserts:  idx.inserts.Uint64(),
			Deletes:  idx.deletes.Uint64(),
			Searches: idx.searches.Uint64(),
			Failures: idx.failures.Uint64(),
		},
	}
	if !idx.tree.IsEmpty() {
		info.Min = idx.tree.Min()
		info.Max = idx.tree.Max()
	}
	if pair, ok := idx.tree.ClosestPair(); ok {
		info.Closest = &pair
		info.Difference = pair.Difference()
	}
	return info
}

// Check - run the tree consistency checker
func (idx *Index) Check() error {
	idx.RLock()
	defer idx.RUnlock()

	err := idx.tree.Check()
	if nil != err {
		idx.log.Criticalf("check: %s", err)
	}
	return err
}

// Fprint - write the tree structure
func (idx *Index) Fprint(w io.Writer, printData bool) int {
	idx.RLock()
	defer idx.RUnlock()

	return idx.tree.Fprint(w, printData)
}

// Clear - remove all keys
func (idx *Index) Clear() {
	idx.Lock()
	defer idx.Unlock()

	n := idx.tree.Count()
	idx.tree.Clear()
	idx.deletes.Add(uint64(n))
	idx.log.Infof("clear: removed: %d", n)
}

func makeEntry(node *avl.Node, index int) Entry {
	value, _ := node.Value().(string)
	return Entry{
		Key:   node.Key(),
		Value: value,
		Index: index,
	}
}

// check the interface is satisfied
var _ Handle = (*Index)(nil)
