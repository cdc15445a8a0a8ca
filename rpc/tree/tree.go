// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - JSON-RPC access to the shared index
package tree

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/closestavl/avl"
	"github.com/bitmark-inc/closestavl/counter"
	"github.com/bitmark-inc/closestavl/fault"
	"github.com/bitmark-inc/closestavl/index"
	"github.com/bitmark-inc/closestavl/rpc/ratelimit"
)

// limit for count
const maximumList = 100

// Tree - type for the RPC
type Tree struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Index    index.Handle
	Start    time.Time
	Version  string
	requests *counter.Counter
}

// New - create the RPC object
//
// requests counts the requests served by the listener
func New(log *logger.L, limiter *rate.Limiter, idx index.Handle, start time.Time, version string, requests *counter.Counter) *Tree {
	return &Tree{
		Log:      log,
		Limiter:  limiter,
		Index:    idx,
		Start:    start,
		Version:  version,
		requests: requests,
	}
}

// ---

// InsertArguments - key and value to insert
type InsertArguments struct {
	Key   int    `json:"key"`
	Value string `json:"value"`
}

// InsertReply - result of insert
type InsertReply struct {
	Added bool `json:"added"`
	Count int  `json:"count"`
}

// Insert - add a key, an existing key keeps its value
func (tree *Tree) Insert(arguments *InsertArguments, reply *InsertReply) error {
	if err := ratelimit.Limit(tree.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	tree.Log.Infof("Tree.Insert: %d", arguments.Key)

	added, err := tree.Index.Insert(arguments.Key, arguments.Value)
	if nil != err {
		return err
	}
	reply.Added = added
	reply.Count = tree.Index.Info().Count
	return nil
}

// ---

// KeyArguments - a single key
type KeyArguments struct {
	Key int `json:"key"`
}

// DeleteReply - result of delete
type DeleteReply struct {
	Value   string    `json:"value"`
	Closest *avl.Pair `json:"closest,omitempty"`
}

// Delete - remove a key
func (tree *Tree) Delete(arguments *KeyArguments, reply *DeleteReply) error {
	if err := ratelimit.Limit(tree.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	tree.Log.Infof("Tree.Delete: %d", arguments.Key)

	value, ok := tree.Index.Delete(arguments.Key)
	if !ok {
		return fault.ErrKeyNotFound
	}
	reply.Value = value
	if pair, ok := tree.Index.ClosestPair(); ok {
		reply.Closest = &pair
	}
	return nil
}

// ---

// Search - find a key and its position in key order
func (tree *Tree) Search(arguments *KeyArguments, reply *index.Entry) error {
	if err := ratelimit.Limit(tree.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	tree.Log.Debugf("Tree.Search: %d", arguments.Key)

	e, ok := tree.Index.Search(arguments.Key)
	if !ok {
		return fault.ErrKeyNotFound
	}
	*reply = e
	return nil
}

// ---

// ClosestArguments - empty arguments for closest request
type ClosestArguments struct{}

// ClosestReply - the closest pair
type ClosestReply struct {
	Lower      int    `json:"lower"`
	Upper      int    `json:"upper"`
	Difference uint64 `json:"difference,string"`
}

// Closest - pair of keys with the smallest difference
func (tree *Tree) Closest(_ *ClosestArguments, reply *ClosestReply) error {
	if err := ratelimit.Limit(tree.Limiter); nil != err {
		return err
	}

	pair, ok := tree.Index.ClosestPair()
	if !ok {
		return fault.ErrEmptyTree
	}
	reply.Lower = pair.Lower
	reply.Upper = pair.Upper
	reply.Difference = pair.Difference()
	return nil
}

// ---

// ListArguments - range of entries in key order
type ListArguments struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

// ListReply - entries and the index to continue from
type ListReply struct {
	Entries   []index.Entry `json:"entries"`
	NextStart int           `json:"nextStart"`
}

// List - entries in key order
func (tree *Tree) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(tree.Limiter, arguments.Count, maximumList); nil != err {
		return err
	}
	if arguments.Start < 0 {
		return fault.ErrInvalidIndex
	}

	entries := tree.Index.List(arguments.Start, arguments.Count)
	reply.Entries = entries
	reply.NextStart = arguments.Start + len(entries)
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Tree     index.Info `json:"tree"`
	Requests uint64     `json:"requests"`
	Version  string     `json:"version"`
	Uptime   string     `json:"uptime"`
}

// Info - return the tree aggregates and server state
func (tree *Tree) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(tree.Limiter); nil != err {
		return err
	}

	reply.Tree = tree.Index.Info()
	if nil != tree.requests {
		reply.Requests = tree.requests.Uint64()
	}
	reply.Version = tree.Version
	reply.Uptime = time.Since(tree.Start).String()
	return nil
}
