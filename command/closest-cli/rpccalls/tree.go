// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/closestavl/index"
	"github.com/bitmark-inc/closestavl/rpc/tree"
)

// Insert - add a key and value to the remote tree
func (c *Client) Insert(key int, value string) (*tree.InsertReply, error) {
	arguments := tree.InsertArguments{
		Key:   key,
		Value: value,
	}
	var reply tree.InsertReply
	if err := c.call("Tree.Insert", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Delete - remove a key from the remote tree
func (c *Client) Delete(key int) (*tree.DeleteReply, error) {
	arguments := tree.KeyArguments{
		Key: key,
	}
	var reply tree.DeleteReply
	if err := c.call("Tree.Delete", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Search - find a key and its in-order index
func (c *Client) Search(key int) (*index.Entry, error) {
	arguments := tree.KeyArguments{
		Key: key,
	}
	var reply index.Entry
	if err := c.call("Tree.Search", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Closest - fetch the pair of keys with the smallest difference
func (c *Client) Closest() (*tree.ClosestReply, error) {
	var reply tree.ClosestReply
	if err := c.call("Tree.Closest", &tree.ClosestArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - fetch a page of entries in key order
func (c *Client) List(start int, count int) (*tree.ListReply, error) {
	arguments := tree.ListArguments{
		Start: start,
		Count: count,
	}
	var reply tree.ListReply
	if err := c.call("Tree.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Info - request tree aggregates and server status
func (c *Client) Info() (*tree.InfoReply, error) {
	var reply tree.InfoReply
	if err := c.call("Tree.Info", &tree.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
