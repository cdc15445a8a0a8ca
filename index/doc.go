// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - a closest pair tree shared between go routines
//
// wraps an avl.Tree with a read/write lock, a logger channel and
// counters for each kind of operation.  Values are strings so that
// they can be carried over JSON-RPC without further encoding.
package index
