// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/closestavl/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingConnect    = fault.InvalidError("connect address is required")
	ErrMissingKey        = fault.InvalidError("key is required")
	ErrMissingScriptFile = fault.InvalidError("script file is required")
)
