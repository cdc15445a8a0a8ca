// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/closestavl/fault"
	"github.com/bitmark-inc/closestavl/rpc/ratelimit"
)

func TestNew(t *testing.T) {
	l, err := ratelimit.New(100, 10)
	assert.Nil(t, err, "valid rate rejected")
	assert.Equal(t, rate.Limit(100), l.Limit(), "wrong limit")
	assert.Equal(t, 10, l.Burst(), "wrong burst")

	_, err = ratelimit.New(0, 10)
	assert.Equal(t, fault.ErrInvalidRate, err, "zero rate accepted")

	_, err = ratelimit.New(10, 0)
	assert.Equal(t, fault.ErrInvalidRate, err, "zero burst accepted")
}

func TestLimit(t *testing.T) {
	l := rate.NewLimiter(1000, 5)
	for i := 0; i < 5; i += 1 {
		assert.Nil(t, ratelimit.Limit(l), "burst request limited")
	}
}

func TestLimitN(t *testing.T) {
	l := rate.NewLimiter(1000, 20)

	assert.Nil(t, ratelimit.LimitN(l, 10, 20), "valid count limited")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, 0, 20), "zero count accepted")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, 21, 20), "large count accepted")

	// more than the burst can never be satisfied
	small := rate.NewLimiter(1000, 2)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(small, 5, 20), "oversized burst accepted")
}
