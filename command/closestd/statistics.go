// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/closestavl/counter"
	"github.com/bitmark-inc/closestavl/index"
)

const statisticsLoggerPrefix = "statistics"

// periodically log the tree state
type statistics struct {
	log         *logger.L
	idx         index.Handle
	interval    time.Duration
	connections *counter.Counter
	requests    *counter.Counter
}

func newStatistics(log *logger.L, idx index.Handle, interval time.Duration, connections *counter.Counter, requests *counter.Counter) *statistics {
	return &statistics{
		log:         log,
		idx:         idx,
		interval:    interval,
		connections: connections,
		requests:    requests,
	}
}

// Run - background process
func (s *statistics) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Info("starting…")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s.report()
		}
	}

	s.report()
	s.log.Info("stopped")
}

func (s *statistics) report() {
	info := s.idx.Info()

	s.log.Infof("count: %d  height: %d  rotations: %d/%d  allocated: %d  free: %d",
		info.Count, info.Height, info.Rotations.Left, info.Rotations.Right, info.Allocated, info.Free)
	if nil != info.Closest {
		s.log.Infof("closest: (%d, %d)  difference: %d", info.Closest.Lower, info.Closest.Upper, info.Difference)
	}
	s.log.Infof("inserts: %d  deletes: %d  searches: %d  failures: %d",
		info.Counters.Inserts, info.Counters.Deletes, info.Counters.Searches, info.Counters.Failures)
	s.log.Infof("connections: %s  requests: %s", s.connections, s.requests)
}
