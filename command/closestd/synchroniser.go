// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/closestavl/index"
)

const synchroniserLoggerPrefix = "key-sync"

// keep the index holding exactly the keys of the key file
type synchroniser struct {
	log      *logger.L
	idx      index.Handle
	fileName string
	channel  WatcherChannel
}

func newSynchroniser(log *logger.L, idx index.Handle, fileName string, channel WatcherChannel) *synchroniser {
	return &synchroniser{
		log:      log,
		idx:      idx,
		fileName: fileName,
		channel:  channel,
	}
}

// load - read the key file and sync the index to it
func (s *synchroniser) load() error {
	entries, err := readKeyFile(s.fileName)
	if nil != err {
		s.log.Errorf("read: %q  error: %s", s.fileName, err)
		return err
	}
	added, removed, err := s.idx.Sync(entries)
	if nil != err {
		s.log.Errorf("sync: %q  error: %s", s.fileName, err)
		return err
	}
	s.log.Infof("loaded: %q  added: %d  removed: %d", s.fileName, added, removed)
	return nil
}

// Run - background process
//
// a removed file leaves the tree unchanged until the file returns
func (s *synchroniser) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-s.channel.change:
			_ = s.load()
		case <-s.channel.remove:
			s.log.Warnf("key file: %q removed, keeping current keys", s.fileName)
		}
	}

	s.log.Info("stopped")
}
