// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/closestavl/fault"
	"github.com/bitmark-inc/closestavl/fixtures"
)

const testFileName = "keys.txt"

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func waitFor(t *testing.T, ch <-chan struct{}, name string) {
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not send %s event", name)
	}
}

func TestFileWatcher(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "closestd")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	filePath := filepath.Join(dir, testFileName)
	err = ioutil.WriteFile(filePath, []byte("1\n"), 0600)
	assert.Nil(t, err, "create file")

	channel := newWatcherChannel()
	w, err := newFileWatcher(filePath, logger.New(fixtures.LogCategory), channel)
	assert.Nil(t, err, "new watcher")
	assert.Nil(t, w.Start(), "start watcher")
	defer w.Stop()

	// events for other files are ignored
	err = ioutil.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0600)
	assert.Nil(t, err, "write other file")

	err = ioutil.WriteFile(filePath, []byte("1\n2\n"), 0600)
	assert.Nil(t, err, "write file")
	waitFor(t, channel.change, "change")

	err = os.Remove(filePath)
	assert.Nil(t, err, "remove file")
	waitFor(t, channel.remove, "remove")
}

func TestFileWatcherMissingFile(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := newFileWatcher("/does/not/exist/keys.txt", logger.New(fixtures.LogCategory), newWatcherChannel())
	assert.Equal(t, fault.ErrFileNotFound, err, "missing file accepted")
}

func TestIsChannelFull(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	w := &FileWatcherData{
		log: logger.New(fixtures.LogCategory),
	}

	ch := make(chan struct{}, 1)
	assert.False(t, w.isChannelFull(ch), "empty channel full")

	w.sendEvent(ch, "test")
	assert.True(t, w.isChannelFull(ch), "channel not full")

	// second event is dropped rather than blocking
	w.sendEvent(ch, "test")
	assert.Equal(t, 1, len(ch), "wrong pending events")
}
