// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/closestavl/configuration"
	"github.com/bitmark-inc/closestavl/fault"
)

type rpcSection struct {
	MaximumConnections int      `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string     `gluamapper:"data_directory"`
	MaximumNodes  int        `gluamapper:"maximum_nodes"`
	FileName      string     `gluamapper:"file_name"`
	RPC           rpcSection `gluamapper:"rpc"`
}

const luaSource = `
local M = {}
M.data_directory = "."
M.maximum_nodes = 1000
M.file_name = arg[0]
M.rpc = {
    maximum_connections = 5 * 10,
    listen = { "127.0.0.1:2150", "[::1]:2150" },
}
return M
`

func TestParseString(t *testing.T) {
	config := &testConfiguration{
		MaximumNodes: 7,
	}
	err := configuration.ParseConfigurationString(luaSource, config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, ".", config.DataDirectory, "wrong data directory")
	assert.Equal(t, 1000, config.MaximumNodes, "wrong maximum nodes")
	assert.Equal(t, "", config.FileName, "wrong arg[0]")
	assert.Equal(t, 50, config.RPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2150", "[::1]:2150"}, config.RPC.Listen, "wrong listen")
}

func TestParseFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(luaSource), 0600)
	assert.Nil(t, err, "write file")

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, fileName, config.FileName, "wrong arg[0]")

	d, err := configuration.DataDirectory(fileName, config.DataDirectory)
	assert.Nil(t, err, "data directory error")
	expected, _ := filepath.Abs(dir)
	assert.Equal(t, expected, d, "wrong data directory")

	_, err = configuration.DataDirectory(fileName, "test.conf")
	assert.Equal(t, fault.ErrInvalidDirectory, err, "file accepted as directory")

	_, err = configuration.DataDirectory(fileName, "~")
	assert.Equal(t, fault.ErrInvalidDirectory, err, "home accepted as directory")
}

func TestParseErrors(t *testing.T) {
	config := &testConfiguration{}

	err := configuration.ParseConfigurationString("return 42", config)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "number accepted")

	err = configuration.ParseConfigurationString("return {", config)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationString(luaSource, *config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non pointer accepted")

	err = configuration.ParseConfigurationFile("/does/not/exist.conf", config)
	assert.NotNil(t, err, "missing file accepted")
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/a/b/c", configuration.EnsureAbsolute("/a", "b/c"), "relative")
	assert.Equal(t, "/x/y", configuration.EnsureAbsolute("/a", "/x/y"), "absolute")

	name, err := configuration.PlainFileName("/var/log", "closestd.log")
	assert.Nil(t, err, "plain name error")
	assert.Equal(t, "/var/log/closestd.log", name, "wrong plain name")

	_, err = configuration.PlainFileName("/var/log", "sub/closestd.log")
	assert.Equal(t, fault.ErrInvalidFileName, err, "path accepted")

	assert.False(t, configuration.EnsureFileExists("/does/not/exist"), "missing file exists")
}
