// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/closestavl/configuration"
	"github.com/bitmark-inc/closestavl/rpc/listener"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "closestd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultStatisticsInterval = 60 // seconds
	defaultMaximumConnections = 50
	defaultRequestRate        = 200
	defaultRequestBurst       = 100
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory      string                 `gluamapper:"data_directory" json:"data_directory"`
	PidFile            string                 `gluamapper:"pidfile" json:"pidfile"`
	MaximumNodes       int                    `gluamapper:"maximum_nodes" json:"maximum_nodes"`
	KeysFile           string                 `gluamapper:"keys_file" json:"keys_file"`
	StatisticsInterval int                    `gluamapper:"statistics_interval" json:"statistics_interval"`
	RPC                listener.Configuration `gluamapper:"rpc" json:"rpc"`
	Logging            logger.Configuration   `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{

		DataDirectory:      defaultDataDirectory,
		PidFile:            "", // no PidFile by default
		MaximumNodes:       0,  // unlimited
		KeysFile:           "", // start with an empty tree
		StatisticsInterval: defaultStatisticsInterval,

		RPC: listener.Configuration{
			MaximumConnections: defaultMaximumConnections,
			RequestRate:        defaultRequestRate,
			RequestBurst:       defaultRequestBurst,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	// this directory must exist - i.e. must be created prior to running
	options.DataDirectory, err = configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}

	if options.MaximumNodes < 0 {
		options.MaximumNodes = 0
	}
	if options.StatisticsInterval <= 0 {
		options.StatisticsInterval = defaultStatisticsInterval
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.KeysFile,
		&options.RPC.Certificate,
		&options.RPC.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// fail if the log file is not a simple file name, the logger
	// adds the directory itself
	if _, err := configuration.PlainFileName(options.Logging.Directory, options.Logging.File); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
