// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/rpc"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/closestavl/background"
	"github.com/bitmark-inc/closestavl/counter"
	"github.com/bitmark-inc/closestavl/fault"
	"github.com/bitmark-inc/closestavl/index"
	"github.com/bitmark-inc/closestavl/rpc/listener"
	"github.com/bitmark-inc/closestavl/rpc/ratelimit"
	"github.com/bitmark-inc/closestavl/rpc/tree"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	// these commands don't require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		fmt.Printf("configuration: %+v\n", masterConfiguration)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last chance logging for panics
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	idx := index.New(logger.New("index"), masterConfiguration.MaximumNodes)
	log.Infof("maximum nodes: %d", masterConfiguration.MaximumNodes)

	connections := counter.Counter(0)
	requests := counter.Counter(0)

	processes := background.Processes{
		newStatistics(
			logger.New(statisticsLoggerPrefix),
			idx,
			time.Duration(masterConfiguration.StatisticsInterval)*time.Second,
			&connections,
			&requests,
		),
	}

	// optional key file, loaded now and reloaded on change
	if "" != masterConfiguration.KeysFile {
		watcherChannel := WatcherChannel{
			change: make(chan struct{}, 1),
			remove: make(chan struct{}, 1),
		}

		keySync := newSynchroniser(logger.New(synchroniserLoggerPrefix), idx, masterConfiguration.KeysFile, watcherChannel)
		if err := keySync.load(); nil != err {
			log.Criticalf("key file: %q  error: %s", masterConfiguration.KeysFile, err)
			exitwithstatus.Message("%s: key file: %q  error: %s", program, masterConfiguration.KeysFile, err)
		}
		if err := idx.Check(); nil != err {
			fault.Panicf("tree check failed after load: %s", err)
		}

		watcher, err := newFileWatcher(masterConfiguration.KeysFile, logger.New(fileWatcherLoggerPrefix), watcherChannel)
		if nil != err {
			exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
		}
		if err := watcher.Start(); nil != err {
			exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
		}
		defer watcher.Stop()

		processes = append(processes, keySync)
	}

	// RPC service
	limiter, err := ratelimit.New(masterConfiguration.RPC.RequestRate, masterConfiguration.RPC.RequestBurst)
	if nil != err {
		exitwithstatus.Message("%s: rpc request rate: %v  burst: %d  error: %s", program, masterConfiguration.RPC.RequestRate, masterConfiguration.RPC.RequestBurst, err)
	}

	server := rpc.NewServer()
	err = server.Register(tree.New(logger.New("rpc-tree"), limiter, idx, time.Now(), version, &requests))
	if nil != err {
		log.Criticalf("rpc register error: %s", err)
		exitwithstatus.Message("%s: rpc register error: %s", program, err)
	}

	rpcListener, err := listener.New(&masterConfiguration.RPC, logger.New("rpc-listener"), &connections, &requests, server)
	if nil != err {
		exitwithstatus.Message("%s: rpc listener setup failed with error: %s", program, err)
	}
	if err := rpcListener.Serve(); nil != err {
		exitwithstatus.Message("%s: rpc listener start failed with error: %s", program, err)
	}
	defer rpcListener.Stop()

	log.Infof("rpc listening on: %v", rpcListener.Addresses())

	// start background processes
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down...\n")
	}
}
