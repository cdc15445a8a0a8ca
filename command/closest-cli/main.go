// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	useTLS  bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2150"
	defaultCount   = 20
)

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "closest-cli"
	app.Usage = "query a closestd server or run tree scripts locally"
	app.Version = version
	app.HideVersion = true
	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " closestd RPC `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "add a key and value to the tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "key, k",
					Usage: "*integer `KEY` to add",
				},
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: " `TEXT` to store with the key",
				},
			},
			Action: runInsert,
		},
		{
			Name:      "delete",
			Usage:     "remove a key from the tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "key, k",
					Usage: "*integer `KEY` to remove",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "search",
			Usage:     "find a key and its position in key order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "key, k",
					Usage: "*integer `KEY` to find",
				},
			},
			Action: runSearch,
		},
		{
			Name:   "closest",
			Usage:  "display the pair of keys with the smallest difference",
			Action: runClosest,
		},
		{
			Name:  "list",
			Usage: "list entries in key order",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "start, s",
					Value: 0,
					Usage: " first `INDEX` to list",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: defaultCount,
					Usage: " maximum `COUNT` of entries",
				},
			},
			Action: runList,
		},
		{
			Name:   "info",
			Usage:  "display closestd tree and server status",
			Action: runInfo,
		},
		{
			Name:      "script",
			Usage:     "run an operation script against a local tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*script `FILE` or - for standard input",
				},
			},
			Action: runScript,
		},
		{
			Name:  "version",
			Usage: "display closest-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		connect := c.GlobalString("connect")
		if "" == connect {
			return ErrMissingConnect
		}

		if verbose {
			fmt.Fprintf(e, "connect: %s\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			useTLS:  c.GlobalBool("tls"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
