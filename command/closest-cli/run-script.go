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

	"github.com/bitmark-inc/closestavl/script"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return ErrMissingScriptFile
	}

	var in io.Reader = os.Stdin
	if "-" != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		in = f
	}

	if m.verbose {
		fmt.Fprintf(m.e, "script: %s\n", fileName)
	}

	return script.New(m.w).Run(in)
}
