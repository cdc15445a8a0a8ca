// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/closestavl/command/closest-cli/rpccalls"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

func requiredKey(c *cli.Context) (int, error) {
	if !c.IsSet("key") {
		return 0, ErrMissingKey
	}
	return c.Int("key"), nil
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := requiredKey(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Insert(key, c.String("value"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := requiredKey(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Delete(key)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := requiredKey(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Search(key)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runClosest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Closest()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(c.Int("start"), c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
