// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - drive a local tree from a line oriented script
//
// each line holds one command and its arguments separated by white
// space, "#" starts a comment and blank lines are ignored:
//
//   insert KEY [VALUE…]   add a key, the value is the rest of the line
//   delete KEY            remove a key
//   search KEY            show the value and index of a key
//   get INDEX             show the key at an index in key order
//   closest               show the closest pair
//   height | min | max | count
//   print                 draw the tree
//   check                 verify all cached aggregates
//   clear                 remove all keys
//   limit N               restrict an empty tree to N nodes
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/closestavl/avl"
	"github.com/bitmark-inc/closestavl/fault"
)

// LineError - an error at a specific script line
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error - the error interface
func (e *LineError) Error() string {
	return fmt.Sprintf("line: %d  %q: %s", e.Line, e.Text, e.Err)
}

// Runner - executes commands against one tree
type Runner struct {
	tree *avl.Tree
	out  io.Writer
}

type command struct {
	minimum int
	maximum int // -1 for no limit
	run     func(r *Runner, arguments []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"insert":  {1, -1, (*Runner).insert},
		"delete":  {1, 1, (*Runner).delete},
		"search":  {1, 1, (*Runner).search},
		"get":     {1, 1, (*Runner).get},
		"closest": {0, 0, (*Runner).closest},
		"height":  {0, 0, (*Runner).height},
		"min":     {0, 0, (*Runner).min},
		"max":     {0, 0, (*Runner).max},
		"count":   {0, 0, (*Runner).count},
		"print":   {0, 0, (*Runner).print},
		"check":   {0, 0, (*Runner).check},
		"clear":   {0, 0, (*Runner).clear},
		"limit":   {1, 1, (*Runner).limit},
	}
}

// New - runner with an empty tree writing results to out
func New(out io.Writer) *Runner {
	return &Runner{
		tree: avl.New(),
		out:  out,
	}
}

// Tree - the tree being operated on
func (r *Runner) Tree() *avl.Tree {
	return r.tree
}

// Run - execute every line, stopping at the first error
func (r *Runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n += 1
		text := scanner.Text()
		if err := r.Execute(text); nil != err {
			return &LineError{Line: n, Text: text, Err: err}
		}
	}
	return scanner.Err()
}

// Execute - run a single line
func (r *Runner) Execute(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if 0 == len(fields) {
		return nil
	}

	c, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return fault.ErrInvalidCommand
	}
	arguments := fields[1:]
	if len(arguments) < c.minimum {
		return fault.ErrMissingArguments
	}
	if c.maximum >= 0 && len(arguments) > c.maximum {
		return fault.ErrTooManyArguments
	}
	return c.run(r, arguments)
}

func parseKey(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return k, nil
}

func (r *Runner) insert(arguments []string) error {
	key, err := parseKey(arguments[0])
	if nil != err {
		return err
	}
	value := strings.Join(arguments[1:], " ")
	added, err := r.tree.Insert(key, value)
	if nil != err {
		return err
	}
	if added {
		fmt.Fprintf(r.out, "inserted %d\n", key)
	} else {
		fmt.Fprintf(r.out, "exists %d\n", key)
	}
	return nil
}

func (r *Runner) delete(arguments []string) error {
	key, err := parseKey(arguments[0])
	if nil != err {
		return err
	}
	value, ok := r.tree.Delete(key)
	if !ok {
		fmt.Fprintf(r.out, "absent %d\n", key)
		return nil
	}
	fmt.Fprintf(r.out, "deleted %d → %q\n", key, value)
	return nil
}

func (r *Runner) search(arguments []string) error {
	key, err := parseKey(arguments[0])
	if nil != err {
		return err
	}
	node, index := r.tree.Search(key)
	if nil == node {
		fmt.Fprintf(r.out, "absent %d\n", key)
		return nil
	}
	fmt.Fprintf(r.out, "found %d → %q at %d\n", key, node.Value(), index)
	return nil
}

func (r *Runner) get(arguments []string) error {
	index, err := strconv.Atoi(arguments[0])
	if nil != err {
		return fault.ErrInvalidIndex
	}
	node := r.tree.Get(index)
	if nil == node {
		fmt.Fprintf(r.out, "get %d NULL\n", index)
		return nil
	}
	fmt.Fprintf(r.out, "get %d → %d %q\n", index, node.Key(), node.Value())
	return nil
}

func (r *Runner) closest(_ []string) error {
	pair, ok := r.tree.ClosestPair()
	if !ok {
		fmt.Fprintf(r.out, "closest NULL\n")
		return nil
	}
	fmt.Fprintf(r.out, "closest (%d, %d) difference %d\n", pair.Lower, pair.Upper, pair.Difference())
	return nil
}

func (r *Runner) height(_ []string) error {
	fmt.Fprintf(r.out, "height %d\n", r.tree.Height())
	return nil
}

func (r *Runner) min(_ []string) error {
	if r.tree.IsEmpty() {
		fmt.Fprintf(r.out, "min NULL\n")
		return nil
	}
	fmt.Fprintf(r.out, "min %d\n", r.tree.Min())
	return nil
}

func (r *Runner) max(_ []string) error {
	if r.tree.IsEmpty() {
		fmt.Fprintf(r.out, "max NULL\n")
		return nil
	}
	fmt.Fprintf(r.out, "max %d\n", r.tree.Max())
	return nil
}

func (r *Runner) count(_ []string) error {
	fmt.Fprintf(r.out, "count %d\n", r.tree.Count())
	return nil
}

func (r *Runner) print(_ []string) error {
	r.tree.Fprint(r.out, true)
	return nil
}

func (r *Runner) check(_ []string) error {
	if err := r.tree.Check(); nil != err {
		return err
	}
	fmt.Fprintf(r.out, "check ok\n")
	return nil
}

func (r *Runner) clear(_ []string) error {
	n := r.tree.Count()
	r.tree.Clear()
	fmt.Fprintf(r.out, "cleared %d\n", n)
	return nil
}

func (r *Runner) limit(arguments []string) error {
	n, err := strconv.Atoi(arguments[0])
	if nil != err || n < 0 {
		return fault.ErrInvalidCount
	}
	if !r.tree.IsEmpty() {
		return fault.ErrAlreadyInitialised
	}
	r.tree = avl.NewLimited(n)
	fmt.Fprintf(r.out, "limit %d\n", n)
	return nil
}
