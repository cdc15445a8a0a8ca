// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/closestavl/fault"
)

// key file format: one "KEY [VALUE…]" entry per line, "#" starts a
// comment, blank lines are ignored and a repeated key keeps its
// first value

// readKeyFile - load all entries from a key file
func readKeyFile(fileName string) (map[int]string, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return parseKeys(f)
}

func parseKeys(in io.Reader) (map[int]string, error) {
	entries := make(map[int]string)

	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue
		}
		key, err := strconv.Atoi(fields[0])
		if nil != err {
			return nil, fmt.Errorf("line: %d  %s", n, fault.ErrInvalidKeyFileLine)
		}
		if _, ok := entries[key]; ok {
			continue
		}
		entries[key] = strings.Join(fields[1:], " ")
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return entries, nil
}

// generateKeys - write count random keys to a new file
//
// keys lie in ±maximum so that close pairs are likely, maximum is at
// most MaxInt32 so the key range cannot overflow
func generateKeys(fileName string, count int, maximum int) error {
	if count <= 0 || maximum <= 0 || maximum > math.MaxInt32 {
		return fault.ErrInvalidCount
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# %d random keys\n", count)

	b := make([]byte, 8)
	for i := 0; i < count; i += 1 {
		if _, err := io.ReadFull(rand.Reader, b); nil != err {
			return err
		}
		key := int(binary.BigEndian.Uint64(b)%(2*uint64(maximum)+1)) - maximum
		fmt.Fprintf(w, "%d item-%d\n", key, i)
	}
	return w.Flush()
}
