// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
)

// range of keys written by generate-keys
const generatedKeyRange = 1000000

// setup command handler
//
// commands that run to create a key file or the RPC identity these
// commands cannot access the tree or the configuration file
//
// returns false if the daemon should continue to start
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-keys", "gen":
		if len(arguments) < 2 {
			exitwithstatus.Message("%s: missing arguments: COUNT FILE", program)
		}
		count, err := strconv.Atoi(arguments[0])
		if nil != err || count <= 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, arguments[0])
		}
		fileName := arguments[1]

		err = generateKeys(fileName, count, generatedKeyRange)
		if nil != err {
			fmt.Printf("cannot generate key file: %q\n", fileName)
			fmt.Printf("error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated %d keys in: %q\n", count, fileName)

	case "generate-identity", "id":
		directory := "."
		if len(arguments) > 0 && "" != arguments[0] {
			directory = arguments[0]
		}
		extraHosts := []string{}
		if len(arguments) > 1 {
			for _, a := range arguments[1:] {
				if "" != a {
					extraHosts = append(extraHosts, a)
				}
			}
		}

		fingerprint, err := makeSelfSignedCertificate(directory, extraHosts)
		if nil != err {
			fmt.Printf("generate RPC key and certificate in: %q  error: %s\n", directory, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q in: %q\n", rpcPrivateKeyFileName, rpcCertificateFileName, directory)
		fmt.Printf("SHA3-256 fingerprint: %x\n", fingerprint)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  generate-keys COUNT FILE   (gen)    - create FILE with COUNT random keys\n")
		fmt.Printf("                                        suitable for the keys_file setting\n")
		fmt.Printf("\n")

		fmt.Printf("  generate-identity [DIR]    (id)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFileName)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateFileName)
		fmt.Printf("  generate-identity DIR [IPs...]      - as above with only the given hosts\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convenience when passing script arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}
