// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listener

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/closestavl/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// port zero is accepted to let the system choose a port
func CanonicalIPandPort(hostPort string) (string, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", fault.ErrInvalidIpAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return "", fault.ErrInvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return "", fault.ErrInvalidPortNumber
	}
	if numericPort < 0 || numericPort > 65535 {
		return "", fault.ErrInvalidPortNumber
	}

	if nil != IP.To4() {
		return IP.String() + ":" + strconv.Itoa(numericPort), nil
	}
	return "[" + IP.String() + "]:" + strconv.Itoa(numericPort), nil
}

// network type and canonical address for a listen setting
//
// "*:PORT" listens on both tcp4 and tcp6
func parseListenAddress(listen string) (string, string, error) {
	listen = strings.TrimSpace(listen)
	if strings.HasPrefix(listen, "*:") {
		listen = "[::]" + listen[1:]
		c, err := CanonicalIPandPort(listen)
		return "tcp", c, err
	}

	c, err := CanonicalIPandPort(listen)
	if nil != err {
		return "", "", err
	}
	if '[' == c[0] {
		return "tcp6", c, nil
	}
	return "tcp4", c, nil
}
