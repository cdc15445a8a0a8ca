// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/closestavl/configuration"
	"github.com/bitmark-inc/closestavl/fault"
	"github.com/bitmark-inc/closestavl/rpc/listener"
)

// file names written by generate-identity
const (
	rpcCertificateFileName = "rpc.crt"
	rpcPrivateKeyFileName  = "rpc.key"

	certificateLifetime = 10 * 365 * 24 * time.Hour
)

// create a self-signed certificate and its private key in a directory
//
// extra hosts are added to the certificate in place of the local
// interface addresses; returns the certificate fingerprint
func makeSelfSignedCertificate(directory string, extraHosts []string) ([32]byte, error) {

	certificateFileName := filepath.Join(directory, rpcCertificateFileName)
	privateKeyFileName := filepath.Join(directory, rpcPrivateKeyFileName)

	if configuration.EnsureFileExists(certificateFileName) {
		return [32]byte{}, fault.ErrCertificateFileAlreadyExists
	}
	if configuration.EnsureFileExists(privateKeyFileName) {
		return [32]byte{}, fault.ErrPrivateKeyFileAlreadyExists
	}

	org := "closestd self signed cert for: rpc"
	validUntil := time.Now().Add(certificateLifetime)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, 0 != len(extraHosts), extraHosts)
	if nil != err {
		return [32]byte{}, err
	}

	keyPair, err := tls.X509KeyPair(cert, key)
	if nil != err {
		return [32]byte{}, err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return [32]byte{}, err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return [32]byte{}, err
	}

	return listener.CertificateFingerprint(keyPair.Certificate[0]), nil
}
