// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/closestavl/fault"
	"github.com/bitmark-inc/closestavl/rpc/listener"
)

func TestMakeSelfSignedCertificate(t *testing.T) {
	dir, err := ioutil.TempDir("", "closestd-identity")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fingerprint, err := makeSelfSignedCertificate(dir, []string{"127.0.0.1", "closest.example.com"})
	assert.Nil(t, err, "generate error")

	certificateFileName := filepath.Join(dir, rpcCertificateFileName)
	privateKeyFileName := filepath.Join(dir, rpcPrivateKeyFileName)

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, privateKeyFileName)
	assert.Nil(t, err, "key pair does not load")
	assert.Equal(t, listener.CertificateFingerprint(keyPair.Certificate[0]), fingerprint, "wrong fingerprint")

	certificate, err := x509.ParseCertificate(keyPair.Certificate[0])
	assert.Nil(t, err, "certificate does not parse")
	assert.Contains(t, certificate.DNSNames, "closest.example.com", "missing extra host")

	info, err := os.Stat(privateKeyFileName)
	assert.Nil(t, err, "missing private key")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "private key readable by others")

	// must not overwrite
	_, err = makeSelfSignedCertificate(dir, nil)
	assert.Equal(t, fault.ErrCertificateFileAlreadyExists, err, "existing certificate overwritten")

	os.Remove(certificateFileName)
	_, err = makeSelfSignedCertificate(dir, nil)
	assert.Equal(t, fault.ErrPrivateKeyFileAlreadyExists, err, "existing private key overwritten")
}
