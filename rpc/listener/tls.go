// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listener

import (
	"crypto/tls"
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	multilistener "github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/closestavl/configuration"
	"github.com/bitmark-inc/closestavl/counter"
	"github.com/bitmark-inc/closestavl/fault"
)

// CertificateFingerprint - SHA3-256 of a DER encoded certificate
//
// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func CertificateFingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// load a key pair, both files must exist
func loadCertificate(certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	if "" == certificateFileName || "" == keyFileName {
		return nil, [32]byte{}, fault.ErrIncompleteTLSConfiguration
	}
	if !configuration.EnsureFileExists(certificateFileName) {
		return nil, [32]byte{}, fault.ErrCertificateFileNotFound
	}
	if !configuration.EnsureFileExists(keyFileName) {
		return nil, [32]byte{}, fault.ErrPrivateKeyFileNotFound
	}

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		return nil, [32]byte{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}
	return tlsConfiguration, CertificateFingerprint(keyPair.Certificate[0]), nil
}

// TLS service using a connection limited multi-listener
type tlsListener struct {
	sync.Mutex
	log              *logger.L
	server           *rpc.Server
	connections      *counter.Counter
	requests         *counter.Counter
	listen           []string
	tlsConfiguration *tls.Config
	limiter          *multilistener.Limiter
	multi            *multilistener.MultiListener
}

func newTLSListener(r *rpcListener, tlsConfiguration *tls.Config) *tlsListener {
	return &tlsListener{
		log:              r.log,
		server:           r.server,
		connections:      r.connections,
		requests:         r.requests,
		listen:           r.listen,
		tlsConfiguration: tlsConfiguration,
		limiter:          multilistener.NewLimiter(int(r.maxConnections)),
	}
}

// Serve - open every listen address and accept in background
func (t *tlsListener) Serve() error {
	t.Lock()
	defer t.Unlock()

	t.log.Infof("starting TLS RPC server: %v", t.listen)
	ml, err := multilistener.NewMultiListener(logName, t.listen, t.tlsConfiguration, t.limiter, t.callback)
	if nil != err {
		t.log.Errorf("rpc server listen error: %s", err)
		return err
	}
	t.multi = ml
	t.multi.Start(t.server)
	return nil
}

// Addresses - the configured listen addresses
func (t *tlsListener) Addresses() []string {
	t.Lock()
	defer t.Unlock()

	addresses := make([]string, len(t.listen))
	copy(addresses, t.listen)
	return addresses
}

// Stop - shut down the multi-listener
func (t *tlsListener) Stop() {
	t.Lock()
	defer t.Unlock()

	if nil != t.multi {
		t.multi.Stop()
		t.multi = nil
	}
	t.log.Info("TLS RPC stopped")
}

// the limiter has already admitted the connection
func (t *tlsListener) callback(conn io.ReadWriteCloser, argument interface{}) {
	server := argument.(*rpc.Server)

	t.connections.Increment()
	defer t.connections.Decrement()

	server.ServeCodec(&countingCodec{
		ServerCodec: jsonrpc.NewServerCodec(conn),
		requests:    t.requests,
	})
}
