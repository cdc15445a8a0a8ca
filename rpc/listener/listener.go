// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listener - serve JSON-RPC over TCP
package listener

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/closestavl/counter"
	"github.com/bitmark-inc/closestavl/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Configuration - configuration file data for RPC setup
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	RequestRate        float64  `gluamapper:"request_rate" json:"request_rate"`
	RequestBurst       int      `gluamapper:"request_burst" json:"request_burst"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Listener - a started RPC service
type Listener interface {
	Serve() error
	Addresses() []string
	Stop()
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	server         *rpc.Server
	connections    *counter.Counter
	requests       *counter.Counter
	maxConnections uint64
	ipType         []string
	listen         []string
	listeners      []net.Listener
	wg             sync.WaitGroup
}

// New - validate the configuration and create a listener
//
// connections holds the number of open connections and requests the
// total number of requests read.  If a certificate and private key
// are configured the listener serves TLS, otherwise plain TCP.
func New(
	configuration *Configuration,
	log *logger.L,
	connections *counter.Counter,
	requests *counter.Counter,
	server *rpc.Server,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingListenAddress
	}

	r := &rpcListener{
		log:            log,
		server:         server,
		connections:    connections,
		requests:       requests,
		maxConnections: configuration.MaximumConnections,
		ipType:         make([]string, len(configuration.Listen)),
		listen:         make([]string, len(configuration.Listen)),
	}

	// validate all listen addresses
	for i, address := range configuration.Listen {
		ipType, listen, err := parseListenAddress(address)
		if nil != err {
			log.Errorf("%s listen: %q  error: %s", logName, address, err)
			return nil, err
		}
		r.ipType[i] = ipType
		r.listen[i] = listen
	}

	if "" == configuration.Certificate && "" == configuration.PrivateKey {
		return r, nil
	}

	tlsConfiguration, fingerprint, err := loadCertificate(configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		log.Errorf("%s certificate: %q  private key: %q  error: %s", logName, configuration.Certificate, configuration.PrivateKey, err)
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", logName, fingerprint)

	return newTLSListener(r, tlsConfiguration), nil
}

// Serve - open every listen address and accept in background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listen {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := net.Listen(r.ipType[i], listen)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, l)

		r.wg.Add(1)
		go r.accept(l)
	}
	return nil
}

// Addresses - the bound addresses, resolving any zero port
func (r *rpcListener) Addresses() []string {
	r.Lock()
	defer r.Unlock()

	addresses := make([]string, len(r.listeners))
	for i, l := range r.listeners {
		addresses[i] = l.Addr().String()
	}
	return addresses
}

// Stop - close all listeners and wait for the accept loops
//
// open connections finish their current requests independently
func (r *rpcListener) Stop() {
	r.Lock()
	r.closeAll()
	r.Unlock()

	r.wg.Wait()
	r.log.Info("RPC stopped")
}

func (r *rpcListener) closeAll() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listen net.Listener) {
	defer r.wg.Done()

	for {
		conn, err := listen.Accept()
		if err != nil {
			r.log.Infof("rpc accept terminated: %s", err)
			break
		}
		if r.connections.Increment() <= r.maxConnections {
			go func() {
				r.server.ServeCodec(&countingCodec{
					ServerCodec: jsonrpc.NewServerCodec(conn),
					requests:    r.requests,
				})
				_ = conn.Close()
				r.connections.Decrement()
			}()
		} else {
			r.connections.Decrement()
			r.log.Warnf("connection limit: %d reached, rejected: %s", r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}

// counts each request header read
type countingCodec struct {
	rpc.ServerCodec
	requests *counter.Counter
}

func (c *countingCodec) ReadRequestHeader(request *rpc.Request) error {
	err := c.ServerCodec.ReadRequestHeader(request)
	if nil == err && nil != c.requests {
		c.requests.Increment()
	}
	return err
}
