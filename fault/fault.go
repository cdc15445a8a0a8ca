// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCertificateFileNotFound      = NotFoundError("certificate file not found")
	ErrEmptyTree                    = NotFoundError("tree is empty")
	ErrFileNotFound                 = NotFoundError("file not found")
	ErrFileRemoved                  = ProcessError("file removed")
	ErrIncompleteTLSConfiguration   = InvalidError("certificate and private key must both be set")
	ErrInvalidClosestPair           = InvalidError("invalid closest pair")
	ErrInvalidCommand               = InvalidError("invalid command")
	ErrInvalidConfiguration         = InvalidError("configuration did not return a table")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidDirectory             = InvalidError("invalid directory")
	ErrInvalidFileName              = InvalidError("file name is not a plain name")
	ErrInvalidHeight                = InvalidError("invalid height")
	ErrInvalidIndex                 = InvalidError("invalid index")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidKey                   = InvalidError("invalid key")
	ErrInvalidKeyFileLine           = InvalidError("invalid key file line")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidMaximum               = InvalidError("invalid maximum")
	ErrInvalidMinimum               = InvalidError("invalid minimum")
	ErrInvalidParentLink            = InvalidError("invalid parent link")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidRate                  = InvalidError("invalid rate")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyNotFound                  = NotFoundError("key not found")
	ErrKeysNotOrdered               = InvalidError("keys not ordered")
	ErrMissingArguments             = LengthError("missing arguments")
	ErrMissingListenAddress         = LengthError("missing listen address")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNodeLimitReached             = LimitError("node limit reached")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrPrivateKeyFileAlreadyExists  = ExistsError("private key file already exists")
	ErrPrivateKeyFileNotFound       = NotFoundError("private key file not found")
	ErrRateLimiting                 = LimitError("rate limiting")
	ErrTooManyArguments             = LengthError("too many arguments")
	ErrTreeUnbalanced               = InvalidError("tree unbalanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
