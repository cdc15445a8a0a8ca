// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/closestavl/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// DataDirectory - resolve the data directory setting against the
// directory holding the configuration file
//
// "." means the configuration file's directory, blank and "~" are
// rejected and the result must be an existing directory
func DataDirectory(configurationFileName string, setting string) (string, error) {
	if "" == setting || "~" == setting {
		return "", fault.ErrInvalidDirectory
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}
	directory := EnsureAbsolute(filepath.Dir(configurationFileName), setting)

	fileInfo, err := os.Stat(directory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fault.ErrInvalidDirectory
	}
	return directory, nil
}

// PlainFileName - join a file name that must not contain a path
// to a directory
func PlainFileName(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		return EnsureAbsolute(directory, name), nil
	default:
		return "", fault.ErrInvalidFileName
	}
}
