// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Host gives guard helpers access to the environment.
type Host interface {
	LookupEnv(name string) (string, bool)
	Stat(path string) (fs.FileInfo, error)
	UserHomeDir() (string, error)
}

// OSHost is backed by the running process.
type OSHost struct{}

var _ Host = OSHost{}

func (OSHost) LookupEnv(name string) (string, bool)  { return os.LookupEnv(name) }
func (OSHost) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }
func (OSHost) UserHomeDir() (string, error)          { return os.UserHomeDir() }

// ExpandHome replaces a leading "~" with the home directory of host.
func ExpandHome(host Host, path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := host.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
