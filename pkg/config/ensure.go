// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppName     = "vurf"
	FileName    = "config.toml"
	PathEnvName = "VURF_CONFIG"
)

var (
	//go:embed defaults/config.toml
	defaultConfig []byte
	//go:embed defaults/packages.vurf
	defaultPackages []byte
)

type UI interface {
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
}

// DefaultPath returns the config file location: $VURF_CONFIG if set,
// otherwise config.toml in the user's config directory.
func DefaultPath() (string, error) {
	if path := os.Getenv(PathEnvName); len(path) > 0 {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("Determining config directory: %s", err)
	}
	return filepath.Join(dir, AppName, FileName), nil
}

// Ensure loads the config at path, first creating default config and
// packages files if they do not exist.
func Ensure(path string, ui UI) (*Config, error) {
	created, err := writeIfMissing(path, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("Creating default config: %s", err)
	}
	if created {
		ui.Infof("Config file not found, created default config %s", path)
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	pkgsPath, err := cfg.PackagesPath()
	if err != nil {
		return nil, err
	}

	created, err = writeIfMissing(pkgsPath, defaultPackages)
	if err != nil {
		return nil, fmt.Errorf("Creating default packages file: %s", err)
	}
	if created {
		ui.Infof("Packages file not found, created default %s (location can be changed in %s)", pkgsPath, path)
	}

	ui.Debugf("config: %s, packages: %s", path, pkgsPath)

	return cfg, nil
}

func writeIfMissing(path string, contents []byte) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}

	err = os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return false, err
	}

	return true, os.WriteFile(path, contents, 0600)
}
