// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads vurf's TOML configuration and bootstraps default
configuration and packages files on first use.
*/
package config
