// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

// UI is implemented by TTY. Printf is command output (stdout); the
// rest are leveled diagnostics (stderr) and honor debug and quiet modes.
type UI interface {
	Printf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
}
