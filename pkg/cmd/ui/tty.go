// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type TTY struct {
	stdout io.Writer
	logger *log.Logger
}

var _ UI = TTY{}

// NewTTY returns a UI over stdout and stderr. Quiet suppresses
// everything on stderr except errors.
func NewTTY(debug, quiet bool) TTY {
	return NewCustomWriterTTY(debug, quiet, os.Stdout, os.Stderr)
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Infof(str string, args ...interface{}) {
	t.logger.Infof(str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	t.logger.Warnf(str, args...)
}

func (t TTY) Debugf(str string, args ...interface{}) {
	t.logger.Debugf(str, args...)
}

// NewCustomWriterTTY is NewTTY over the given writers. Nil writers
// default to the process streams.
func NewCustomWriterTTY(debug, quiet bool, stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	level := log.InfoLevel
	switch {
	case debug:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "vurf", Level: level})

	return TTY{stdout, logger}
}
