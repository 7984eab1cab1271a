// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"carvel.dev/vurf/pkg/plan"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
}

// Opts configure how commands are run. Zero values inherit from the
// current process.
type Opts struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
	Env    []string

	// DryRun prints commands instead of running them.
	DryRun bool
}

// Runner executes command lines with an embedded POSIX shell interpreter.
type Runner struct {
	opts Opts
	ui   UI
}

func NewRunner(opts Opts, ui UI) *Runner {
	return &Runner{opts, ui}
}

// CommandError describes the first command that failed.
type CommandError struct {
	Command  plan.Command
	ExitCode int
	Err      error
}

var _ error = &CommandError{}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Running '%s' (section '%s'): %s", e.Command.Line, e.Command.Section, e.Err)
	}
	return fmt.Sprintf("Running '%s' (section '%s'): exit status %d", e.Command.Line, e.Command.Section, e.ExitCode)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Run executes commands one after another and stops at the first failure.
func (r *Runner) Run(ctx context.Context, cmds []plan.Command) error {
	for _, cmd := range cmds {
		if r.opts.DryRun {
			r.ui.Printf("%s\n", cmd.Line)
			continue
		}

		r.ui.Debugf("running: %s", cmd.Line)

		err := r.RunLine(ctx, cmd.Line)
		if err != nil {
			cmdErr := &CommandError{Command: cmd, ExitCode: 1}

			var exitStatus interp.ExitStatus
			if errors.As(err, &exitStatus) {
				cmdErr.ExitCode = int(exitStatus)
			} else {
				cmdErr.Err = err
			}
			return cmdErr
		}
	}
	return nil
}

// RunLine parses and runs a single shell command line.
func (r *Runner) RunLine(ctx context.Context, line string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "command")
	if err != nil {
		return fmt.Errorf("Parsing command: %w", err)
	}

	env := r.opts.Env
	if env == nil {
		env = os.Environ()
	}

	stdin := r.opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := r.opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(stdin, stdout, stderr),
	}
	if len(r.opts.Dir) > 0 {
		opts = append(opts, interp.Dir(r.opts.Dir))
	}

	shell, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("Creating interpreter: %w", err)
	}

	return shell.Run(ctx, prog)
}

// ValidateTemplate checks that a command template is valid shell once
// package names are appended to it.
func ValidateTemplate(tpl string) error {
	_, err := syntax.NewParser().Parse(strings.NewReader(tpl+" pkg"), "template")
	return err
}

// Quote quotes a single argument for use in a command line.
func Quote(arg string) (string, error) {
	return syntax.Quote(arg, syntax.LangBash)
}
