// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"carvel.dev/vurf/pkg/cmd/ui"
	"carvel.dev/vurf/pkg/config"
	"carvel.dev/vurf/pkg/runner"
	"carvel.dev/vurf/pkg/workspace"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const SectionEnvName = "VURF_SECTION"

// VurfOptions hold flags shared by all commands.
type VurfOptions struct {
	Quiet      bool
	Debug      bool
	ConfigPath string

	// Stdin, Stdout and Stderr default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewDefaultVurfOptions() *VurfOptions {
	return &VurfOptions{}
}

func (o *VurfOptions) Set(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&o.Quiet, "quiet", "q", false, "Don't produce unnecessary output")
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "",
		fmt.Sprintf("Config file path (defaults to $%s, then the user config directory)", config.PathEnvName))
}

func (o *VurfOptions) UI() ui.TTY {
	return ui.NewCustomWriterTTY(o.Debug, o.Quiet, o.Stdout, o.Stderr)
}

func (o *VurfOptions) ResolvedConfigPath() (string, error) {
	if len(o.ConfigPath) > 0 {
		return o.ConfigPath, nil
	}
	return config.DefaultPath()
}

func (o *VurfOptions) Workspace(ui ui.UI) (*workspace.Workspace, error) {
	path, err := o.ResolvedConfigPath()
	if err != nil {
		return nil, err
	}
	return workspace.Load(path, ui)
}

func (o *VurfOptions) Runner(ui ui.UI, dryRun bool) *runner.Runner {
	return runner.NewRunner(runner.Opts{
		Stdin:  o.Stdin,
		Stdout: o.Stdout,
		Stderr: o.Stderr,
		DryRun: dryRun,
	}, ui)
}

// SectionFlag is -s/--section. An unset flag resolves to $VURF_SECTION.
type SectionFlag struct {
	value string
}

var _ pflag.Value = &SectionFlag{}
var _ cobrautil.ResolvableFlag = &SectionFlag{}

func (s *SectionFlag) AddTo(cmd *cobra.Command, desc string) {
	cmd.Flags().VarP(s, "section", "s", fmt.Sprintf("%s (reads $%s)", desc, SectionEnvName))
}

func (s *SectionFlag) Set(val string) error {
	s.value = val
	return nil
}

func (s *SectionFlag) String() string { return s.value }
func (s *SectionFlag) Type() string   { return "string" }
func (s *SectionFlag) Value() string  { return s.value }

func (s *SectionFlag) Resolve() error {
	if len(s.value) == 0 {
		s.value = os.Getenv(SectionEnvName)
	}
	return nil
}

// ExitError terminates the process with Code without printing an error.
type ExitError struct {
	Code int
}

var _ error = ExitError{}

func (e ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }
