// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"

	"carvel.dev/vurf/pkg/config"
	"carvel.dev/vurf/pkg/runner"
	"github.com/spf13/cobra"
)

const editorCmd = "${VISUAL:-${EDITOR:-vi}}"

type EditOptions struct {
	vurf *VurfOptions
}

func NewEditOptions(vurf *VurfOptions) *EditOptions {
	return &EditOptions{vurf: vurf}
}

func NewEditCmd(o *EditOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open packages file in $VISUAL or $EDITOR",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Context()) },
	}
}

func (o *EditOptions) Run(ctx context.Context) error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	return openEditor(ctx, o.vurf.Runner(ui, false), ws.PackagesPath())
}

type ConfigOptions struct {
	vurf *VurfOptions
}

func NewConfigOptions(vurf *VurfOptions) *ConfigOptions {
	return &ConfigOptions{vurf: vurf}
}

func NewConfigCmd(o *ConfigOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Open config file in $VISUAL or $EDITOR",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Context()) },
	}
}

func (o *ConfigOptions) Run(ctx context.Context) error {
	ui := o.vurf.UI()

	path, err := o.vurf.ResolvedConfigPath()
	if err != nil {
		return err
	}

	// Config may be invalid already; only make sure the file exists.
	_, err = config.Ensure(path, ui)
	if err != nil {
		ui.Warnf("%s", err)
	}

	return openEditor(ctx, o.vurf.Runner(ui, false), path)
}

func openEditor(ctx context.Context, r *runner.Runner, path string) error {
	quoted, err := runner.Quote(path)
	if err != nil {
		return err
	}
	return r.RunLine(ctx, editorCmd+" "+quoted)
}
