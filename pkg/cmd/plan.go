// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carvel.dev/vurf/pkg/plan"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type PlanOptions struct {
	vurf      *VurfOptions
	Section   SectionFlag
	Uninstall bool
	Output    string
}

func NewPlanOptions(vurf *VurfOptions) *PlanOptions {
	return &PlanOptions{vurf: vurf}
}

func NewPlanCmd(o *PlanOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print install (or uninstall) commands without running them",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.Section.AddTo(cmd, "Section to plan (defaults to all sections)")
	cmd.Flags().BoolVar(&o.Uninstall, "uninstall", false, "Plan uninstall commands")
	cmd.Flags().StringVarP(&o.Output, "output", "o", OutputText, "Output format (text, json, yaml)")
	return cmd
}

func (o *PlanOptions) Run() error {
	ui := o.vurf.UI()
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s", time.Now().Sub(t1))
	}()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	action := plan.Install
	if o.Uninstall {
		action = plan.Uninstall
	}

	cmds, err := ws.Plan(o.Section.Value(), action)
	if err != nil {
		return err
	}

	out, err := formatCommands(cmds, o.Output)
	if err != nil {
		return err
	}

	ui.Printf("%s", out)
	return nil
}

func formatCommands(cmds []plan.Command, format string) (string, error) {
	switch format {
	case OutputText:
		var out string
		for _, line := range plan.Lines(cmds) {
			out += line + "\n"
		}
		return out, nil

	case OutputJSON:
		if cmds == nil {
			cmds = []plan.Command{}
		}
		bs, err := json.MarshalIndent(cmds, "", "  ")
		if err != nil {
			return "", err
		}
		return string(bs) + "\n", nil

	case OutputYAML:
		if cmds == nil {
			cmds = []plan.Command{}
		}
		bs, err := yaml.Marshal(cmds)
		if err != nil {
			return "", err
		}
		return string(bs), nil

	default:
		return "", fmt.Errorf("Unknown output format '%s' (expected one of: %s, %s, %s)",
			format, OutputText, OutputJSON, OutputYAML)
	}
}

type InstallOptions struct {
	vurf    *VurfOptions
	action  plan.Action
	Section SectionFlag
	DryRun  bool
}

func NewInstallOptions(vurf *VurfOptions) *InstallOptions {
	return &InstallOptions{vurf: vurf, action: plan.Install}
}

func NewUninstallOptions(vurf *VurfOptions) *InstallOptions {
	return &InstallOptions{vurf: vurf, action: plan.Uninstall}
}

func NewInstallCmd(o *InstallOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install packages whose conditions hold",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Context()) },
	}
	o.set(cmd)
	return cmd
}

func NewUninstallCmd(o *InstallOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Uninstall packages whose conditions hold",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Context()) },
	}
	o.set(cmd)
	return cmd
}

func (o *InstallOptions) set(cmd *cobra.Command) {
	o.Section.AddTo(cmd, "Section to "+string(o.action)+" (defaults to all sections)")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "Print commands instead of running them")
}

func (o *InstallOptions) Run(ctx context.Context) error {
	ui := o.vurf.UI()
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s", time.Now().Sub(t1))
	}()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	r := o.vurf.Runner(ui, o.DryRun)

	if o.action == plan.Uninstall {
		return ws.Uninstall(ctx, o.Section.Value(), r)
	}
	return ws.Install(ctx, o.Section.Value(), r)
}
