// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type AddOptions struct {
	vurf    *VurfOptions
	Section SectionFlag
}

func NewAddOptions(vurf *VurfOptions) *AddOptions {
	return &AddOptions{vurf: vurf}
}

func NewAddCmd(o *AddOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add PKG...",
		Short: "Add packages to a section",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
	o.Section.AddTo(cmd, "Section to add to (defaults to 'default_section' from config)")
	return cmd
}

func (o *AddOptions) Run(pkgs []string) error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	added, err := ws.Add(o.Section.Value(), pkgs...)
	if err != nil {
		return err
	}

	for _, pkg := range added {
		ui.Infof("Added '%s'", pkg)
	}

	return ws.Save()
}

type RemoveOptions struct {
	vurf    *VurfOptions
	Section SectionFlag
}

func NewRemoveOptions(vurf *VurfOptions) *RemoveOptions {
	return &RemoveOptions{vurf: vurf}
}

func NewRemoveCmd(o *RemoveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove PKG...",
		Aliases: []string{"rm"},
		Short:   "Remove packages from a section",
		Args:    cobra.MinimumNArgs(1),
		RunE:    func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
	o.Section.AddTo(cmd, "Section to remove from (defaults to 'default_section' from config)")
	return cmd
}

func (o *RemoveOptions) Run(pkgs []string) error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	err = ws.Remove(o.Section.Value(), pkgs...)
	if err != nil {
		return err
	}

	return ws.Save()
}

type DefaultOptions struct {
	vurf *VurfOptions
}

func NewDefaultOptions(vurf *VurfOptions) *DefaultOptions {
	return &DefaultOptions{vurf: vurf}
}

func NewDefaultCmd(o *DefaultOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print default section",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
}

func (o *DefaultOptions) Run() error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	ui.Printf("%s\n", ws.DefaultSection())
	return nil
}

type HasOptions struct {
	vurf    *VurfOptions
	Section SectionFlag
}

func NewHasOptions(vurf *VurfOptions) *HasOptions {
	return &HasOptions{vurf: vurf}
}

func NewHasCmd(o *HasOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "has PKG",
		Short: "Exit with status 1 if section does not contain package",
		Args:  cobra.ExactArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args[0]) },
	}
	o.Section.AddTo(cmd, "Section to check (defaults to 'default_section' from config)")
	return cmd
}

func (o *HasOptions) Run(pkg string) error {
	ws, err := o.vurf.Workspace(o.vurf.UI())
	if err != nil {
		return err
	}

	if !ws.Has(o.Section.Value(), pkg) {
		return ExitError{Code: 1}
	}
	return nil
}

type WhichOptions struct {
	vurf *VurfOptions
}

func NewWhichOptions(vurf *VurfOptions) *WhichOptions {
	return &WhichOptions{vurf: vurf}
}

func NewWhichCmd(o *WhichOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "which PKG",
		Short: "Print section containing package",
		Args:  cobra.ExactArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args[0]) },
	}
}

func (o *WhichOptions) Run(pkg string) error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	section, found := ws.Which(pkg)
	if !found {
		return fmt.Errorf("Expected to find package '%s' in any section", pkg)
	}

	ui.Printf("%s\n", section)
	return nil
}

type PackagesOptions struct {
	vurf      *VurfOptions
	Section   SectionFlag
	Separator string
}

func NewPackagesOptions(vurf *VurfOptions) *PackagesOptions {
	return &PackagesOptions{vurf: vurf}
}

func NewPackagesCmd(o *PackagesOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packages",
		Aliases: []string{"ls"},
		Short:   "Print packages whose conditions hold",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.Section.AddTo(cmd, "Section to list (defaults to all sections)")
	cmd.Flags().StringVar(&o.Separator, "separator", "\n", "Package separator")
	return cmd
}

func (o *PackagesOptions) Run() error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	pkgs, err := ws.Packages(o.Section.Value())
	if err != nil {
		return err
	}

	ui.Printf("%s\n", strings.Join(pkgs, o.Separator))
	return nil
}

type SectionsOptions struct {
	vurf      *VurfOptions
	Separator string
}

func NewSectionsOptions(vurf *VurfOptions) *SectionsOptions {
	return &SectionsOptions{vurf: vurf}
}

func NewSectionsCmd(o *SectionsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Print sections",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.Separator, "separator", "\n", "Section separator")
	return cmd
}

func (o *SectionsOptions) Run() error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	ui.Printf("%s\n", strings.Join(ws.Sections(), o.Separator))
	return nil
}
