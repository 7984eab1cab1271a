// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

type AddSectionOptions struct {
	vurf *VurfOptions
}

func NewAddSectionOptions(vurf *VurfOptions) *AddSectionOptions {
	return &AddSectionOptions{vurf: vurf}
}

func NewAddSectionCmd(o *AddSectionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-section NAME",
		Short: "Add an empty section",
		Args:  cobra.ExactArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args[0]) },
	}
}

func (o *AddSectionOptions) Run(name string) error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	err = ws.AddSection(name)
	if err != nil {
		return err
	}

	ui.Infof("Added section '%s'", name)

	return ws.Save()
}

type RemoveSectionOptions struct {
	vurf *VurfOptions
}

func NewRemoveSectionOptions(vurf *VurfOptions) *RemoveSectionOptions {
	return &RemoveSectionOptions{vurf: vurf}
}

func NewRemoveSectionCmd(o *RemoveSectionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-section NAME",
		Short: "Remove a section with all its packages",
		Args:  cobra.ExactArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args[0]) },
	}
}

func (o *RemoveSectionOptions) Run(name string) error {
	ws, err := o.vurf.Workspace(o.vurf.UI())
	if err != nil {
		return err
	}

	err = ws.RemoveSection(name)
	if err != nil {
		return err
	}

	return ws.Save()
}
