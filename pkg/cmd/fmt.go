// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

type PrintOptions struct {
	vurf *VurfOptions
}

func NewPrintOptions(vurf *VurfOptions) *PrintOptions {
	return &PrintOptions{vurf: vurf}
}

func NewPrintCmd(o *PrintOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print formatted packages file",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
}

func (o *PrintOptions) Run() error {
	ui := o.vurf.UI()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	ui.Printf("%s", ws.Format())
	return nil
}

type FormatOptions struct {
	vurf *VurfOptions
}

func NewFormatOptions(vurf *VurfOptions) *FormatOptions {
	return &FormatOptions{vurf: vurf}
}

func NewFormatCmd(o *FormatOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "format",
		Aliases: []string{"fmt"},
		Short:   "Format packages file in place",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
}

func (o *FormatOptions) Run() error {
	ui := o.vurf.UI()
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s", time.Now().Sub(t1))
	}()

	ws, err := o.vurf.Workspace(ui)
	if err != nil {
		return err
	}

	return ws.Save()
}
