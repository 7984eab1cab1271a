// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/vurf/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	vurf *VurfOptions
}

func NewVersionOptions(vurf *VurfOptions) *VersionOptions {
	return &VersionOptions{vurf: vurf}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	return cmd
}

func (o *VersionOptions) Run() error {
	o.vurf.UI().Printf("vurf version %s\n", version.Version)

	return nil
}
