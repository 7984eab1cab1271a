// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/vurf/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

func NewDefaultVurfCmd() *cobra.Command {
	return NewVurfCmd(NewDefaultVurfOptions())
}

func NewVurfCmd(o *VurfOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vurf",
		Version: version.Version,
		Short:   "vurf manages lists of packages to install",
		Long: `vurf manages lists of packages to install.

Packages are declared in a packages file grouped into sections, optionally
under conditions. Each section maps to install and uninstall commands
configured in the config file.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	o.Set(cmd)

	cmd.AddCommand(NewAddCmd(NewAddOptions(o)))
	cmd.AddCommand(NewRemoveCmd(NewRemoveOptions(o)))
	cmd.AddCommand(NewDefaultCmd(NewDefaultOptions(o)))
	cmd.AddCommand(NewHasCmd(NewHasOptions(o)))
	cmd.AddCommand(NewWhichCmd(NewWhichOptions(o)))
	cmd.AddCommand(NewPackagesCmd(NewPackagesOptions(o)))
	cmd.AddCommand(NewSectionsCmd(NewSectionsOptions(o)))
	cmd.AddCommand(NewAddSectionCmd(NewAddSectionOptions(o)))
	cmd.AddCommand(NewRemoveSectionCmd(NewRemoveSectionOptions(o)))
	cmd.AddCommand(NewPlanCmd(NewPlanOptions(o)))
	cmd.AddCommand(NewInstallCmd(NewInstallOptions(o)))
	cmd.AddCommand(NewUninstallCmd(NewUninstallOptions(o)))
	cmd.AddCommand(NewPrintCmd(NewPrintOptions(o)))
	cmd.AddCommand(NewFormatCmd(NewFormatOptions(o)))
	cmd.AddCommand(NewEditCmd(NewEditOptions(o)))
	cmd.AddCommand(NewConfigCmd(NewConfigOptions(o)))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions(o)))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		disallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

// disallowExtraArgs only applies to commands that do not declare
// positional args themselves.
func disallowExtraArgs(cmd *cobra.Command) {
	if cmd.Args == nil {
		cobrautil.DisallowExtraArgs(cmd)
	}
}
