// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to vurf's "commands": instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for
executing vurf).

For a list of commands run:

	$ vurf help

Commands that take a section (-s/--section) fall back to the VURF_SECTION
environment variable when the flag is not given.
*/
package cmd
