// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of vurf.

Packages are layered; each depends on the others only to the degree required.
In the inventory below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

vurf is built into a single command-line tool:

	./cmd/vurf

# Commands

Every command is a thin wrapper over a workspace operation.

	(1) => pkg/cmd => (6)

# The Workspace

A workspace is the pair of files vurf operates on: the config file and the
packages file it points to. It loads both, applies edits and writes the
packages file back.

	(1) => pkg/workspace => (7)
	(2) => pkg/config => (4)

# The Packages Format

Text is scanned into tokens (tracking indentation), parsed into statements
and built into a document tree whose nodes keep their source positions.

	(2) => pkg/vurfsyntax => (1)
	(5) => pkg/vurfmeta => (3)
	(2) => pkg/vurffmt => (1)

# Guards

Conditions on "if" and "elif" are boolean expressions over configured
parameters plus a fixed set of environment and filesystem helpers.

	(3) => pkg/guard => (2)

# Planning and Running

Resolved packages are turned into command lines per section, and command lines
are run with an embedded shell interpreter.

	(3) => pkg/plan => (1)
	(3) => pkg/runner => (1)

# Utilities

	(2) => pkg/cmd/ui => (0)
	(2) => pkg/version => (0)
	(1) => pkg/spell => (0)
	(6) => pkg/filepos => (0)
*/
package pkg
