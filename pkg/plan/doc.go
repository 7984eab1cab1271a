// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package plan turns resolved package lists into package manager command
lines, using the install/uninstall templates configured per section.
*/
package plan
