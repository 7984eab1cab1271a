// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui separates command output (stdout) from leveled diagnostics
(stderr) so that output stays usable in pipes.
*/
package ui
