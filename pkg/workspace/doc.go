// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package workspace ties together configuration and the packages file: it
loads both, applies edits, resolves packages against configured
parameters and saves the result.
*/
package workspace
