// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package vurffmt renders a vurfmeta.Document back into the packages format.

Output is normalized: two spaces per nesting level, comments after a
package separated by two spaces, one blank line between sections.
*/
package vurffmt
