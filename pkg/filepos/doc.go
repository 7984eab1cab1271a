// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually the
packages file), a line and optionally a column within that source.

Positions are crucial when reporting syntax errors to the user. It is often
even more useful to share the actual source line as well. For this reason
Position also carries a copy of the source line at the Position.

Nodes created programmatically (e.g. by "vurf add") do not point within a
file. The zero-value of Position (see NewUnknownPosition()) represents this
case.
*/
package filepos
