// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package spell suggests a likely intended word from a set of known words.

In the context of vurf, this is useful for errors that involve misspelled
guard functions or parameters.
*/
package spell
