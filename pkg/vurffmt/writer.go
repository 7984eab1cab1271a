// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurffmt

import (
	"fmt"
	"io"
)

type writer struct {
	writer    io.Writer
	lastChunk writerChunk
	anyLines  bool
}

type writerChunk struct {
	Content string
	Indent  string
	Spacer  bool
}

func newWriter(w io.Writer) *writer {
	return &writer{writer: w}
}

// AddContent writes a line. Spacer chunks become a single blank line,
// and only when followed by more content.
func (w *writer) AddContent(chunk writerChunk) {
	defer func() {
		w.lastChunk = chunk
	}()

	if chunk.Spacer {
		return
	}

	if w.lastChunk.Spacer && w.anyLines {
		fmt.Fprintf(w.writer, "\n")
	}

	fmt.Fprintf(w.writer, "%s%s\n", chunk.Indent, chunk.Content)
	w.anyLines = true
}
