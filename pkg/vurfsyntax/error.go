// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfsyntax

import (
	"fmt"

	"carvel.dev/vurf/pkg/filepos"
)

// SyntaxError is returned for malformed indentation, unexpected tokens and
// unterminated blocks. Parsing does not attempt to recover from it.
type SyntaxError struct {
	Position *filepos.Position
	Msg      string
}

var _ error = &SyntaxError{}

func NewSyntaxError(pos *filepos.Position, msg string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Position: pos, Msg: fmt.Sprintf(msg, args...)}
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at %s: %s", e.Position.AsString(), e.Msg)
	if e.Position.IsKnown() && len(e.Position.GetLine()) > 0 {
		msg += fmt.Sprintf("\n%s | %s", e.Position.As4DigitString(), e.Position.GetLine())
	}
	return msg
}
