// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"

	"carvel.dev/vurf/pkg/filepos"
)

// EvaluationError aborts the resolution that triggered it.
type EvaluationError struct {
	Guard    string
	Position *filepos.Position
	Msg      string
	Err      error
}

var _ error = &EvaluationError{}

func (e *EvaluationError) Error() string {
	msg := fmt.Sprintf("Evaluating guard '%s'", e.Guard)
	if e.Position.IsKnown() {
		msg += fmt.Sprintf(" (%s)", e.Position.AsString())
	}
	msg += ": " + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EvaluationError) Unwrap() error { return e.Err }
