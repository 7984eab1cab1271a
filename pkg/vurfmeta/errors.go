// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

const (
	KindSection = "section"
	KindPackage = "package"
)

// NotFoundError is returned when an operation refers to a section or
// package that does not exist. It is recoverable.
type NotFoundError struct {
	Kind    string
	Name    string
	Section string // set for packages
}

var _ error = &NotFoundError{}

func (e *NotFoundError) Error() string {
	if e.Kind == KindPackage {
		return fmt.Sprintf("Expected to find package '%s' in section '%s'", e.Name, e.Section)
	}
	return fmt.Sprintf("Expected to find %s '%s'", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
