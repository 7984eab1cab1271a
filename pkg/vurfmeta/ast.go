// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta

import (
	"carvel.dev/vurf/pkg/filepos"
)

// Node is one of *Comment, *Package, *Section, *If, *Elif, *Else or *Ellipsis.
type Node interface {
	GetPosition() *filepos.Position
	// GetData returns the kind specific payload: section name, guard
	// expression, package name (as written) or comment text.
	GetData() string
	GetChildren() []Node

	DeepCopyAsNode() Node

	sealed()
}

var _ = []Node{&Comment{}, &Package{}, &Section{}, &If{}, &Elif{}, &Else{}, &Ellipsis{}}

// Document is the root of a packages file. Items are *Section's and
// top-level *Comment's in the order they appear.
type Document struct {
	Items    []Node
	Position *filepos.Position
}

// Section is a "with <name>:" block.
type Section struct {
	Name     string
	Children []Node
	Position *filepos.Position
}

// Package is a package declaration. Name is always stored unquoted;
// Quote records how it was written: 0, a single or a double quote.
type Package struct {
	Name     string
	Quote    byte
	Comment  *Comment // trailing comment on the same line
	Position *filepos.Position
}

type Comment struct {
	Text     string // without leading '#'
	Position *filepos.Position
}

// Ellipsis marks a block that has no other children.
type Ellipsis struct {
	Position *filepos.Position
}

// If is the head of a conditional chain. Only one of its branches
// (its own body, one of Elifs or Else) contributes packages.
type If struct {
	Guard    string
	Children []Node
	Elifs    []*Elif
	Else     *Else
	Position *filepos.Position
}

type Elif struct {
	Guard    string
	Children []Node
	Position *filepos.Position
}

type Else struct {
	Children []Node
	Position *filepos.Position
}
