// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta

import (
	"carvel.dev/vurf/pkg/filepos"
)

func (n *Section) GetPosition() *filepos.Position  { return n.Position }
func (n *Package) GetPosition() *filepos.Position  { return n.Position }
func (n *Comment) GetPosition() *filepos.Position  { return n.Position }
func (n *Ellipsis) GetPosition() *filepos.Position { return n.Position }
func (n *If) GetPosition() *filepos.Position       { return n.Position }
func (n *Elif) GetPosition() *filepos.Position     { return n.Position }
func (n *Else) GetPosition() *filepos.Position     { return n.Position }

func (n *Section) GetData() string  { return n.Name }
func (n *Package) GetData() string  { return n.DisplayName() }
func (n *Comment) GetData() string  { return n.Text }
func (n *Ellipsis) GetData() string { return "..." }
func (n *If) GetData() string       { return n.Guard }
func (n *Elif) GetData() string     { return n.Guard }
func (n *Else) GetData() string     { return "" }

func (n *Section) GetChildren() []Node  { return n.Children }
func (n *Package) GetChildren() []Node  { return nil }
func (n *Comment) GetChildren() []Node  { return nil }
func (n *Ellipsis) GetChildren() []Node { return nil }
func (n *If) GetChildren() []Node       { return n.Children }
func (n *Elif) GetChildren() []Node     { return n.Children }
func (n *Else) GetChildren() []Node     { return n.Children }

func (n *Section) sealed()  {}
func (n *Package) sealed()  {}
func (n *Comment) sealed()  {}
func (n *Ellipsis) sealed() {}
func (n *If) sealed()       {}
func (n *Elif) sealed()     {}
func (n *Else) sealed()     {}

// DisplayName returns the package name the way it is written in the
// document, including quotes.
func (n *Package) DisplayName() string {
	if n.Quote == 0 {
		return n.Name
	}
	return string(n.Quote) + n.Name + string(n.Quote)
}

// Equal reports structural equality of packages: only unquoted names matter.
func (n *Package) Equal(other *Package) bool {
	return other != nil && n.Name == other.Name
}

// Branches returns the If itself followed by its Elif's and Else (if any).
func (n *If) Branches() []Node {
	result := []Node{n}
	for _, elif := range n.Elifs {
		result = append(result, elif)
	}
	if n.Else != nil {
		result = append(result, n.Else)
	}
	return result
}

// block is a node owning a mutable list of children.
type block interface {
	Node
	setChildren([]Node)
}

var _ = []block{&Section{}, &If{}, &Elif{}, &Else{}}

func (n *Section) setChildren(children []Node) { n.Children = children }
func (n *If) setChildren(children []Node)      { n.Children = children }
func (n *Elif) setChildren(children []Node)    { n.Children = children }
func (n *Else) setChildren(children []Node)    { n.Children = children }
