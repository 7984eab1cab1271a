// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfsyntax

import (
	"carvel.dev/vurf/pkg/filepos"
)

// File is the concrete syntax tree of a whole packages document.
type File struct {
	Name  string
	Stmts []Stmt
}

// Stmt is one of the statement productions of the grammar.
type Stmt interface {
	Span() *filepos.Position
	stmt()
}

var _ = []Stmt{&WithStmt{}, &IfStmt{}, &ElifStmt{}, &ElseStmt{}, &PackageStmt{}, &CommentStmt{}, &EllipsisStmt{}}

type WithStmt struct {
	Pos  *filepos.Position
	Name string
	Body []Stmt
}

type IfStmt struct {
	Pos   *filepos.Position
	Cond  string
	Body  []Stmt
	Elifs []*ElifStmt
	Else  *ElseStmt
}

type ElifStmt struct {
	Pos  *filepos.Position
	Cond string
	Body []Stmt
}

type ElseStmt struct {
	Pos  *filepos.Position
	Body []Stmt
}

type PackageStmt struct {
	Pos     *filepos.Position
	Name    string
	Quote   byte
	Comment *CommentStmt
}

type CommentStmt struct {
	Pos  *filepos.Position
	Text string
}

type EllipsisStmt struct {
	Pos *filepos.Position
}

func (s *WithStmt) Span() *filepos.Position     { return s.Pos }
func (s *IfStmt) Span() *filepos.Position       { return s.Pos }
func (s *ElifStmt) Span() *filepos.Position     { return s.Pos }
func (s *ElseStmt) Span() *filepos.Position     { return s.Pos }
func (s *PackageStmt) Span() *filepos.Position  { return s.Pos }
func (s *CommentStmt) Span() *filepos.Position  { return s.Pos }
func (s *EllipsisStmt) Span() *filepos.Position { return s.Pos }

func (s *WithStmt) stmt()     {}
func (s *IfStmt) stmt()       {}
func (s *ElifStmt) stmt()     {}
func (s *ElseStmt) stmt()     {}
func (s *PackageStmt) stmt()  {}
func (s *CommentStmt) stmt()  {}
func (s *EllipsisStmt) stmt() {}
