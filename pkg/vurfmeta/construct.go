// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta

import (
	"fmt"

	"carvel.dev/vurf/pkg/filepos"
	"carvel.dev/vurf/pkg/vurfsyntax"
)

// Parse parses and validates a packages document.
func Parse(data []byte, associatedName string) (*Document, error) {
	file, err := vurfsyntax.NewParser().ParseBytes(data, associatedName)
	if err != nil {
		return nil, err
	}

	doc := NewDocumentFromSyntax(file)

	err = doc.Validate()
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// NewDocumentFromSyntax maps a concrete syntax tree one-to-one onto nodes.
func NewDocumentFromSyntax(file *vurfsyntax.File) *Document {
	doc := &Document{Position: positionOfFile(file)}
	for _, stmt := range file.Stmts {
		doc.Items = append(doc.Items, convertStmt(stmt))
	}
	return doc
}

func convertStmt(stmt vurfsyntax.Stmt) Node {
	switch typedStmt := stmt.(type) {
	case *vurfsyntax.WithStmt:
		return &Section{Name: typedStmt.Name, Children: convertStmts(typedStmt.Body), Position: typedStmt.Pos}

	case *vurfsyntax.IfStmt:
		node := &If{Guard: typedStmt.Cond, Children: convertStmts(typedStmt.Body), Position: typedStmt.Pos}
		for _, elif := range typedStmt.Elifs {
			node.Elifs = append(node.Elifs, convertStmt(elif).(*Elif))
		}
		if typedStmt.Else != nil {
			node.Else = convertStmt(typedStmt.Else).(*Else)
		}
		return node

	case *vurfsyntax.ElifStmt:
		return &Elif{Guard: typedStmt.Cond, Children: convertStmts(typedStmt.Body), Position: typedStmt.Pos}

	case *vurfsyntax.ElseStmt:
		return &Else{Children: convertStmts(typedStmt.Body), Position: typedStmt.Pos}

	case *vurfsyntax.PackageStmt:
		return NewPackageFromSyntax(typedStmt)

	case *vurfsyntax.CommentStmt:
		return &Comment{Text: typedStmt.Text, Position: typedStmt.Pos}

	case *vurfsyntax.EllipsisStmt:
		return &Ellipsis{Position: typedStmt.Pos}

	default:
		panic(fmt.Sprintf("Unknown statement type %T", stmt))
	}
}

func convertStmts(stmts []vurfsyntax.Stmt) []Node {
	var result []Node
	for _, stmt := range stmts {
		result = append(result, convertStmt(stmt))
	}
	return result
}

func NewPackageFromSyntax(stmt *vurfsyntax.PackageStmt) *Package {
	pkg := &Package{Name: stmt.Name, Quote: stmt.Quote, Position: stmt.Pos}
	if stmt.Comment != nil {
		pkg.Comment = &Comment{Text: stmt.Comment.Text, Position: stmt.Comment.Pos}
	}
	return pkg
}

func positionOfFile(file *vurfsyntax.File) *filepos.Position {
	pos := filepos.NewPosition(1)
	pos.SetFile(file.Name)
	return pos
}
