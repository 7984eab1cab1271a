// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfsyntax

import (
	"fmt"

	"carvel.dev/vurf/pkg/filepos"
)

type Token int

const (
	ILLEGAL Token = iota
	EOF
	NEWLINE
	INDENT
	DEDENT

	WITH     // with NAME:
	IF       // if EXPR:
	ELIF     // elif EXPR:
	ELSE     // else:
	PACKAGE  // name or 'quoted name'
	COMMENT  // # text
	ELLIPSIS // ...
)

var tokenNames = [...]string{
	ILLEGAL:  "illegal token",
	EOF:      "end of file",
	NEWLINE:  "newline",
	INDENT:   "indent",
	DEDENT:   "dedent",
	WITH:     "with",
	IF:       "if",
	ELIF:     "elif",
	ELSE:     "else",
	PACKAGE:  "package",
	COMMENT:  "comment",
	ELLIPSIS: "...",
}

func (t Token) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// TokenValue is a scanned token along with its payload.
//
// Text holds the section name for WITH, the guard expression for IF and
// ELIF, the unquoted name for PACKAGE and the text following '#' for COMMENT.
type TokenValue struct {
	Tok   Token
	Text  string
	Quote byte // PACKAGE only: 0, '\'' or '"'
	Pos   *filepos.Position
}

func (v TokenValue) String() string {
	switch v.Tok {
	case WITH, IF, ELIF, PACKAGE:
		return fmt.Sprintf("%s %q", v.Tok, v.Text)
	case COMMENT:
		return fmt.Sprintf("%s %q", v.Tok, "#"+v.Text)
	default:
		return v.Tok.String()
	}
}
