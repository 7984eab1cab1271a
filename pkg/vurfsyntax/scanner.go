// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfsyntax

import (
	"strings"

	"carvel.dev/vurf/pkg/filepos"
)

const (
	// IndentWidth is the number of columns making up one level of indentation.
	IndentWidth = 2
	tabWidth    = 2

	ellipsis = "..."
)

// Scanner turns packages format text into tokens, one logical line at a time.
// Leading whitespace is tracked on a stack of open blocks; growing it emits
// INDENT and shrinking it emits one DEDENT per closed block.
type Scanner struct {
	associatedName string
	lines          []string
	lineIdx        int

	indents []int
	pending []TokenValue
	done    bool
}

func NewScanner(data []byte, associatedName string) *Scanner {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	lines := strings.Split(text, "\n")
	return &Scanner{
		associatedName: associatedName,
		lines:          lines[:len(lines)-1], // drop piece after final newline
		indents:        []int{0},
	}
}

// Next returns the next token. After EOF is returned, EOF is returned forever.
func (s *Scanner) Next() (TokenValue, error) {
	for len(s.pending) == 0 {
		if s.done {
			return TokenValue{Tok: EOF, Pos: s.eofPosition()}, nil
		}
		err := s.scanLine()
		if err != nil {
			return TokenValue{Tok: ILLEGAL}, err
		}
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, nil
}

// All scans the remaining input.
func (s *Scanner) All() ([]TokenValue, error) {
	var result []TokenValue
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		result = append(result, tok)
		if tok.Tok == EOF {
			return result, nil
		}
	}
}

func (s *Scanner) scanLine() error {
	for s.lineIdx < len(s.lines) {
		lineNum := s.lineIdx + 1
		raw := s.lines[s.lineIdx]
		s.lineIdx++

		content := strings.TrimRight(raw, " \t\r")
		if len(strings.TrimLeft(content, " \t")) == 0 {
			continue
		}

		indent, offset := measureIndent(content)
		if indent%IndentWidth != 0 {
			return NewSyntaxError(s.newPosition(lineNum, offset+1, raw),
				"indentation of %d columns is not a multiple of %d", indent, IndentWidth)
		}

		pos := s.newPosition(lineNum, offset+1, raw)

		err := s.trackIndent(indent, pos)
		if err != nil {
			return err
		}

		toks, err := scanStatement(content[offset:], offset, func(col int) *filepos.Position {
			return s.newPosition(lineNum, col, raw)
		})
		if err != nil {
			return err
		}

		s.pending = append(s.pending, toks...)
		s.pending = append(s.pending, TokenValue{Tok: NEWLINE, Pos: s.newPosition(lineNum, len(content)+1, raw)})
		return nil
	}

	// close all open blocks at the end of input
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.pending = append(s.pending, TokenValue{Tok: DEDENT, Pos: s.eofPosition()})
	}
	s.pending = append(s.pending, TokenValue{Tok: EOF, Pos: s.eofPosition()})
	s.done = true
	return nil
}

func (s *Scanner) trackIndent(indent int, pos *filepos.Position) error {
	top := s.indents[len(s.indents)-1]

	switch {
	case indent > top:
		s.indents = append(s.indents, indent)
		s.pending = append(s.pending, TokenValue{Tok: INDENT, Pos: pos})

	case indent < top:
		for indent < s.indents[len(s.indents)-1] {
			s.indents = s.indents[:len(s.indents)-1]
			s.pending = append(s.pending, TokenValue{Tok: DEDENT, Pos: pos})
		}
		if indent != s.indents[len(s.indents)-1] {
			return NewSyntaxError(pos, "unindent to column %d does not match any outer indentation level", indent)
		}
	}
	return nil
}

func (s *Scanner) newPosition(lineNum, col int, line string) *filepos.Position {
	pos := filepos.NewPositionWithColumn(lineNum, col)
	pos.SetFile(s.associatedName)
	pos.SetLine(line)
	return pos
}

func (s *Scanner) eofPosition() *filepos.Position {
	pos := filepos.NewPosition(len(s.lines) + 1)
	pos.SetFile(s.associatedName)
	return pos
}

// measureIndent returns the width of leading whitespace in columns and bytes.
func measureIndent(line string) (int, int) {
	cols := 0
	for i, ch := range line {
		switch ch {
		case ' ':
			cols++
		case '\t':
			cols += tabWidth
		default:
			return cols, i
		}
	}
	return cols, len(line)
}

// scanStatement tokenizes a single line with indentation and trailing
// whitespace already removed. offset is the byte offset of stmt within its line.
func scanStatement(stmt string, offset int, posAt func(col int) *filepos.Position) ([]TokenValue, error) {
	pos := posAt(offset + 1)

	if strings.HasPrefix(stmt, "#") {
		return []TokenValue{{Tok: COMMENT, Text: stmt[1:], Pos: pos}}, nil
	}

	keyword, rest := splitKeyword(stmt)

	switch keyword {
	case "with":
		name, err := blockHeader(keyword, rest, pos)
		if err != nil {
			return nil, err
		}
		if len(name) == 0 {
			return nil, NewSyntaxError(pos, "expected section name after 'with'")
		}
		if err := ValidateSectionName(name); err != nil {
			return nil, NewSyntaxError(pos, "%s", err)
		}
		return []TokenValue{{Tok: WITH, Text: name, Pos: pos}}, nil

	case "if", "elif":
		expr, err := blockHeader(keyword, rest, pos)
		if err != nil {
			return nil, err
		}
		if len(expr) == 0 {
			return nil, NewSyntaxError(pos, "expected guard expression after '%s'", keyword)
		}
		tok := IF
		if keyword == "elif" {
			tok = ELIF
		}
		return []TokenValue{{Tok: tok, Text: expr, Pos: pos}}, nil

	case "else":
		if strings.TrimSpace(rest) != ":" {
			return nil, NewSyntaxError(pos, "expected ':' after 'else'")
		}
		return []TokenValue{{Tok: ELSE, Pos: pos}}, nil

	case ellipsis:
		if len(strings.TrimSpace(rest)) > 0 {
			return nil, NewSyntaxError(pos, "unexpected text after '...'")
		}
		return []TokenValue{{Tok: ELLIPSIS, Pos: pos}}, nil
	}

	return scanPackage(stmt, offset, posAt)
}

func scanPackage(stmt string, offset int, posAt func(col int) *filepos.Position) ([]TokenValue, error) {
	pos := posAt(offset + 1)

	var name, rest string
	var quote byte

	if stmt[0] == '"' || stmt[0] == '\'' {
		quote = stmt[0]
		end := strings.IndexByte(stmt[1:], quote)
		if end < 0 {
			return nil, NewSyntaxError(pos, "missing closing %c for quoted package name", quote)
		}
		name = stmt[1 : end+1]
		rest = stmt[end+2:]
		if len(strings.TrimSpace(name)) == 0 {
			return nil, NewSyntaxError(pos, "quoted package name must not be empty")
		}
		if len(rest) > 0 && rest[0] != ' ' && rest[0] != '\t' {
			return nil, NewSyntaxError(posAt(offset+end+3), "expected whitespace after quoted package name")
		}
	} else {
		end := strings.IndexAny(stmt, " \t")
		if end < 0 {
			end = len(stmt)
		}
		name = stmt[:end]
		rest = stmt[end:]
	}

	toks := []TokenValue{{Tok: PACKAGE, Text: name, Quote: quote, Pos: pos}}

	trimmedRest := strings.TrimLeft(rest, " \t")
	if len(trimmedRest) == 0 {
		return toks, nil
	}

	commentCol := offset + len(stmt) - len(trimmedRest) + 1
	if trimmedRest[0] != '#' {
		return nil, NewSyntaxError(posAt(commentCol),
			"unexpected text %q after package %q (quote names that contain whitespace)", trimmedRest, name)
	}

	return append(toks, TokenValue{Tok: COMMENT, Text: trimmedRest[1:], Pos: posAt(commentCol)}), nil
}

// splitKeyword separates the leading word of a statement. Words end at
// whitespace, '(' or ':' so that "if(x):" and "else:" are recognized.
func splitKeyword(stmt string) (string, string) {
	end := strings.IndexAny(stmt, " \t(:")
	if end < 0 {
		return stmt, ""
	}
	return stmt[:end], stmt[end:]
}

func blockHeader(keyword, rest string, pos *filepos.Position) (string, error) {
	if !strings.HasSuffix(rest, ":") {
		return "", NewSyntaxError(pos, "expected ':' at the end of '%s' statement", keyword)
	}
	return strings.TrimSpace(strings.TrimSuffix(rest, ":")), nil
}
