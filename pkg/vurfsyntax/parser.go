// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfsyntax

import (
	"fmt"
	"strings"

	"carvel.dev/vurf/pkg/filepos"
)

type Parser struct {
	scanner *Scanner
	tok     TokenValue // lookahead
}

func NewParser() *Parser {
	return &Parser{}
}

// ParseBytes parses a whole packages document. associatedName is used in
// positions of reported errors (typically the file path).
func (p *Parser) ParseBytes(data []byte, associatedName string) (*File, error) {
	p.scanner = NewScanner(data, associatedName)

	err := p.next()
	if err != nil {
		return nil, err
	}

	file := &File{Name: associatedName}

	for p.tok.Tok != EOF {
		switch p.tok.Tok {
		case WITH:
			stmt, err := p.parseWith()
			if err != nil {
				return nil, err
			}
			file.Stmts = append(file.Stmts, stmt)

		case COMMENT:
			stmt, err := p.parseComment()
			if err != nil {
				return nil, err
			}
			file.Stmts = append(file.Stmts, stmt)

		case INDENT:
			return nil, NewSyntaxError(p.tok.Pos, "unexpected indentation")

		default:
			return nil, NewSyntaxError(p.tok.Pos, "%s is only allowed inside a 'with' block", p.tok)
		}
	}

	return file, nil
}

func (p *Parser) next() error {
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) expect(tok Token, context string) (TokenValue, error) {
	if p.tok.Tok != tok {
		return TokenValue{}, NewSyntaxError(p.tok.Pos, "expected %s %s, but found %s", tok, context, p.tok)
	}
	found := p.tok
	return found, p.next()
}

func (p *Parser) parseWith() (*WithStmt, error) {
	stmt := &WithStmt{Pos: p.tok.Pos, Name: p.tok.Text}
	err := p.next()
	if err != nil {
		return nil, err
	}
	stmt.Body, err = p.parseBlock(fmt.Sprintf("'with %s:'", stmt.Name), stmt.Pos)
	return stmt, err
}

func (p *Parser) parseIf() (*IfStmt, error) {
	stmt := &IfStmt{Pos: p.tok.Pos, Cond: p.tok.Text}
	err := p.next()
	if err != nil {
		return nil, err
	}
	stmt.Body, err = p.parseBlock(fmt.Sprintf("'if %s:'", stmt.Cond), stmt.Pos)
	if err != nil {
		return nil, err
	}

	for p.tok.Tok == ELIF {
		elif := &ElifStmt{Pos: p.tok.Pos, Cond: p.tok.Text}
		err = p.next()
		if err != nil {
			return nil, err
		}
		elif.Body, err = p.parseBlock(fmt.Sprintf("'elif %s:'", elif.Cond), elif.Pos)
		if err != nil {
			return nil, err
		}
		stmt.Elifs = append(stmt.Elifs, elif)
	}

	if p.tok.Tok == ELSE {
		els := &ElseStmt{Pos: p.tok.Pos}
		err = p.next()
		if err != nil {
			return nil, err
		}
		els.Body, err = p.parseBlock("'else:'", els.Pos)
		if err != nil {
			return nil, err
		}
		stmt.Else = els
	}

	return stmt, nil
}

// parseBlock parses NEWLINE INDENT statement+ DEDENT following a block header.
func (p *Parser) parseBlock(header string, headerPos *filepos.Position) ([]Stmt, error) {
	_, err := p.expect(NEWLINE, "after "+header)
	if err != nil {
		return nil, err
	}
	if p.tok.Tok != INDENT {
		return nil, NewSyntaxError(headerPos, "expected an indented block after %s (use '...' for an empty block)", header)
	}
	err = p.next()
	if err != nil {
		return nil, err
	}

	var body []Stmt
	for p.tok.Tok != DEDENT {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	return body, p.next()
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.tok.Tok {
	case COMMENT:
		return p.parseComment()

	case PACKAGE:
		stmt := &PackageStmt{Pos: p.tok.Pos, Name: p.tok.Text, Quote: p.tok.Quote}
		err := p.next()
		if err != nil {
			return nil, err
		}
		if p.tok.Tok == COMMENT {
			stmt.Comment = &CommentStmt{Pos: p.tok.Pos, Text: p.tok.Text}
			err = p.next()
			if err != nil {
				return nil, err
			}
		}
		_, err = p.expect(NEWLINE, "after package")
		return stmt, err

	case ELLIPSIS:
		stmt := &EllipsisStmt{Pos: p.tok.Pos}
		err := p.next()
		if err != nil {
			return nil, err
		}
		_, err = p.expect(NEWLINE, "after '...'")
		return stmt, err

	case IF:
		return p.parseIf()

	case ELIF, ELSE:
		return nil, NewSyntaxError(p.tok.Pos, "'%s' without a matching 'if'", p.tok.Tok)

	case WITH:
		return nil, NewSyntaxError(p.tok.Pos, "'with' is only allowed at the top level")

	case INDENT:
		return nil, NewSyntaxError(p.tok.Pos, "unexpected indentation")

	default:
		return nil, NewSyntaxError(p.tok.Pos, "unexpected %s", p.tok)
	}
}

func (p *Parser) parseComment() (*CommentStmt, error) {
	stmt := &CommentStmt{Pos: p.tok.Pos, Text: p.tok.Text}
	err := p.next()
	if err != nil {
		return nil, err
	}
	_, err = p.expect(NEWLINE, "after comment")
	return stmt, err
}

// ParsePackageLine parses a single "<name> [# comment]" line, as accepted
// by "vurf add", into a package statement.
func ParsePackageLine(raw string) (*PackageStmt, error) {
	line := strings.TrimSpace(raw)
	if len(line) == 0 {
		return nil, NewSyntaxError(filepos.NewUnknownPosition(), "expected package name")
	}

	if strings.ContainsAny(line, "\r\n") {
		return nil, NewSyntaxError(filepos.NewUnknownPosition(), "package line %q must not contain line breaks", line)
	}

	toks, err := scanStatement(line, 0, func(col int) *filepos.Position {
		pos := filepos.NewPositionWithColumn(1, col)
		pos.SetLine(line)
		return pos
	})
	if err != nil {
		return nil, err
	}
	if toks[0].Tok != PACKAGE {
		return nil, NewSyntaxError(toks[0].Pos, "expected package name, but found %s (quote it to use it as a name)", toks[0])
	}

	stmt := &PackageStmt{Pos: filepos.NewUnknownPosition(), Name: toks[0].Text, Quote: toks[0].Quote}
	if len(toks) > 1 {
		stmt.Comment = &CommentStmt{Pos: filepos.NewUnknownPosition(), Text: toks[1].Text}
	}
	return stmt, nil
}

// ValidateSectionName checks that name reads back unchanged once
// written as "with <name>:".
func ValidateSectionName(name string) error {
	switch {
	case len(strings.TrimSpace(name)) == 0:
		return fmt.Errorf("expected non-empty section name")
	case strings.ContainsAny(name, "\r\n"):
		return fmt.Errorf("section name %q must not contain line breaks", name)
	case strings.Contains(name, ":"):
		return fmt.Errorf("section name %q must not contain ':'", name)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("section name %q must not start or end with whitespace", name)
	}
	return nil
}

// Unquote strips one pair of matching quotes around a package name.
func Unquote(name string) string {
	if len(name) >= 2 && (name[0] == '"' || name[0] == '\'') && name[len(name)-1] == name[0] {
		return name[1 : len(name)-1]
	}
	return name
}
