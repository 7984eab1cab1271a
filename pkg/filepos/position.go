// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

type Position struct {
	lineNum *int // 1 based
	col     int  // 1 based, 0 when not tracked
	file    string
	line    string
	known   bool
}

func NewPosition(lineNum int) *Position {
	if lineNum <= 0 {
		panic("Lines are 1 based")
	}
	return &Position{lineNum: &lineNum, known: true}
}

// NewPositionWithColumn returns the Position of column "col" on line "lineNum".
func NewPositionWithColumn(lineNum, col int) *Position {
	if col <= 0 {
		panic("Columns are 1 based")
	}
	p := NewPosition(lineNum)
	p.col = col
	return p
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

func (p *Position) SetFile(file string) { p.file = file }

func (p *Position) SetLine(line string) { p.line = line }

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) LineNum() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	if p.lineNum == nil {
		panic("Position was not properly initialized")
	}
	return *p.lineNum
}

// Column returns the 1 based column, or 0 if the column was not recorded.
func (p *Position) Column() int {
	if !p.IsKnown() {
		return 0
	}
	return p.col
}

func (p *Position) GetLine() string {
	if p == nil {
		return ""
	}
	return p.line
}

func (p *Position) GetFile() string {
	if p == nil {
		return ""
	}
	return p.file
}

func (p *Position) AsString() string {
	if p.IsKnown() && p.col > 0 {
		return fmt.Sprintf("line %s col %d", p.AsCompactString(), p.col)
	}
	return "line " + p.AsCompactString()
}

func (p *Position) AsCompactString() string {
	filePrefix := p.GetFile()
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if p.IsKnown() {
		return fmt.Sprintf("%s%d", filePrefix, p.LineNum())
	}
	return fmt.Sprintf("%s?", filePrefix)
}

func (p *Position) As4DigitString() string {
	if p.IsKnown() {
		return fmt.Sprintf("%4d", p.LineNum())
	}
	return "????"
}

func (p *Position) DeepCopy() *Position {
	if p == nil {
		return nil
	}
	newPos := &Position{file: p.file, known: p.known, line: p.line, col: p.col}
	if p.lineNum != nil {
		lineVal := *p.lineNum
		newPos.lineNum = &lineVal
	}
	return newPos
}
