// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta

import (
	"bytes"
	"fmt"
	"io"

	"carvel.dev/vurf/pkg/filepos"
)

// Printer renders a tree for debugging. Unlike vurffmt it shows every
// node kind explicitly, optionally with positions.
type Printer struct {
	writer io.Writer
	opts   PrinterOpts
}

type PrinterOpts struct {
	ExcludePositions bool
}

func NewPrinter(writer io.Writer) Printer {
	return Printer{writer, PrinterOpts{}}
}

func NewPrinterWithOpts(writer io.Writer, opts PrinterOpts) Printer {
	return Printer{writer, opts}
}

func (p Printer) Print(val interface{}) {
	fmt.Fprintf(p.writer, "%s", p.PrintStr(val))
}

func (p Printer) PrintStr(val interface{}) string {
	buf := new(bytes.Buffer)
	p.print(val, "", buf)
	return buf.String()
}

func (p Printer) print(val interface{}, indent string, writer io.Writer) {
	const indentLvl = "    "

	switch typedVal := val.(type) {
	case *Document:
		fmt.Fprintf(writer, "%s%sdoc\n", indent, p.lineStr(typedVal.Position))
		for _, item := range typedVal.Items {
			p.print(item, indent+indentLvl, writer)
		}

	case *Section:
		fmt.Fprintf(writer, "%s%ssection: %s\n", indent, p.lineStr(typedVal.Position), typedVal.Name)
		p.printChildren(typedVal.Children, indent+indentLvl, writer)

	case *If:
		fmt.Fprintf(writer, "%s%sif: %s\n", indent, p.lineStr(typedVal.Position), typedVal.Guard)
		p.printChildren(typedVal.Children, indent+indentLvl, writer)
		for _, elif := range typedVal.Elifs {
			p.print(elif, indent, writer)
		}
		if typedVal.Else != nil {
			p.print(typedVal.Else, indent, writer)
		}

	case *Elif:
		fmt.Fprintf(writer, "%s%selif: %s\n", indent, p.lineStr(typedVal.Position), typedVal.Guard)
		p.printChildren(typedVal.Children, indent+indentLvl, writer)

	case *Else:
		fmt.Fprintf(writer, "%s%selse\n", indent, p.lineStr(typedVal.Position))
		p.printChildren(typedVal.Children, indent+indentLvl, writer)

	case *Package:
		fmt.Fprintf(writer, "%s%spackage: %s", indent, p.lineStr(typedVal.Position), typedVal.DisplayName())
		if typedVal.Comment != nil {
			fmt.Fprintf(writer, " comment: %q", typedVal.Comment.Text)
		}
		fmt.Fprintf(writer, "\n")

	case *Comment:
		fmt.Fprintf(writer, "%s%scomment: %q\n", indent, p.lineStr(typedVal.Position), typedVal.Text)

	case *Ellipsis:
		fmt.Fprintf(writer, "%s%sellipsis\n", indent, p.lineStr(typedVal.Position))

	default:
		fmt.Fprintf(writer, "%s%v\n", indent, typedVal)
	}
}

func (p Printer) printChildren(children []Node, indent string, writer io.Writer) {
	for _, child := range children {
		p.print(child, indent, writer)
	}
}

func (p Printer) lineStr(pos *filepos.Position) string {
	if p.opts.ExcludePositions {
		return ""
	}
	return "[" + pos.AsCompactString() + "] "
}
