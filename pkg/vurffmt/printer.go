// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurffmt

import (
	"bytes"
	"fmt"
	"io"

	"carvel.dev/vurf/pkg/vurfmeta"
)

type Printer struct {
	writer *writer
}

func NewPrinter(writer io.Writer) *Printer {
	return &Printer{newWriter(writer)}
}

func (p *Printer) Print(val interface{}) {
	p.print(val, whitespace{}, p.writer)
}

func (p *Printer) PrintStr(val interface{}) string {
	buf := new(bytes.Buffer)
	p.print(val, whitespace{}, newWriter(buf))
	return buf.String()
}

func (p *Printer) print(val interface{}, ws whitespace, writer *writer) {
	switch typedVal := val.(type) {
	case *vurfmeta.Document:
		for _, item := range typedVal.Items {
			p.print(item, ws, writer)
			if _, ok := item.(*vurfmeta.Section); ok {
				writer.AddContent(writerChunk{Spacer: true})
			}
		}

	case *vurfmeta.Section:
		writer.AddContent(writerChunk{Indent: ws.Indent, Content: fmt.Sprintf("with %s:", typedVal.Name)})
		p.printChildren(typedVal.Children, ws.NewIndented(), writer)

	case *vurfmeta.If:
		writer.AddContent(writerChunk{Indent: ws.Indent, Content: fmt.Sprintf("if %s:", typedVal.Guard)})
		p.printChildren(typedVal.Children, ws.NewIndented(), writer)

		for _, elif := range typedVal.Elifs {
			p.print(elif, ws, writer)
		}
		if typedVal.Else != nil {
			p.print(typedVal.Else, ws, writer)
		}

	case *vurfmeta.Elif:
		writer.AddContent(writerChunk{Indent: ws.Indent, Content: fmt.Sprintf("elif %s:", typedVal.Guard)})
		p.printChildren(typedVal.Children, ws.NewIndented(), writer)

	case *vurfmeta.Else:
		writer.AddContent(writerChunk{Indent: ws.Indent, Content: "else:"})
		p.printChildren(typedVal.Children, ws.NewIndented(), writer)

	case *vurfmeta.Package:
		content := typedVal.DisplayName()
		if typedVal.Comment != nil {
			content += whitespace{}.NewIndented().Indent + "#" + typedVal.Comment.Text
		}
		writer.AddContent(writerChunk{Indent: ws.Indent, Content: content})

	case *vurfmeta.Comment:
		writer.AddContent(writerChunk{Indent: ws.Indent, Content: "#" + typedVal.Text})

	case *vurfmeta.Ellipsis:
		writer.AddContent(writerChunk{Indent: ws.Indent, Content: "..."})

	default:
		panic(fmt.Sprintf("Unexpected %T in Printer", val))
	}
}

func (p *Printer) printChildren(children []vurfmeta.Node, ws whitespace, writer *writer) {
	for _, child := range children {
		p.print(child, ws, writer)
	}
}

type whitespace struct {
	Indent string
}

func (w whitespace) NewIndented() whitespace {
	const indentLvl = "  "
	return whitespace{Indent: w.Indent + indentLvl}
}
