// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurffmt_test

import (
	"strings"
	"testing"

	"carvel.dev/vurf/pkg/tests"
	"carvel.dev/vurf/pkg/vurffmt"
	"carvel.dev/vurf/pkg/vurfmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func structure(doc *vurfmeta.Document) string {
	return vurfmeta.NewPrinterWithOpts(nil, vurfmeta.PrinterOpts{ExcludePositions: true}).PrintStr(doc)
}

func TestRoundTripWithFuzzedDocuments(t *testing.T) {
	fuzzer := tests.NewDocumentFuzzer(tests.RandSource(t))

	for i := 0; i < 500; i++ {
		doc := &vurfmeta.Document{}
		fuzzer.Fuzz(doc)

		printed := vurffmt.NewPrinter(nil).PrintStr(doc)

		reparsed, err := vurfmeta.Parse([]byte(printed), "fuzzed.vurf")
		require.NoError(t, err, "printed:\n%s", printed)
		require.Equal(t, structure(doc), structure(reparsed), "printed:\n%s", printed)

		assert.Equal(t, printed, vurffmt.NewPrinter(nil).PrintStr(reparsed), "printing is stable")
	}
}

func TestPrintAfterAddPackage(t *testing.T) {
	doc, err := vurfmeta.Parse([]byte("with base:\n  git\n"), "")
	require.NoError(t, err)

	_, err = doc.AddPackage("base", "curl # fetch tool")
	require.NoError(t, err)

	printed := vurffmt.NewPrinter(nil).PrintStr(doc)
	assert.Contains(t, strings.Split(printed, "\n"), "  curl  # fetch tool")
	assert.Equal(t, "with base:\n  git\n  curl  # fetch tool\n", printed)
}

func TestPrintAfterRemovingOnlyPackage(t *testing.T) {
	doc, err := vurfmeta.Parse([]byte("with tools:\n  a\n"), "")
	require.NoError(t, err)

	require.NoError(t, doc.RemovePackage("tools", "a"))

	assert.Equal(t, "with tools:\n  ...\n", vurffmt.NewPrinter(nil).PrintStr(doc))
}

func TestPrintAddedSections(t *testing.T) {
	doc := vurfmeta.NewDocument()
	require.NoError(t, doc.AddSection("a"))
	require.NoError(t, doc.AddSection("b"))
	_, err := doc.AddPackage("b", "'x y'")
	require.NoError(t, err)

	assert.Equal(t, "with a:\n  ...\n\nwith b:\n  'x y'\n", vurffmt.NewPrinter(nil).PrintStr(doc))
}

func TestRejectedEditsKeepDocumentParsable(t *testing.T) {
	doc, err := vurfmeta.Parse([]byte("with base:\n  git\n"), "")
	require.NoError(t, err)

	for _, name := range []string{"a:b", "", "x\ny"} {
		assert.Error(t, doc.AddSection(name), "section %q", name)
	}
	for _, raw := range []string{"x\ny", "x\ry"} {
		_, err := doc.AddPackage("base", raw)
		assert.Error(t, err, "package %q", raw)
	}

	out := vurffmt.NewPrinter(nil).PrintStr(doc)
	assert.Equal(t, "with base:\n  git\n", out)

	_, err = vurfmeta.Parse([]byte(out), "")
	require.NoError(t, err)
}

func TestPrintToWriter(t *testing.T) {
	doc, err := vurfmeta.Parse([]byte("# top\nwith a:\n  b\n"), "")
	require.NoError(t, err)

	buf := new(strings.Builder)
	vurffmt.NewPrinter(buf).Print(doc)
	assert.Equal(t, "# top\nwith a:\n  b\n", buf.String())
}
