// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta_test

import (
	"errors"
	"testing"

	"carvel.dev/vurf/pkg/filepos"
	"carvel.dev/vurf/pkg/guard"
	"carvel.dev/vurf/pkg/tests"
	"carvel.dev/vurf/pkg/vurfmeta"
	"carvel.dev/vurf/pkg/vurfsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# machine setup
with base:
  git
  if has_display:
    firefox
  else:
    lynx
with brew:
  'visual studio code'  # editor
  if os == 'darwin':
    coreutils
    if cores >= 8:
      "parallel"
  elif os == 'linux':
    # nothing extra
    ...
with empty:
  ...
`

func mustParse(t *testing.T, data string) *vurfmeta.Document {
	doc, err := vurfmeta.Parse([]byte(data), "packages.vurf")
	require.NoError(t, err)
	return doc
}

func structure(doc *vurfmeta.Document) string {
	return vurfmeta.NewPrinterWithOpts(nil, vurfmeta.PrinterOpts{ExcludePositions: true}).PrintStr(doc)
}

func TestDocumentStructure(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	expected := `doc
    comment: " machine setup"
    section: base
        package: git
        if: has_display
            package: firefox
        else
            package: lynx
    section: brew
        package: 'visual studio code' comment: " editor"
        if: os == 'darwin'
            package: coreutils
            if: cores >= 8
                package: "parallel"
        elif: os == 'linux'
            comment: " nothing extra"
            ellipsis
    section: empty
        ellipsis
`
	assert.Equal(t, expected, structure(doc))
}

func TestDocumentPositions(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	section := doc.Items[2].(*vurfmeta.Section)
	assert.Equal(t, "packages.vurf:8", section.Position.AsCompactString())

	pkg := section.Children[0].(*vurfmeta.Package)
	assert.Equal(t, 9, pkg.Position.LineNum())
	assert.Equal(t, "visual studio code", pkg.Name)
	assert.Equal(t, "'visual studio code'", pkg.GetData())
}

func TestDocumentDuplicateSections(t *testing.T) {
	_, err := vurfmeta.Parse([]byte("with a:\n  x\nwith b:\n  y\nwith a:\n  z\n"), "packages.vurf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate section 'a' (first defined at packages.vurf:1)")
	assert.Contains(t, err.Error(), "line packages.vurf:5")

	var syntaxErr *vurfsyntax.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestDocumentSections(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	assert.Equal(t, []string{"base", "brew", "empty"}, doc.Sections())
	assert.True(t, doc.HasSection("brew"))
	assert.False(t, doc.HasSection("cask"))

	require.NoError(t, doc.AddSection("cask"))
	assert.Equal(t, []string{"base", "brew", "empty", "cask"}, doc.Sections())
	names, err := doc.PackageNames("cask", nil)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, doc.RemoveSection("brew"))
	assert.Equal(t, []string{"base", "empty", "cask"}, doc.Sections())

	for _, name := range []string{"a:b", "", "x\ny"} {
		before := structure(doc)
		require.Error(t, doc.AddSection(name), "name %q", name)
		assert.Equal(t, before, structure(doc), "name %q", name)
	}

	err = doc.RemoveSection("brew")
	require.Error(t, err)
	assert.True(t, errors.Is(err, vurfmeta.ErrNotFound))
	assert.Equal(t, "Expected to find section 'brew'", err.Error())

	// top level comment survives
	assert.IsType(t, &vurfmeta.Comment{}, doc.Items[0])
}

func TestDocumentPackageNames(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	t.Run("resolves else branch in document order", func(t *testing.T) {
		names, err := doc.PackageNames("base", guard.Parameters{"has_display": false})
		require.NoError(t, err)
		assert.Equal(t, []string{"git", "lynx"}, names)
	})

	t.Run("resolves if branch", func(t *testing.T) {
		names, err := doc.PackageNames("base", guard.Parameters{"has_display": true})
		require.NoError(t, err)
		assert.Equal(t, []string{"git", "firefox"}, names)
	})

	t.Run("resolves nested branches and keeps quotes", func(t *testing.T) {
		names, err := doc.PackageNames("brew", guard.Parameters{"os": "darwin", "cores": 8})
		require.NoError(t, err)
		assert.Equal(t, []string{"'visual studio code'", "coreutils", `"parallel"`}, names)

		names, err = doc.PackageNames("brew", guard.Parameters{"os": "darwin", "cores": 4})
		require.NoError(t, err)
		assert.Equal(t, []string{"'visual studio code'", "coreutils"}, names)
	})

	t.Run("no active branch contributes nothing", func(t *testing.T) {
		names, err := doc.PackageNames("brew", guard.Parameters{"os": "windows"})
		require.NoError(t, err)
		assert.Equal(t, []string{"'visual studio code'"}, names)
	})

	t.Run("all sections", func(t *testing.T) {
		names, err := doc.PackageNames(vurfmeta.AllSections, guard.Parameters{"has_display": true, "os": "linux"})
		require.NoError(t, err)
		assert.Equal(t, []string{"git", "firefox", "'visual studio code'"}, names)
	})

	t.Run("missing section", func(t *testing.T) {
		_, err := doc.PackageNames("cask", nil)
		require.Error(t, err)
		var notFoundErr *vurfmeta.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, vurfmeta.KindSection, notFoundErr.Kind)
		assert.Equal(t, "cask", notFoundErr.Name)
	})

	t.Run("guard errors abort", func(t *testing.T) {
		_, err := doc.PackageNames("base", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Undefined parameter 'has_display'")
		assert.Contains(t, err.Error(), "line packages.vurf:4")

		var evalErr *guard.EvaluationError
		assert.ErrorAs(t, err, &evalErr)
	})

	t.Run("iteration stops at callback error", func(t *testing.T) {
		stop := errors.New("stop")
		var seen []string
		err := doc.IteratePackageNames("base", guard.Parameters{"has_display": true}, func(name string) error {
			seen = append(seen, name)
			return stop
		})
		assert.Equal(t, stop, err)
		assert.Equal(t, []string{"git"}, seen)
	})
}

type fixedConditions map[string]bool

func (c fixedConditions) Eval(expr string, _ *filepos.Position) (bool, error) { return c[expr], nil }

func TestDocumentConditionalExclusivity(t *testing.T) {
	doc := mustParse(t, "with a:\n  if x:\n    one\n  elif y:\n    two\n  elif z:\n    three\n  else:\n    four\n")

	cases := []struct {
		conds    fixedConditions
		expected []string
	}{
		{fixedConditions{"x": true, "y": true, "z": true}, []string{"one"}},
		{fixedConditions{"y": true, "z": true}, []string{"two"}},
		{fixedConditions{"z": true}, []string{"three"}},
		{fixedConditions{}, []string{"four"}},
	}

	for _, tc := range cases {
		names, err := doc.PackageNamesWith("a", tc.conds)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, names)
	}
}

func TestDocumentHasPackage(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	assert.True(t, doc.HasPackage("base", "git"))
	assert.True(t, doc.HasPackage("base", "lynx"), "inactive branches count")
	assert.True(t, doc.HasPackage("brew", "parallel"))
	assert.True(t, doc.HasPackage("brew", `"visual studio code"`), "quoting is ignored")
	assert.False(t, doc.HasPackage("brew", "git"))
	assert.False(t, doc.HasPackage("cask", "git"), "missing section")
}

func TestDocumentPackageSection(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	section, found := doc.PackageSection("coreutils")
	assert.True(t, found)
	assert.Equal(t, "brew", section)

	section, found = doc.PackageSection("'lynx'")
	assert.True(t, found)
	assert.Equal(t, "base", section)

	_, found = doc.PackageSection("emacs")
	assert.False(t, found)
}

func TestDocumentAddPackage(t *testing.T) {
	t.Run("appends with trailing comment", func(t *testing.T) {
		doc := mustParse(t, sampleDoc)

		added, err := doc.AddPackage("base", "curl # fetch tool")
		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, doc.HasPackage("base", "curl"))

		section := doc.Items[1].(*vurfmeta.Section)
		pkg := section.Children[len(section.Children)-1].(*vurfmeta.Package)
		assert.Equal(t, "curl", pkg.Name)
		assert.Equal(t, " fetch tool", pkg.Comment.Text)
	})

	t.Run("is a no-op for structurally equal packages", func(t *testing.T) {
		doc := mustParse(t, sampleDoc)
		before := structure(doc)

		for _, raw := range []string{"lynx", "'lynx'", `"visual studio code"`} {
			section := "base"
			if raw[0] == '"' {
				section = "brew"
			}
			added, err := doc.AddPackage(section, raw)
			require.NoError(t, err)
			assert.False(t, added, raw)
		}
		assert.Equal(t, before, structure(doc))
	})

	t.Run("replaces a sole ellipsis", func(t *testing.T) {
		doc := mustParse(t, sampleDoc)

		_, err := doc.AddPackage("empty", "'a b'")
		require.NoError(t, err)

		section := doc.Items[3].(*vurfmeta.Section)
		require.Len(t, section.Children, 1)
		assert.Equal(t, "'a b'", section.Children[0].GetData())
	})

	t.Run("keeps ellipsis that is not alone", func(t *testing.T) {
		doc := mustParse(t, "with a:\n  # c\n  ...\n")

		_, err := doc.AddPackage("a", "x")
		require.NoError(t, err)

		section := doc.Items[0].(*vurfmeta.Section)
		assert.Len(t, section.Children, 3)
	})

	t.Run("missing section", func(t *testing.T) {
		doc := mustParse(t, sampleDoc)
		_, err := doc.AddPackage("cask", "x")
		assert.True(t, errors.Is(err, vurfmeta.ErrNotFound))
	})

	t.Run("unparsable text", func(t *testing.T) {
		doc := mustParse(t, sampleDoc)
		_, err := doc.AddPackage("base", "two words")
		var syntaxErr *vurfsyntax.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("text with line breaks", func(t *testing.T) {
		doc := mustParse(t, sampleDoc)
		before := structure(doc)

		for _, raw := range []string{"x\ny", "x\r\ny", "'x\ny'"} {
			added, err := doc.AddPackage("base", raw)
			var syntaxErr *vurfsyntax.SyntaxError
			require.ErrorAs(t, err, &syntaxErr, "raw %q", raw)
			assert.False(t, added)
		}
		assert.Equal(t, before, structure(doc))
	})
}

func TestDocumentRemovePackage(t *testing.T) {
	t.Run("removing the only package leaves an ellipsis", func(t *testing.T) {
		doc := mustParse(t, "with tools:\n  a\n")

		require.NoError(t, doc.RemovePackage("tools", "a"))

		section := doc.Items[0].(*vurfmeta.Section)
		require.Len(t, section.Children, 1)
		assert.IsType(t, &vurfmeta.Ellipsis{}, section.Children[0])
	})

	t.Run("removes from inside a branch", func(t *testing.T) {
		doc := mustParse(t, sampleDoc)

		require.NoError(t, doc.RemovePackage("base", "'lynx'"))

		ifNode := doc.Items[1].(*vurfmeta.Section).Children[1].(*vurfmeta.If)
		require.Len(t, ifNode.Else.Children, 1)
		assert.IsType(t, &vurfmeta.Ellipsis{}, ifNode.Else.Children[0])
		assert.False(t, doc.HasPackage("base", "lynx"))
	})

	t.Run("removes first in document order", func(t *testing.T) {
		doc := mustParse(t, "with a:\n  if x:\n    dup\n  dup\n")

		require.NoError(t, doc.RemovePackage("a", "dup"))

		expected := "doc\n    section: a\n        if: x\n            ellipsis\n        package: dup\n"
		assert.Equal(t, expected, structure(doc))
	})

	t.Run("block left with only comments gets no ellipsis", func(t *testing.T) {
		doc := mustParse(t, "with a:\n  # c\n  x\n")

		require.NoError(t, doc.RemovePackage("a", "x"))

		expected := "doc\n    section: a\n        comment: \" c\"\n"
		assert.Equal(t, expected, structure(doc))
		names, err := doc.PackageNames("a", nil)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("missing package", func(t *testing.T) {
		doc := mustParse(t, sampleDoc)

		err := doc.RemovePackage("base", "emacs")
		require.Error(t, err)
		assert.True(t, errors.Is(err, vurfmeta.ErrNotFound))
		assert.Equal(t, "Expected to find package 'emacs' in section 'base'", err.Error())

		err = doc.RemovePackage("cask", "emacs")
		assert.Equal(t, "Expected to find section 'cask'", err.Error())
	})
}

func TestDocumentCheckGuards(t *testing.T) {
	require.NoError(t, mustParse(t, sampleDoc).CheckGuards())

	doc := mustParse(t, "with a:\n  if x:\n    b\n  elif open('f'):\n    c\n")
	err := doc.CheckGuards()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown function 'open'")
	assert.Contains(t, err.Error(), "line packages.vurf:4")
}

func TestDocumentWalkOrder(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	var data []string
	err := doc.Walk(vurfmeta.VisitorFunc(func(n vurfmeta.Node) error {
		if _, ok := n.(*vurfmeta.Package); ok {
			data = append(data, n.GetData())
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "firefox", "lynx", "'visual studio code'", "coreutils", `"parallel"`}, data)
}

func TestDocumentDeepCopy(t *testing.T) {
	doc := mustParse(t, sampleDoc)
	docCopy := doc.DeepCopy()

	_, err := docCopy.AddPackage("base", "extra")
	require.NoError(t, err)
	require.NoError(t, docCopy.RemovePackage("brew", "coreutils"))

	assert.Equal(t, structure(mustParse(t, sampleDoc)), structure(doc))
	assert.NotEqual(t, structure(doc), structure(docCopy))
}

func TestDocumentPropertiesWithFuzzedDocuments(t *testing.T) {
	fuzzer := tests.NewDocumentFuzzer(tests.RandSource(t))

	for i := 0; i < 200; i++ {
		doc := &vurfmeta.Document{}
		fuzzer.Fuzz(doc)

		for _, section := range doc.Sections() {
			t.Run("add is idempotent", func(t *testing.T) {
				docCopy := doc.DeepCopy()

				added, err := docCopy.AddPackage(section, "fresh-pkg")
				require.NoError(t, err)
				assert.True(t, added)
				afterFirst := structure(docCopy)

				added, err = docCopy.AddPackage(section, "'fresh-pkg'  # again")
				require.NoError(t, err)
				assert.False(t, added)
				assert.Equal(t, afterFirst, structure(docCopy))
			})

			t.Run("remove undoes add", func(t *testing.T) {
				docCopy := doc.DeepCopy()

				_, err := docCopy.AddPackage(section, "fresh-pkg")
				require.NoError(t, err)
				require.NoError(t, docCopy.RemovePackage(section, "fresh-pkg"))
				assert.Equal(t, structure(doc), structure(docCopy))
			})

			t.Run("removal keeps blocks valid", func(t *testing.T) {
				docCopy := doc.DeepCopy()

				for _, name := range []string{"pkg0", "pkg1", "pkg2", "my tool 0", "my tool 1"} {
					for docCopy.HasPackage(section, name) {
						require.NoError(t, docCopy.RemovePackage(section, name))
					}
				}
				assertBlocksValid(t, docCopy)
			})
		}
	}
}

func assertBlocksValid(t *testing.T, doc *vurfmeta.Document) {
	err := doc.Walk(vurfmeta.VisitorFunc(func(n vurfmeta.Node) error {
		switch n.(type) {
		case *vurfmeta.Section, *vurfmeta.If, *vurfmeta.Elif, *vurfmeta.Else:
			children := n.GetChildren()
			require.NotEmpty(t, children)
			for _, child := range children {
				if _, ok := child.(*vurfmeta.Ellipsis); ok {
					assert.Len(t, children, 1, "ellipsis must be the only child")
				}
			}
		}
		return nil
	}))
	require.NoError(t, err)
}
