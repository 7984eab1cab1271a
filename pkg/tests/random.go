// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package tests holds helpers shared by tests of several packages.
package tests

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"

	"carvel.dev/vurf/pkg/filepos"
	"carvel.dev/vurf/pkg/vurfmeta"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

const maxDepth = 2

// RandSource is seeded from VURF_SEED when set so that failures can be reproduced.
func RandSource(t *testing.T) rand.Source {
	var seed int64
	if os.Getenv("VURF_SEED") == "" {
		seed = time.Now().UnixNano()
	} else {
		envSeed, err := strconv.Atoi(os.Getenv("VURF_SEED"))
		require.NoError(t, err)
		seed = int64(envSeed)
	}

	t.Logf("Seed used was: [%v]. To reproduce this test failure, re-run the test with `export VURF_SEED=%v`", seed, seed)

	return rand.NewSource(seed)
}

// NewDocumentFuzzer returns a fuzzer filling *vurfmeta.Document with
// random documents that are valid to print and parse back.
func NewDocumentFuzzer(src rand.Source) *fuzz.Fuzzer {
	return fuzz.New().RandSource(src).NilChance(0).Funcs(func(doc *vurfmeta.Document, c fuzz.Continue) {
		*doc = *randomDocument(c)
	})
}

var (
	sectionNames = []string{"brew", "apt", "cask", "pip", "npm", "tools"}
	guards       = []string{"has_display", "os == 'darwin'", "not defined('ci')", "env('SHELL', 'sh') != 'sh'", "cores >= 4"}
)

func randomDocument(c fuzz.Continue) *vurfmeta.Document {
	doc := vurfmeta.NewDocument()

	if c.RandBool() {
		doc.Items = append(doc.Items, randomComment(c))
	}

	for _, idx := range c.Perm(len(sectionNames))[:1+c.Intn(4)] {
		doc.Items = append(doc.Items, &vurfmeta.Section{
			Name:     sectionNames[idx],
			Children: randomBlock(c, 0),
			Position: filepos.NewUnknownPosition(),
		})
	}
	return doc
}

func randomBlock(c fuzz.Continue, depth int) []vurfmeta.Node {
	if c.Intn(8) == 0 {
		return []vurfmeta.Node{&vurfmeta.Ellipsis{Position: filepos.NewUnknownPosition()}}
	}

	var result []vurfmeta.Node
	n := 1 + c.Intn(4)
	for i := 0; i < n; i++ {
		switch kind := c.Intn(6); {
		case kind < 3:
			result = append(result, randomPackage(c))
		case kind == 3:
			result = append(result, randomComment(c))
		case depth < maxDepth:
			result = append(result, randomIf(c, depth+1))
		default:
			result = append(result, randomPackage(c))
		}
	}
	return result
}

func randomIf(c fuzz.Continue, depth int) *vurfmeta.If {
	node := &vurfmeta.If{
		Guard:    guards[c.Intn(len(guards))],
		Children: randomBlock(c, depth),
		Position: filepos.NewUnknownPosition(),
	}
	numElifs := c.Intn(3)
	for i := 0; i < numElifs; i++ {
		node.Elifs = append(node.Elifs, &vurfmeta.Elif{
			Guard:    guards[c.Intn(len(guards))],
			Children: randomBlock(c, depth),
			Position: filepos.NewUnknownPosition(),
		})
	}
	if c.RandBool() {
		node.Else = &vurfmeta.Else{Children: randomBlock(c, depth), Position: filepos.NewUnknownPosition()}
	}
	return node
}

func randomPackage(c fuzz.Continue) *vurfmeta.Package {
	pkg := &vurfmeta.Package{
		Name:     fmt.Sprintf("pkg%d", c.Intn(20)),
		Position: filepos.NewUnknownPosition(),
	}
	switch c.Intn(4) {
	case 0:
		pkg.Name = fmt.Sprintf("my tool %d", c.Intn(5))
		pkg.Quote = '\''
	case 1:
		pkg.Quote = '"'
	}
	if c.Intn(3) == 0 {
		pkg.Comment = randomComment(c)
	}
	return pkg
}

func randomComment(c fuzz.Continue) *vurfmeta.Comment {
	return &vurfmeta.Comment{Text: fmt.Sprintf(" note %d", c.Intn(100)), Position: filepos.NewUnknownPosition()}
}
