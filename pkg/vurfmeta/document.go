// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package vurfmeta

import (
	"fmt"

	"carvel.dev/vurf/pkg/filepos"
	"carvel.dev/vurf/pkg/guard"
	"carvel.dev/vurf/pkg/vurfsyntax"
)

// AllSections selects every section when passed as a section name.
const AllSections = ""

// Conditions decides whether a guard expression holds.
type Conditions interface {
	Eval(expr string, pos *filepos.Position) (bool, error)
}

var _ Conditions = &guard.Evaluator{}

func NewDocument() *Document {
	return &Document{Position: filepos.NewUnknownPosition()}
}

// Validate checks constraints the grammar cannot express: section names
// must be unique.
func (d *Document) Validate() error {
	seen := map[string]*Section{}
	for _, section := range d.sections() {
		if prev, found := seen[section.Name]; found {
			return vurfsyntax.NewSyntaxError(section.Position,
				"duplicate section '%s' (first defined at %s)", section.Name, prev.Position.AsCompactString())
		}
		seen[section.Name] = section
	}
	return nil
}

// Sections returns section names in document order.
func (d *Document) Sections() []string {
	var result []string
	for _, section := range d.sections() {
		result = append(result, section.Name)
	}
	return result
}

func (d *Document) HasSection(name string) bool {
	return d.section(name) != nil
}

// AddSection appends an empty section. Callers are expected to check
// HasSection first; lookups only ever see the first section of a name.
func (d *Document) AddSection(name string) error {
	err := vurfsyntax.ValidateSectionName(name)
	if err != nil {
		return err
	}
	d.Items = append(d.Items, &Section{
		Name:     name,
		Children: []Node{&Ellipsis{Position: filepos.NewUnknownPosition()}},
		Position: filepos.NewUnknownPosition(),
	})
	return nil
}

func (d *Document) RemoveSection(name string) error {
	for i, item := range d.Items {
		if section, ok := item.(*Section); ok && section.Name == name {
			d.Items = append(d.Items[:i:i], d.Items[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: KindSection, Name: name}
}

// IteratePackageNames calls fn with each package name that is active for
// given parameters, in document order. Quoted names are passed with their
// quotes. Iteration stops at the first error returned by fn or by guard
// evaluation.
func (d *Document) IteratePackageNames(section string, params guard.Parameters, fn func(string) error) error {
	return d.IteratePackageNamesWith(section, guard.NewEvaluator(params, nil), fn)
}

func (d *Document) IteratePackageNamesWith(section string, conds Conditions, fn func(string) error) error {
	var sections []*Section

	if section == AllSections {
		sections = d.sections()
	} else {
		found := d.section(section)
		if found == nil {
			return &NotFoundError{Kind: KindSection, Name: section}
		}
		sections = []*Section{found}
	}

	for _, found := range sections {
		err := iterateActive(found.Children, conds, fn)
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) PackageNames(section string, params guard.Parameters) ([]string, error) {
	return d.PackageNamesWith(section, guard.NewEvaluator(params, nil))
}

func (d *Document) PackageNamesWith(section string, conds Conditions) ([]string, error) {
	var result []string
	err := d.IteratePackageNamesWith(section, conds, func(name string) error {
		result = append(result, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func iterateActive(nodes []Node, conds Conditions, fn func(string) error) error {
	for _, node := range nodes {
		switch typedNode := node.(type) {
		case *Package:
			err := fn(typedNode.DisplayName())
			if err != nil {
				return err
			}

		case *If:
			branch, err := activeBranch(typedNode, conds)
			if err != nil {
				return err
			}
			if branch != nil {
				err = iterateActive(branch.GetChildren(), conds, fn)
				if err != nil {
					return err
				}
			}

		case *Comment, *Ellipsis:
			// contribute nothing

		default:
			panic(fmt.Sprintf("Unexpected node %T inside a block", node))
		}
	}
	return nil
}

// activeBranch returns the first branch whose guard holds, the else
// branch, or nil.
func activeBranch(node *If, conds Conditions) (Node, error) {
	ok, err := conds.Eval(node.Guard, node.Position)
	if err != nil || ok {
		return node, err
	}
	for _, elif := range node.Elifs {
		ok, err = conds.Eval(elif.Guard, elif.Position)
		if err != nil || ok {
			return elif, err
		}
	}
	if node.Else != nil {
		return node.Else, nil
	}
	return nil, nil
}

// HasPackage reports whether a package is declared anywhere in the
// section, regardless of guards. A missing section has no packages.
func (d *Document) HasPackage(section, name string) bool {
	found := d.section(section)
	if found == nil {
		return false
	}
	_, idx := findPackage(found, vurfsyntax.Unquote(name))
	return idx >= 0
}

// PackageSection returns the first section declaring the package.
func (d *Document) PackageSection(name string) (string, bool) {
	name = vurfsyntax.Unquote(name)
	for _, section := range d.sections() {
		if _, idx := findPackage(section, name); idx >= 0 {
			return section.Name, true
		}
	}
	return "", false
}

// AddPackage parses rawText ("<name> [# comment]") and appends it to
// the unconditional part of the section. It returns false without
// changing anything if the section already declares the package.
func (d *Document) AddPackage(section, rawText string) (bool, error) {
	found := d.section(section)
	if found == nil {
		return false, &NotFoundError{Kind: KindSection, Name: section}
	}

	stmt, err := vurfsyntax.ParsePackageLine(rawText)
	if err != nil {
		return false, err
	}

	pkg := NewPackageFromSyntax(stmt)

	if _, idx := findPackage(found, pkg.Name); idx >= 0 {
		return false, nil
	}

	if len(found.Children) == 1 {
		if _, ok := found.Children[0].(*Ellipsis); ok {
			found.Children = nil
		}
	}
	found.Children = append(found.Children, pkg)

	return true, nil
}

// RemovePackage removes the first declaration of the package in the
// section, looking inside conditional branches too. A block left
// without children gets an ellipsis.
func (d *Document) RemovePackage(section, name string) error {
	found := d.section(section)
	if found == nil {
		return &NotFoundError{Kind: KindSection, Name: section}
	}

	name = vurfsyntax.Unquote(name)

	parent, idx := findPackage(found, name)
	if idx < 0 {
		return &NotFoundError{Kind: KindPackage, Name: name, Section: section}
	}

	children := parent.GetChildren()
	children = append(children[:idx:idx], children[idx+1:]...)
	if len(children) == 0 {
		children = []Node{&Ellipsis{Position: filepos.NewUnknownPosition()}}
	}
	parent.setChildren(children)

	return nil
}

// findPackage searches depth first in document order and returns the
// block holding the package along with its index (-1 if not found).
func findPackage(b block, name string) (block, int) {
	for i, child := range b.GetChildren() {
		if pkg, ok := child.(*Package); ok && pkg.Name == name {
			return b, i
		}
		if typedChild, ok := child.(*If); ok {
			for _, branch := range typedChild.Branches() {
				if found, idx := findPackage(branch.(block), name); idx >= 0 {
					return found, idx
				}
			}
		}
	}
	return nil, -1
}

func (d *Document) sections() []*Section {
	var result []*Section
	for _, item := range d.Items {
		if section, ok := item.(*Section); ok {
			result = append(result, section)
		}
	}
	return result
}

func (d *Document) section(name string) *Section {
	for _, section := range d.sections() {
		if section.Name == name {
			return section
		}
	}
	return nil
}

// CheckGuards parses every guard expression of the document without
// evaluating it, so malformed guards are reported up front.
func (d *Document) CheckGuards() error {
	return d.Walk(VisitorFunc(func(n Node) error {
		switch typedN := n.(type) {
		case *If:
			return guard.Check(typedN.Guard, typedN.Position)
		case *Elif:
			return guard.Check(typedN.Guard, typedN.Position)
		}
		return nil
	}))
}
