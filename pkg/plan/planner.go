// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"fmt"
	"strings"

	"carvel.dev/vurf/pkg/vurfmeta"
)

type Action string

const (
	Install   Action = "install"
	Uninstall Action = "uninstall"
)

const (
	DefaultInstall   = "echo No install command provided, packages:"
	DefaultUninstall = "echo No uninstall command provided, packages:"
)

// SectionConfig holds command templates for a section. Package names
// are appended to a template, separated by spaces.
type SectionConfig struct {
	Name       string
	Install    string
	Uninstall  string
	Sequential bool // one command per package
}

func (c SectionConfig) Template(action Action) string {
	switch action {
	case Install:
		return c.Install
	case Uninstall:
		return c.Uninstall
	default:
		panic(fmt.Sprintf("Unknown action '%s'", action))
	}
}

type Command struct {
	Section string `json:"section" yaml:"section"`
	Line    string `json:"command" yaml:"command"`
}

type Planner struct {
	configs []SectionConfig
}

func NewPlanner(configs []SectionConfig) *Planner {
	return &Planner{configs}
}

// SectionConfig returns configuration for the section, falling back to
// echo commands for sections without one.
func (p *Planner) SectionConfig(section string) SectionConfig {
	for _, config := range p.configs {
		if config.Name == section {
			return config
		}
	}
	return SectionConfig{Name: section, Install: DefaultInstall, Uninstall: DefaultUninstall}
}

// Plan resolves packages of one section (or all sections, in document
// order) and returns commands to run in order.
func (p *Planner) Plan(doc *vurfmeta.Document, section string, action Action, conds vurfmeta.Conditions) ([]Command, error) {
	sections := []string{section}
	if section == vurfmeta.AllSections {
		sections = doc.Sections()
	}

	var result []Command

	for _, name := range sections {
		pkgs, err := doc.PackageNamesWith(name, conds)
		if err != nil {
			return nil, err
		}
		result = append(result, p.Commands(name, action, pkgs)...)
	}

	return result, nil
}

// Commands builds command lines for already resolved packages.
func (p *Planner) Commands(section string, action Action, pkgs []string) []Command {
	if len(pkgs) == 0 {
		return nil
	}

	config := p.SectionConfig(section)
	tpl := config.Template(action)

	if !config.Sequential {
		return []Command{{Section: section, Line: tpl + " " + strings.Join(pkgs, " ")}}
	}

	var result []Command
	for _, pkg := range pkgs {
		result = append(result, Command{Section: section, Line: tpl + " " + pkg})
	}
	return result
}

// Lines returns command lines without section names.
func Lines(cmds []Command) []string {
	var result []string
	for _, cmd := range cmds {
		result = append(result, cmd.Line)
	}
	return result
}
