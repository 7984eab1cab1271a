// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"context"
	"fmt"
	"os"

	"carvel.dev/vurf/pkg/config"
	"carvel.dev/vurf/pkg/guard"
	"carvel.dev/vurf/pkg/plan"
	"carvel.dev/vurf/pkg/runner"
	"carvel.dev/vurf/pkg/vurffmt"
	"carvel.dev/vurf/pkg/vurfmeta"
)

type UI interface {
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
}

// Workspace is not safe for concurrent use.
type Workspace struct {
	configPath   string
	config       *config.Config
	packagesPath string
	doc          *vurfmeta.Document
	ui           UI
}

// Load reads config at configPath (creating defaults when missing)
// and parses the packages file it points to.
func Load(configPath string, ui UI) (*Workspace, error) {
	ws := &Workspace{configPath: configPath, ui: ui}

	err := ws.Reload()
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// Reload re-reads config and packages file from disk, discarding
// unsaved changes.
func (w *Workspace) Reload() error {
	cfg, err := config.Ensure(w.configPath, w.ui)
	if err != nil {
		return err
	}

	pkgsPath, err := cfg.PackagesPath()
	if err != nil {
		return err
	}

	bs, err := os.ReadFile(pkgsPath)
	if err != nil {
		return fmt.Errorf("Reading packages file: %s", err)
	}

	doc, err := vurfmeta.Parse(bs, pkgsPath)
	if err != nil {
		return err
	}

	err = doc.CheckGuards()
	if err != nil {
		return err
	}

	w.config = cfg
	w.packagesPath = pkgsPath
	w.doc = doc

	return nil
}

// Save writes the formatted packages file.
func (w *Workspace) Save() error {
	err := os.WriteFile(w.packagesPath, []byte(w.Format()), 0600)
	if err != nil {
		return fmt.Errorf("Writing packages file: %s", err)
	}
	w.ui.Debugf("saved %s", w.packagesPath)
	return nil
}

func (w *Workspace) Format() string {
	return vurffmt.NewPrinter(nil).PrintStr(w.doc)
}

func (w *Workspace) Config() *config.Config          { return w.config }
func (w *Workspace) ConfigPath() string              { return w.configPath }
func (w *Workspace) PackagesPath() string            { return w.packagesPath }
func (w *Workspace) Document() *vurfmeta.Document    { return w.doc }
func (w *Workspace) DefaultSection() string          { return w.config.DefaultSection }
func (w *Workspace) Sections() []string              { return w.doc.Sections() }
func (w *Workspace) Which(pkg string) (string, bool) { return w.doc.PackageSection(pkg) }

// Add adds packages to section (default section if empty). It returns
// packages that were not already present. Either all packages are
// added or the document is left unchanged.
func (w *Workspace) Add(section string, pkgs ...string) ([]string, error) {
	section = w.sectionOrDefault(section)
	doc := w.doc.DeepCopy()

	var added []string

	for _, pkg := range pkgs {
		ok, err := doc.AddPackage(section, pkg)
		if err != nil {
			return nil, err
		}
		if ok {
			added = append(added, pkg)
		} else {
			w.ui.Debugf("package '%s' already in section '%s'", pkg, section)
		}
	}

	w.doc = doc
	return added, nil
}

// Remove removes packages from section (default section if empty).
// Either all packages are removed or the document is left unchanged.
func (w *Workspace) Remove(section string, pkgs ...string) error {
	section = w.sectionOrDefault(section)
	doc := w.doc.DeepCopy()

	for _, pkg := range pkgs {
		err := doc.RemovePackage(section, pkg)
		if err != nil {
			return err
		}
	}

	w.doc = doc
	return nil
}

// Has checks section (default section if empty) regardless of guards.
func (w *Workspace) Has(section, pkg string) bool {
	return w.doc.HasPackage(w.sectionOrDefault(section), pkg)
}

func (w *Workspace) HasAny(pkg string) bool {
	_, found := w.doc.PackageSection(pkg)
	return found
}

func (w *Workspace) AddSection(name string) error {
	if w.doc.HasSection(name) {
		return fmt.Errorf("Expected section '%s' to not exist", name)
	}
	return w.doc.AddSection(name)
}

func (w *Workspace) RemoveSection(name string) error {
	return w.doc.RemoveSection(name)
}

// Packages resolves packages of section, or all sections if empty.
func (w *Workspace) Packages(section string) ([]string, error) {
	return w.doc.PackageNamesWith(section, w.conditions())
}

// Plan resolves commands for section, or all sections if empty.
func (w *Workspace) Plan(section string, action plan.Action) ([]plan.Command, error) {
	return plan.NewPlanner(w.config.SectionConfigs()).Plan(w.doc, section, action, w.conditions())
}

func (w *Workspace) Install(ctx context.Context, section string, r *runner.Runner) error {
	return w.run(ctx, section, plan.Install, r)
}

func (w *Workspace) Uninstall(ctx context.Context, section string, r *runner.Runner) error {
	return w.run(ctx, section, plan.Uninstall, r)
}

func (w *Workspace) run(ctx context.Context, section string, action plan.Action, r *runner.Runner) error {
	cmds, err := w.Plan(section, action)
	if err != nil {
		return err
	}
	w.ui.Debugf("%s: %d command(s)", action, len(cmds))
	return r.Run(ctx, cmds)
}

func (w *Workspace) conditions() vurfmeta.Conditions {
	return guard.NewEvaluator(w.config.Params(), nil)
}

func (w *Workspace) sectionOrDefault(section string) string {
	if len(section) == 0 {
		return w.config.DefaultSection
	}
	return section
}
