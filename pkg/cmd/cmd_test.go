// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/vurf/pkg/cmd"
	"carvel.dev/vurf/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packages = `with brew:
  git
  if has_display:
    firefox
  else:
    lynx
with tools:
  a
  b
`

type env struct {
	t          *testing.T
	configPath string
	pkgsPath   string
}

func newEnv(t *testing.T) env {
	dir := t.TempDir()
	pkgsPath := filepath.Join(dir, "packages.vurf")
	configPath := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(pkgsPath, []byte(packages), 0600))
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf(`
packages_location = %q
default_section = "brew"

[[sections]]
name = "brew"
install = "echo brew install"
uninstall = "echo brew uninstall"

[[sections]]
name = "tools"
install = "echo pkgmgr add"
uninstall = "echo pkgmgr del"
sequential = true

[parameters]
has_display = false
`, pkgsPath)), 0600))

	t.Setenv(cmd.SectionEnvName, "")

	return env{t, configPath, pkgsPath}
}

func (e env) run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	o := cmd.NewDefaultVurfOptions()
	o.Stdout = &stdout
	o.Stderr = &stderr

	c := cmd.NewVurfCmd(o)
	c.SetArgs(append([]string{"--config", e.configPath}, args...))
	c.SetOut(&stdout)
	c.SetErr(&stderr)

	err := c.Execute()
	return stdout.String(), err
}

func (e env) mustRun(args ...string) string {
	out, err := e.run(args...)
	require.NoError(e.t, err)
	return out
}

func (e env) packagesFile() string {
	bs, err := os.ReadFile(e.pkgsPath)
	require.NoError(e.t, err)
	return string(bs)
}

func TestAddAndRemove(t *testing.T) {
	e := newEnv(t)

	e.mustRun("add", "curl", "git")
	e.mustRun("add", "-s", "tools", "c")

	expected := `with brew:
  git
  if has_display:
    firefox
  else:
    lynx
  curl

with tools:
  a
  b
  c
`
	assert.Equal(t, expected, e.packagesFile())

	e.mustRun("remove", "-s", "tools", "a", "b", "c")
	assert.Contains(t, e.packagesFile(), "with tools:\n  ...\n")

	_, err := e.run("remove", "missing")
	require.Error(t, err)
	assert.Equal(t, "Expected to find package 'missing' in section 'brew'", err.Error())
}

func TestHas(t *testing.T) {
	e := newEnv(t)

	e.mustRun("has", "git")
	e.mustRun("has", "-s", "tools", "a")

	// structural check, regardless of conditions
	e.mustRun("has", "firefox")

	_, err := e.run("has", "a")
	var exitErr cmd.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
}

func TestSectionEnvFallback(t *testing.T) {
	e := newEnv(t)
	t.Setenv(cmd.SectionEnvName, "tools")

	assert.Equal(t, "a\nb\n", e.mustRun("packages"))
	assert.Equal(t, "git\nlynx\n", e.mustRun("packages", "-s", "brew"))
}

func TestQueries(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, "brew\n", e.mustRun("default"))
	assert.Equal(t, "tools\n", e.mustRun("which", "b"))
	assert.Equal(t, "brew\ntools\n", e.mustRun("sections"))
	assert.Equal(t, "brew,tools\n", e.mustRun("sections", "--separator", ","))
	assert.Equal(t, "git lynx a b\n", e.mustRun("packages", "--separator", " "))
	assert.Equal(t, "git lynx\n", e.mustRun("packages", "-s", "brew", "--separator", " "))

	_, err := e.run("which", "nope")
	require.Error(t, err)
	assert.Equal(t, "Expected to find package 'nope' in any section", err.Error())
}

func TestSections(t *testing.T) {
	e := newEnv(t)

	e.mustRun("add-section", "cask")
	assert.Equal(t, "brew\ntools\ncask\n", e.mustRun("sections"))
	assert.Contains(t, e.packagesFile(), "\n\nwith cask:\n  ...\n")

	_, err := e.run("add-section", "brew")
	require.Error(t, err)
	assert.Equal(t, "Expected section 'brew' to not exist", err.Error())

	for _, name := range []string{"a:b", "", "x\ny"} {
		_, err = e.run("add-section", name)
		require.Error(t, err, "name %q", name)
	}
	_, err = e.run("add", "bad\nline")
	require.Error(t, err)
	assert.Equal(t, "brew\ntools\ncask\n", e.mustRun("sections"))

	e.mustRun("remove-section", "brew")
	assert.Equal(t, "tools\ncask\n", e.mustRun("sections"))

	_, err = e.run("remove-section", "brew")
	require.Error(t, err)
	assert.Equal(t, "Expected to find section 'brew'", err.Error())
}

func TestPlan(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, "echo brew install git lynx\necho pkgmgr add a\necho pkgmgr add b\n", e.mustRun("plan"))
	assert.Equal(t, "echo pkgmgr del a\necho pkgmgr del b\n", e.mustRun("plan", "-s", "tools", "--uninstall"))

	expectedJSON := `[
  {
    "section": "brew",
    "command": "echo brew install git lynx"
  }
]
`
	assert.Equal(t, expectedJSON, e.mustRun("plan", "-s", "brew", "-o", "json"))

	expectedYAML := `- section: brew
  command: echo brew install git lynx
`
	assert.Equal(t, expectedYAML, e.mustRun("plan", "-s", "brew", "--output", "yaml"))

	_, err := e.run("plan", "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, "Unknown output format 'xml' (expected one of: text, json, yaml)", err.Error())
}

func TestPlanEmptySectionJSON(t *testing.T) {
	e := newEnv(t)

	e.mustRun("add-section", "empty")
	assert.Equal(t, "[]\n", e.mustRun("plan", "-s", "empty", "-o", "json"))
	assert.Equal(t, "", e.mustRun("plan", "-s", "empty"))
}

func TestInstall(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, "echo brew install git lynx\n", e.mustRun("install", "-s", "brew", "--dry-run"))
	assert.Equal(t, "brew install git lynx\n", e.mustRun("install", "-s", "brew"))
	assert.Equal(t, "pkgmgr del a\npkgmgr del b\n", e.mustRun("uninstall", "-s", "tools"))
}

func TestPrintAndFormat(t *testing.T) {
	e := newEnv(t)

	expected := `with brew:
  git
  if has_display:
    firefox
  else:
    lynx

with tools:
  a
  b
`
	assert.Equal(t, expected, e.mustRun("print"))
	assert.Equal(t, packages, e.packagesFile())

	e.mustRun("format")
	assert.Equal(t, expected, e.packagesFile())
}

func TestEditUsesVisual(t *testing.T) {
	e := newEnv(t)
	t.Setenv("VISUAL", "echo editing")

	assert.Equal(t, "editing "+e.pkgsPath+"\n", e.mustRun("edit"))
	assert.Equal(t, "editing "+e.configPath+"\n", e.mustRun("config"))
}

func TestExtraArgs(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("default", "extra")
	require.Error(t, err)
	assert.Equal(t, "command 'vurf default' does not accept extra arguments 'extra'", err.Error())

	_, err = e.run("has")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, fmt.Sprintf("vurf version %s\n", version.Version), e.mustRun("version"))
}

func TestInvalidPackagesFile(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.WriteFile(e.pkgsPath, []byte("git\n"), 0600))

	_, err := e.run("packages")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error at line "+e.pkgsPath+":1")
}
