// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDir = "../../examples/workstation"

type vurfResult struct {
	stdout   string
	stderr   string
	exitCode int
}

func TestPlanExample(t *testing.T) {
	expected, err := os.ReadFile(filepath.Join(exampleDir, "plan-result.txt"))
	require.NoError(t, err)

	res := runVurf(t, []string{"plan"}, nil)
	require.Equal(t, 0, res.exitCode, res.stderr)
	require.Equal(t, string(expected), res.stdout)
}

func TestPlanExampleWithEnv(t *testing.T) {
	res := runVurf(t, []string{"plan", "-s", "brew"}, []string{"VURF_PROFILE=work"})
	require.Equal(t, 0, res.exitCode, res.stderr)
	require.Equal(t, "brew install git ripgrep coreutils font-fira-code awscli\n", res.stdout)

	res = runVurf(t, []string{"packages", "--separator", ","}, []string{"VURF_SECTION=vscode"})
	require.Equal(t, 0, res.exitCode, res.stderr)
	require.Equal(t, "golang.go,vscodevim.vim\n", res.stdout)
}

func TestPrintExampleIsFormatted(t *testing.T) {
	expected, err := os.ReadFile(filepath.Join(exampleDir, "packages.vurf"))
	require.NoError(t, err)

	res := runVurf(t, []string{"print"}, nil)
	require.Equal(t, 0, res.exitCode, res.stderr)
	require.Equal(t, string(expected), res.stdout)
}

func TestHasExitCode(t *testing.T) {
	res := runVurf(t, []string{"has", "git"}, nil)
	assert.Equal(t, 0, res.exitCode)

	res = runVurf(t, []string{"has", "missing"}, nil)
	assert.Equal(t, 1, res.exitCode)
	assert.Equal(t, "", res.stdout)
	assert.Equal(t, "", res.stderr)
}

func TestErrorOutput(t *testing.T) {
	res := runVurf(t, []string{"which", "missing"}, nil)
	assert.Equal(t, 1, res.exitCode)
	assert.True(t, strings.HasPrefix(res.stderr, "vurf: Error: "), res.stderr)
	assert.Contains(t, res.stderr, "Expected to find package 'missing'")
}

func runVurf(t *testing.T, args []string, envs []string) vurfResult {
	bin, err := filepath.Abs("../../vurf")
	require.NoError(t, err)

	if _, err := os.Stat(bin); err != nil {
		t.Skipf("vurf binary not built (%s)", err)
	}

	command := exec.Command(bin, append([]string{"--config", "config.toml"}, args...)...)
	command.Dir = exampleDir
	command.Env = append([]string{"PATH=" + os.Getenv("PATH")}, envs...)

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	res := vurfResult{}

	err = command.Run()
	if err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "running vurf: %s", err)
		res.exitCode = exitErr.ExitCode()
	}

	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}
