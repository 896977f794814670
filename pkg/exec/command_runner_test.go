// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell")
	}
}

func TestRunCommand(t *testing.T) {
	skipOnWindows(t)

	runner := NewCommandRunner(nil)
	res, err := runner.Run(context.Background(), NewRunArgs("sh", "-c", "echo 7.0.100"))
	require.NoError(t, err)
	require.Equal(t, 0, res.ExitCode)
	require.Equal(t, "7.0.100\n", res.Stdout)
}

func TestRunCommandWithCwdAndEnv(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	runner := NewCommandRunner(nil)
	res, err := runner.Run(context.Background(),
		NewRunArgs("sh", "-c", "pwd; echo $AZDPROMPT_TEST_VALUE").
			WithCwd(dir).
			WithEnv([]string{"AZDPROMPT_TEST_VALUE=hello"}))
	require.NoError(t, err)

	wd, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
	require.Len(t, lines, 2)
	gotWd, err := filepath.EvalSymlinks(lines[0])
	require.NoError(t, err)
	require.Equal(t, wd, gotWd)
	require.Equal(t, "hello", lines[1])
}

func TestRunCommandExitError(t *testing.T) {
	skipOnWindows(t)

	runner := NewCommandRunner(&RunnerOptions{DebugLogging: true})
	res, err := runner.Run(context.Background(), NewRunArgs("sh", "-c", "echo oops >&2; exit 3"))
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 3, exitErr.ExitCode)
	require.Equal(t, "sh", exitErr.Cmd)
	require.Equal(t, "oops\n", exitErr.StderrOutput())
	require.Equal(t, "exit code: 3, stdout: , stderr: oops\n", exitErr.Error())
	require.Equal(t, 3, res.ExitCode)
	require.Equal(t, "oops\n", res.Stderr)
}

func TestRunCommandNotFound(t *testing.T) {
	runner := NewCommandRunner(nil)
	res, err := runner.Run(context.Background(), NewRunArgs("azdprompt-command-that-does-not-exist"))
	require.Error(t, err)
	require.True(t, errors.Is(err, exec.ErrNotFound))
	require.Equal(t, -1, res.ExitCode)
}

func TestRunCommandEmpty(t *testing.T) {
	runner := NewCommandRunner(nil)
	_, err := runner.Run(context.Background(), RunArgs{})
	require.Error(t, err)
}

func TestKillCommand(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	s := time.Now()

	runner := NewCommandRunner(nil)
	_, err := runner.Run(ctx, NewRunArgs("sh", "-c", "sleep 10"))
	require.Error(t, err)

	// should be pretty much instant since our context was cancelled
	require.Less(t, time.Since(s), 5*time.Second)
}

func TestRunArgsBuilders(t *testing.T) {
	args := NewRunArgs("dotnet", "--version").
		WithCwd("/tmp").
		WithEnv([]string{"DOTNET_NOLOGO=1"})

	require.Equal(t, "dotnet", args.Cmd)
	require.Equal(t, []string{"--version"}, args.Args)
	require.Equal(t, "/tmp", args.Cwd)
	require.Equal(t, []string{"DOTNET_NOLOGO=1"}, args.Env)
}

func TestNewTestExitError(t *testing.T) {
	err := NewTestExitError("dotnet", 145, "no sdk")
	require.Equal(t, "exit code: 145, stdout: , stderr: no sdk", err.Error())

	require.Equal(t, "exit code: 145", NewTestExitError("dotnet", 145, "").Error())
}
