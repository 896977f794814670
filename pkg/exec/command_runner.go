// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner exposes the contract for executing console commands for the specified runArgs
type CommandRunner interface {
	Run(ctx context.Context, args RunArgs) (RunResult, error)
}

type RunnerOptions struct {
	// Whether debug logging is enabled. False by default.
	DebugLogging bool
}

// Creates a new default instance of the CommandRunner.
// Passing nil will use the default values for RunnerOptions.
func NewCommandRunner(opt *RunnerOptions) CommandRunner {
	if opt == nil {
		opt = &RunnerOptions{}
	}

	return &commandRunner{
		debugLogging: opt.DebugLogging,
	}
}

// commandRunner is the default private implementation of the CommandRunner interface
// This implementation executes actual commands as child processes
type commandRunner struct {
	debugLogging bool
}

// Run runs the command specified in 'args'.
//
// Returns a RunResult that is the result of the command.
//   - If the underlying command exits unsuccessfully, *ExitError is returned. Other possible errors would likely be
//     a missing executable, I/O errors or context cancellation.
//   - The process is killed when ctx is done. Without a deadline on ctx, Run waits for the process indefinitely.
func (r *commandRunner) Run(ctx context.Context, args RunArgs) (RunResult, error) {
	if args.Cmd == "" {
		return RunResult{}, errors.New("command must be provided")
	}

	cmd := exec.CommandContext(ctx, args.Cmd, args.Args...)

	cmd.Dir = args.Cwd
	cmd.Env = appendEnv(args.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = new(bytes.Buffer)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logTitle := strings.Builder{}
	logBody := strings.Builder{}
	defer func() {
		logTitle.WriteString(logBody.String())
		log.Print(logTitle.String())
	}()

	logTitle.WriteString(fmt.Sprintf("Run exec: '%s %s' ", args.Cmd, strings.Join(args.Args, " ")))

	if r.debugLogging && len(args.Env) > 0 {
		logBody.WriteString("Additional env:\n")
		for _, kv := range args.Env {
			logBody.WriteString(fmt.Sprintf("   %s\n", kv))
		}
	}

	if err := cmd.Start(); err != nil {
		logTitle.WriteString(fmt.Sprintf(", failed to start: %v\n", err))
		return RunResult{ExitCode: -1}, err
	}

	err := cmd.Wait()

	if r.debugLogging {
		logStdOut := strings.TrimSuffix(stdout.String(), "\n")
		if len(logStdOut) > 0 {
			logBody.WriteString(fmt.Sprintf(
				"-------------------------------------stdout-------------------------------------------\n%s\n",
				logStdOut))
		}
		logStdErr := strings.TrimSuffix(stderr.String(), "\n")
		if len(logStdErr) > 0 {
			logBody.WriteString(fmt.Sprintf(
				"-------------------------------------stderr-------------------------------------------\n%s\n",
				logStdErr))
		}
	}

	result := NewRunResult(cmd.ProcessState.ExitCode(), stdout.String(), stderr.String())
	logTitle.WriteString(fmt.Sprintf(", exit code: %d\n", result.ExitCode))

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = NewExitError(*exitErr, args.Cmd, result.Stdout, result.Stderr)
	}

	return result, err
}

func appendEnv(env []string) []string {
	if len(env) > 0 {
		return append(os.Environ(), env...)
	}

	return nil
}
