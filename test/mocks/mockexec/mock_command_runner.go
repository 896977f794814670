// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mockexec

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/exec"
)

type CommandWhenPredicate func(args exec.RunArgs, command string) bool

// MockCommandRunner is a fake exec.CommandRunner that answers commands with canned results
// registered through When.
type MockCommandRunner struct {
	mu          sync.Mutex
	expressions []*CommandExpression
	calls       []exec.RunArgs
}

func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{}
}

func (m *MockCommandRunner) Run(ctx context.Context, args exec.RunArgs) (exec.RunResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, args)
	expressions := m.expressions
	m.mu.Unlock()

	command := strings.TrimSpace(args.Cmd + " " + strings.Join(args.Args, " "))

	var match *CommandExpression
	for _, expr := range expressions {
		if expr.predicateFn(args, command) {
			match = expr
			break
		}
	}

	if match == nil {
		panic(fmt.Sprintf("No mock found for command: '%s'", command))
	}

	if match.RunFn != nil {
		return match.RunFn(ctx, args)
	}

	return match.Response, match.Error
}

// Calls returns every RunArgs seen by the runner, in order.
func (m *MockCommandRunner) Calls() []exec.RunArgs {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]exec.RunArgs(nil), m.calls...)
}

func (m *MockCommandRunner) When(predicate CommandWhenPredicate) *CommandExpression {
	expr := CommandExpression{
		runner:      m,
		predicateFn: predicate,
	}

	m.mu.Lock()
	m.expressions = append(m.expressions, &expr)
	m.mu.Unlock()

	return &expr
}

type CommandExpression struct {
	Response    exec.RunResult
	Error       error
	RunFn       func(ctx context.Context, args exec.RunArgs) (exec.RunResult, error)
	runner      *MockCommandRunner
	predicateFn CommandWhenPredicate
}

func (e *CommandExpression) Respond(response exec.RunResult) *MockCommandRunner {
	e.Response = response
	return e.runner
}

func (e *CommandExpression) SetError(err error) *MockCommandRunner {
	e.Error = err
	return e.runner
}

// RespondFn computes the response when the command runs, e.g. to block until ctx is done.
func (e *CommandExpression) RespondFn(
	fn func(ctx context.Context, args exec.RunArgs) (exec.RunResult, error),
) *MockCommandRunner {
	e.RunFn = fn
	return e.runner
}
