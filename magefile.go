//go:build mage
// +build mage

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

type AzdPrompt mg.Namespace

// Build compiles azdprompt into ./bin. Set AZDPROMPT_VERSION to stamp a release version.
func (a AzdPrompt) Build(ctx context.Context) error {
	args := []string{"build", "-o", "./bin/azdprompt"}

	if version := os.Getenv("AZDPROMPT_VERSION"); version != "" {
		args = append(args,
			"-ldflags",
			fmt.Sprintf("-X 'github.com/azure/azure-dev/cli/azdprompt/internal.Version=%s'", version))
	}

	cmdStr, cmd := runIn(".", "go", append(args, ".")...)
	fmt.Println(cmdStr)
	return cmd()
}

func (a AzdPrompt) Test(ctx context.Context) error {
	cmdStr, cmd := runIn(
		".",
		"go",
		"test",
		"./...",
	)
	fmt.Println(cmdStr)
	return cmd()
}

func runIn(cwd string, cmd string, args ...string) (string, func() error) {
	c := exec.Command(cmd, args...)
	c.Dir = cwd
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.String(), func() error {
		return c.Run()
	}
}
