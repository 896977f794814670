// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"context"
	"fmt"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/exec"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/tools"
)

const dotnetCmd = "dotnet"

// versionEnv keeps first-run banners out of the version output.
var versionEnv = []string{"DOTNET_NOLOGO=1", "DOTNET_SKIP_FIRST_TIME_EXPERIENCE=1"}

type DotNetCli interface {
	tools.ExternalTool
	// Version returns the SDK version `dotnet --version` reports when run in dir, formatted as `v<version>`.
	// The SDK can be pinned per directory by global.json.
	Version(ctx context.Context, dir string) (string, error)
}

type dotNetCli struct {
	commandRunner exec.CommandRunner
}

func (cli *dotNetCli) Name() string {
	return ".NET CLI"
}

func (cli *dotNetCli) InstallUrl() string {
	return "https://dotnet.microsoft.com/download"
}

func (cli *dotNetCli) CheckInstalled(ctx context.Context) (bool, error) {
	return tools.ToolInPath(dotnetCmd)
}

func (cli *dotNetCli) Version(ctx context.Context, dir string) (string, error) {
	runArgs := exec.NewRunArgs(dotnetCmd, "--version").
		WithCwd(dir).
		WithEnv(versionEnv)

	res, err := cli.commandRunner.Run(ctx, runArgs)
	if err != nil {
		return "", fmt.Errorf("checking %s version: %w", cli.Name(), err)
	}

	version, err := tools.NormalizeVersion(res.Stdout)
	if err != nil {
		return "", fmt.Errorf("reading %s version: %w", cli.Name(), err)
	}

	return version, nil
}

func NewDotNetCli(commandRunner exec.CommandRunner) DotNetCli {
	return &dotNetCli{
		commandRunner: commandRunner,
	}
}
