// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"context"
	"log"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/exec"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/output"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/prompt"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/tools"
	dotnetcli "github.com/azure/azure-dev/cli/azdprompt/pkg/tools/dotnet"
)

const (
	ModuleName = "dotnet"
	Symbol     = "•NET "
)

// DefaultStyle is used unless the user configures another style for the module.
var DefaultStyle = output.NewStyle("bold", "blue")

// Detector shows the active .NET SDK version when the directory contains a solution, a project file,
// global.json or project.json.
type Detector struct {
	cli dotnetcli.DotNetCli
}

func NewDetector(cli dotnetcli.DotNetCli) *Detector {
	return &Detector{cli: cli}
}

// NewDefaultDetector creates a detector that runs the dotnet CLI through the given command runner.
func NewDefaultDetector(commandRunner exec.CommandRunner) *Detector {
	return NewDetector(dotnetcli.NewDotNetCli(commandRunner))
}

func (d *Detector) Name() string {
	return ModuleName
}

// Tools returns the external tools the detector runs.
func (d *Detector) Tools() []tools.ExternalTool {
	return []tools.ExternalTool{d.cli}
}

func (d *Detector) Detect(ctx context.Context, pc *prompt.Context) *prompt.Module {
	names, err := pc.DirFiles()
	if err != nil {
		log.Printf("dotnet: %v", err)
		return nil
	}

	files := Classify(names)
	if len(files) == 0 {
		return nil
	}

	log.Printf("dotnet: detected by %s (%s)", files[0].Name, files[0].Kind)

	version, err := d.cli.Version(ctx, pc.Dir)
	if err != nil {
		log.Printf("dotnet: %v", err)
		return nil
	}

	return prompt.NewModule(ModuleName, DefaultStyle).
		AddSegment("symbol", Symbol).
		AddSegment("version", version)
}
