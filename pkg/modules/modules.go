// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package modules holds the table of prompt modules known to azdprompt.
//
// Each module is a prompt.Detector. The order of the table is the order in which modules appear in the prompt.
package modules

import (
	"github.com/azure/azure-dev/cli/azdprompt/pkg/exec"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/modules/dotnet"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/prompt"
)

// Detectors returns every known detector. External tools are run through commandRunner.
func Detectors(commandRunner exec.CommandRunner) []prompt.Detector {
	return []prompt.Detector{
		dotnet.NewDefaultDetector(commandRunner),
	}
}

// Find returns the detector with the given name.
func Find(detectors []prompt.Detector, name string) (prompt.Detector, bool) {
	for _, detector := range detectors {
		if detector.Name() == name {
			return detector, true
		}
	}

	return nil, false
}

// Names returns the names of the given detectors, in order.
func Names(detectors []prompt.Detector) []string {
	names := make([]string, len(detectors))
	for i, detector := range detectors {
		names[i] = detector.Name()
	}

	return names
}
