// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"regexp"

	"github.com/blang/semver/v4"
)

// Version is the version string printed out by the `version` command.
// It's updated using ldflags in CI.
var Version = "0.0.0-dev.0 (commit 0000000000000000000000000000000000000000)"

var versionSpecRegex = regexp.MustCompile(`^(\S+) \(commit ([0-9a-f]{40})\)$`)

// VersionSpec describes the build of azdprompt.
type VersionSpec struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// GetVersionSpec parses Version. Version is "unknown" when it is not a semantic version, Commit when Version is
// malformed.
func GetVersionSpec() VersionSpec {
	matches := versionSpecRegex.FindStringSubmatch(Version)
	if matches == nil {
		return VersionSpec{Version: "unknown", Commit: "unknown"}
	}

	if _, err := semver.Parse(matches[1]); err != nil {
		return VersionSpec{Version: "unknown", Commit: matches[2]}
	}

	return VersionSpec{Version: matches[1], Commit: matches[2]}
}
