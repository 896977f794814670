// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tools

import (
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"
	"unicode/utf8"
)

// ErrNoVersion is returned when a tool ran but did not report a usable version.
var ErrNoVersion = errors.New("no version reported")

type ExternalTool interface {
	CheckInstalled(ctx context.Context) (bool, error)
	InstallUrl() string
	Name() string
}

// ToolInPath checks to see if a program can be found on the PATH, as exec.LookPath
// does, but returns "(false, nil)" in the case where os.LookPath would return
// exec.ErrNotFound.
func ToolInPath(name string) (bool, error) {
	_, err := osexec.LookPath(name)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, osexec.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed searching for `%s` on PATH: %w", name, err)
	}
}

// NormalizeVersion turns the raw output of a `--version` flag into a display version of the form `v<version>`.
//
// Surrounding whitespace is trimmed and the rest is kept as printed, so preview and other non-semver
// versions show up unchanged. Output that is empty or not valid UTF-8 yields ErrNoVersion.
func NormalizeVersion(cliOutput string) (string, error) {
	if !utf8.ValidString(cliOutput) {
		return "", fmt.Errorf("%w: output is not valid UTF-8", ErrNoVersion)
	}

	raw := strings.TrimSpace(cliOutput)
	if raw == "" {
		return "", ErrNoVersion
	}

	return "v" + raw, nil
}
