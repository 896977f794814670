// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"regexp"
	"strings"
)

// Shell identifies the shell a prompt is rendered for.
type Shell string

const (
	ShellNone Shell = "none"
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

var supportedShells = []Shell{ShellNone, ShellBash, ShellZsh, ShellFish}

// ParseShell validates a --shell flag value. An empty value is treated as ShellNone.
func ParseShell(value string) (Shell, error) {
	if value == "" {
		return ShellNone, nil
	}

	for _, shell := range supportedShells {
		if strings.EqualFold(value, string(shell)) {
			return shell, nil
		}
	}

	return "", fmt.Errorf("unsupported shell '%s', supported shells: %s", value, SupportedShells())
}

func SupportedShells() string {
	names := make([]string, len(supportedShells))
	for i, shell := range supportedShells {
		names[i] = string(shell)
	}

	return strings.Join(names, ", ")
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// WrapForShell marks ANSI escape sequences as zero width so the shell computes the prompt length correctly.
func WrapForShell(shell Shell, text string) string {
	var prefix, suffix string

	switch shell {
	case ShellBash:
		prefix, suffix = `\[`, `\]`
	case ShellZsh:
		prefix, suffix = `%{`, `%}`
	default:
		return text
	}

	return ansiEscape.ReplaceAllStringFunc(text, func(seq string) string {
		return prefix + seq + suffix
	})
}
