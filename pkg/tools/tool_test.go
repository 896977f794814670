// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{name: "Release", output: "7.0.100\n", want: "v7.0.100"},
		{name: "Padded", output: " 6.0.1 \n", want: "v6.0.1"},
		{name: "CRLF", output: "8.0.204\r\n", want: "v8.0.204"},
		{name: "Preview", output: "9.0.100-preview.7.24407.12\n", want: "v9.0.100-preview.7.24407.12"},
		{name: "BuildMetadata", output: "8.0.100+abc123\n", want: "v8.0.100+abc123"},
		{name: "LeadingZeros", output: "08.0.100\n", want: "v08.0.100"},
		{name: "NotSemver", output: "6.0\n", want: "v6.0"},
		{name: "FreeText", output: "dotnet sdk 1.0.0-rc4-004771", want: "vdotnet sdk 1.0.0-rc4-004771"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeVersion(tt.output)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeVersionNoVersion(t *testing.T) {
	for _, output := range []string{"", " \n\t", "\xff\xfe7.0.100"} {
		_, err := NormalizeVersion(output)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrNoVersion))
	}
}

func TestToolInPath(t *testing.T) {
	found, err := ToolInPath("azdprompt-command-that-does-not-exist")
	require.NoError(t, err)
	require.False(t, found)
}
