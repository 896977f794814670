// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersionSpec(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	require.Equal(t, "0.0.0-dev.0", GetVersionSpec().Version)

	tests := []struct {
		name    string
		version string
		want    VersionSpec
	}{
		{
			name:    "Release",
			version: "1.4.0 (commit 1234567890abcdef1234567890abcdef12345678)",
			want:    VersionSpec{Version: "1.4.0", Commit: "1234567890abcdef1234567890abcdef12345678"},
		},
		{
			name:    "NotSemver",
			version: "1.2 (commit 0000000000000000000000000000000000000000)",
			want:    VersionSpec{Version: "unknown", Commit: "0000000000000000000000000000000000000000"},
		},
		{name: "Malformed", version: "invalid", want: VersionSpec{Version: "unknown", Commit: "unknown"}},
		{name: "Empty", version: "", want: VersionSpec{Version: "unknown", Commit: "unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			require.Equal(t, tt.want, GetVersionSpec())
		})
	}
}
