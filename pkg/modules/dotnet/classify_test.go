// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		name string
		kind FileKind
	}{
		{name: "global.json", kind: GlobalJson},
		{name: "Global.JSON", kind: GlobalJson},
		{name: "GLOBAL.JSON", kind: GlobalJson},
		{name: "project.json", kind: ProjectJson},
		{name: "Project.Json", kind: ProjectJson},
		{name: "app.sln", kind: SolutionFile},
		{name: "App.SLN", kind: SolutionFile},
		{name: "my.app.sln", kind: SolutionFile},
		{name: "app.csproj", kind: ProjectFile},
		{name: "app.CSPROJ", kind: ProjectFile},
		{name: "lib.fsproj", kind: ProjectFile},
		{name: "Lib.FsProj", kind: ProjectFile},
		{name: "legacy.xproj", kind: ProjectFile},
		{name: "sln.csproj", kind: ProjectFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := ClassifyFile(tt.name)
			require.True(t, ok)
			require.Equal(t, tt.kind, kind)
		})
	}
}

func TestClassifyFile_NoMatch(t *testing.T) {
	names := []string{
		"Program.cs",
		"package.json",
		"global.json.bak",
		"my-global.json",
		"app.vbproj",
		"app.sln.old",
		"README.md",
		"Makefile",
		"",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, ok := ClassifyFile(name)
			require.False(t, ok)
		})
	}
}

// A bare file named after an extension has no extension of its own and is not a marker.
func TestClassifyFile_ExtensionOnlyNames(t *testing.T) {
	for _, name := range []string{"sln", "SLN", "csproj", "fsproj", "xproj", ".sln", ".csproj"} {
		t.Run(name, func(t *testing.T) {
			_, ok := ClassifyFile(name)
			require.False(t, ok)
		})
	}
}

func TestClassify(t *testing.T) {
	names := []string{"README.md", "app.sln", "src", "Global.JSON", "app.CSPROJ", "Program.cs"}

	files := Classify(names)
	require.Equal(t, []ClassifiedFile{
		{Name: "app.sln", Kind: SolutionFile},
		{Name: "Global.JSON", Kind: GlobalJson},
		{Name: "app.CSPROJ", Kind: ProjectFile},
	}, files)

	require.Empty(t, Classify(nil))
	require.Empty(t, Classify([]string{"main.go", "go.mod"}))
}

func TestFileKind_String(t *testing.T) {
	require.Equal(t, "global.json", GlobalJson.String())
	require.Equal(t, "project.json", ProjectJson.String())
	require.Equal(t, "project file", ProjectFile.String())
	require.Equal(t, "solution file", SolutionFile.String())
	require.Equal(t, "unknown", FileKind(42).String())
}
