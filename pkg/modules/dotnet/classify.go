// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dotnet

import (
	"strings"
)

// FileKind identifies why a file marks a directory as a .NET project.
type FileKind int

const (
	ProjectJson FileKind = iota
	ProjectFile
	GlobalJson
	SolutionFile
)

func (k FileKind) String() string {
	switch k {
	case ProjectJson:
		return "project.json"
	case ProjectFile:
		return "project file"
	case GlobalJson:
		return "global.json"
	case SolutionFile:
		return "solution file"
	}

	return "unknown"
}

// ClassifiedFile is a directory entry recognized as .NET evidence.
type ClassifiedFile struct {
	Name string
	Kind FileKind
}

// Classify returns the entries that mark a .NET project, in the order given.
func Classify(names []string) []ClassifiedFile {
	files := []ClassifiedFile{}
	for _, name := range names {
		if kind, ok := ClassifyFile(name); ok {
			files = append(files, ClassifiedFile{Name: name, Kind: kind})
		}
	}

	return files
}

// ClassifyFile matches a file name, case-insensitively, against the .NET project markers.
//
// Only the extension is considered for solution and project files: a file named just "sln" or "csproj"
// is not a marker, and neither is a dot file such as ".sln".
func ClassifyFile(name string) (FileKind, bool) {
	lowerName := strings.ToLower(name)

	switch lowerName {
	case "global.json":
		return GlobalJson, true
	case "project.json":
		return ProjectJson, true
	}

	switch extension(lowerName) {
	case "sln":
		return SolutionFile, true
	case "csproj", "fsproj", "xproj":
		return ProjectFile, true
	}

	return 0, false
}

// extension returns the text after the last dot, without the dot. A leading dot does not start an extension.
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}

	return name[i+1:]
}
