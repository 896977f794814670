// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prompt

import (
	"fmt"
	"io/fs"
	"os"
	"slices"
)

// DefaultMaxDirEntries caps the number of directory entries handed to detectors.
const DefaultMaxDirEntries = 1000

// Context is the information shared with every detector while a prompt is rendered.
type Context struct {
	// Dir is the directory the prompt is rendered for.
	Dir string
	// FS is rooted at Dir.
	FS fs.FS
	// MaxDirEntries limits how many files DirFiles returns. Zero or less means no limit.
	MaxDirEntries int
}

// NewContext creates a Context for the given directory on the local file system.
func NewContext(dir string) *Context {
	return &Context{
		Dir:           dir,
		FS:            os.DirFS(dir),
		MaxDirEntries: DefaultMaxDirEntries,
	}
}

// DirFiles returns the names of the files directly inside the context directory, sorted by name.
// Directories are skipped.
func (c *Context) DirFiles() ([]string, error) {
	entries, err := fs.ReadDir(c.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("reading directory '%s': %w", c.Dir, err)
	}

	files := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}

	slices.Sort(files)

	if c.MaxDirEntries > 0 && len(files) > c.MaxDirEntries {
		files = files[:c.MaxDirEntries]
	}

	return files, nil
}
