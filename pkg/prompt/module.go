// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prompt

import (
	"context"
	"strings"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/output"
)

// Segment is a named fragment of a module's output.
type Segment struct {
	Name  string
	Value string
}

// Module is the rendered output of a detector.
type Module struct {
	Name     string
	Style    output.Style
	Segments []Segment
}

// NewModule creates an empty module with the given name and style.
func NewModule(name string, style output.Style) *Module {
	return &Module{
		Name:  name,
		Style: style,
	}
}

// AddSegment appends a segment and returns the module for chaining.
func (m *Module) AddSegment(name string, value string) *Module {
	m.Segments = append(m.Segments, Segment{Name: name, Value: value})
	return m
}

// Segment returns the value of the named segment.
func (m *Module) Segment(name string) (string, bool) {
	for _, segment := range m.Segments {
		if segment.Name == name {
			return segment.Value, true
		}
	}

	return "", false
}

// Text returns the segment values without styling.
func (m *Module) Text() string {
	var sb strings.Builder
	for _, segment := range m.Segments {
		sb.WriteString(segment.Value)
	}

	return sb.String()
}

func (m *Module) String() string {
	return m.Style.Sprint(m.Text())
}

// Detector decides whether a module applies to a prompt context and renders it.
//
// Detect returns nil when the module is absent. Detectors never fail: any error while probing the
// environment means the module is simply not shown.
type Detector interface {
	Name() string
	Detect(ctx context.Context, pc *Context) *Module
}
