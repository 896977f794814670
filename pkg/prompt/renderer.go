// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prompt

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/output"
	"golang.org/x/sync/errgroup"
)

const DefaultSeparator = " "

// Renderer runs detectors against a prompt context and assembles their output.
type Renderer struct {
	Detectors []Detector
	// Disabled holds the names of detectors that must not run.
	Disabled map[string]bool
	// Styles overrides the style of a module, by module name.
	Styles map[string]output.Style
	// Timeout bounds each detector. Zero means detectors run until they return.
	Timeout time.Duration
	// Separator is placed between rendered modules. Defaults to DefaultSeparator.
	Separator string
}

// Render runs every enabled detector concurrently and returns the present modules in detector order.
func (r *Renderer) Render(ctx context.Context, pc *Context) []*Module {
	results := make([]*Module, len(r.Detectors))

	var g errgroup.Group
	for i, detector := range r.Detectors {
		if r.Disabled[detector.Name()] {
			log.Printf("module '%s' is disabled", detector.Name())
			continue
		}

		g.Go(func() error {
			results[i] = r.detect(ctx, detector, pc)
			return nil
		})
	}

	g.Wait()

	modules := []*Module{}
	for _, module := range results {
		if module != nil {
			modules = append(modules, module)
		}
	}

	return modules
}

func (r *Renderer) detect(ctx context.Context, detector Detector, pc *Context) *Module {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	start := time.Now()
	module := detector.Detect(ctx, pc)
	log.Printf("module '%s' evaluated in %s, present: %t", detector.Name(), time.Since(start), module != nil)

	if err := ctx.Err(); err != nil {
		log.Printf("discarding module '%s': %v", detector.Name(), err)
		return nil
	}

	if module == nil {
		return nil
	}

	if style, has := r.Styles[module.Name]; has {
		styled := *module
		styled.Style = style
		module = &styled
	}

	return module
}

// Format joins the rendered modules into a prompt string for the given shell.
func (r *Renderer) Format(modules []*Module, shell output.Shell) string {
	separator := r.Separator
	if separator == "" {
		separator = DefaultSeparator
	}

	rendered := make([]string, 0, len(modules))
	for _, module := range modules {
		rendered = append(rendered, module.String())
	}

	return output.WrapForShell(shell, strings.Join(rendered, separator))
}
