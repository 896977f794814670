// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/config"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/output"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/prompt"
)

// promptSettings is the "prompt" section of the user configuration.
type promptSettings struct {
	Separator      string `json:"separator"`
	CommandTimeout string `json:"commandTimeout"`
}

// moduleSettings is an entry of the "modules" section of the user configuration, keyed by module name.
type moduleSettings struct {
	Disabled bool   `json:"disabled"`
	Style    string `json:"style"`
}

func loadUserConfig() (config.Config, error) {
	configFilePath, err := config.GetUserConfigFilePath()
	if err != nil {
		return nil, err
	}

	log.Printf("loading user configuration from %s", configFilePath)

	return config.NewFileConfigManager(config.NewManager()).LoadOrEmpty(configFilePath)
}

// newRenderer builds a renderer for the detectors, applying the user configuration.
func newRenderer(cfg config.Config, detectors []prompt.Detector) (*prompt.Renderer, error) {
	renderer := &prompt.Renderer{
		Detectors: detectors,
		Disabled:  map[string]bool{},
		Styles:    map[string]output.Style{},
	}

	var ps promptSettings
	if _, err := cfg.GetSection("prompt", &ps); err != nil {
		return nil, fmt.Errorf("reading prompt settings: %w", err)
	}

	renderer.Separator = ps.Separator

	if ps.CommandTimeout != "" {
		timeout, err := time.ParseDuration(ps.CommandTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid prompt.commandTimeout '%s': %w", ps.CommandTimeout, err)
		}

		renderer.Timeout = timeout
	}

	modules := map[string]moduleSettings{}
	if _, err := cfg.GetSection("modules", &modules); err != nil {
		return nil, fmt.Errorf("reading module settings: %w", err)
	}

	for name, settings := range modules {
		if settings.Disabled {
			renderer.Disabled[name] = true
		}

		if settings.Style != "" {
			style, err := output.ParseStyle(settings.Style)
			if err != nil {
				return nil, fmt.Errorf("invalid style for module '%s': %w", name, err)
			}

			renderer.Styles[name] = style
		}
	}

	return renderer, nil
}
