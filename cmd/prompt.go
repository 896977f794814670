// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/modules"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/output"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/prompt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type promptFlags struct {
	shell string
}

func (f *promptFlags) Bind(local *pflag.FlagSet) {
	local.StringVar(
		&f.shell,
		"shell",
		"",
		fmt.Sprintf("The shell the prompt is rendered for (%s).", output.SupportedShells()))
}

func promptCmd(rc *rootContext) *cobra.Command {
	flags := &promptFlags{}

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render all enabled modules for the current directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := output.ParseShell(flags.shell)
			if err != nil {
				return err
			}

			renderer := loadRenderer(cmd, modules.Detectors(rc.commandRunner))
			return render(cmd, rc, renderer, shell)
		},
	}

	flags.Bind(cmd.Flags())

	return cmd
}

func moduleCmd(rc *rootContext) *cobra.Command {
	flags := &promptFlags{}

	cmd := &cobra.Command{
		Use:   "module <name>",
		Short: "Render a single module for the current directory.",
		Long:  "Render a single module for the current directory, even when it is disabled. Prints nothing when absent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := output.ParseShell(flags.shell)
			if err != nil {
				return err
			}

			detectors := modules.Detectors(rc.commandRunner)
			detector, has := modules.Find(detectors, args[0])
			if !has {
				return fmt.Errorf(
					"unknown module '%s', available modules: %s", args[0], strings.Join(modules.Names(detectors), ", "))
			}

			renderer := loadRenderer(cmd, []prompt.Detector{detector})
			renderer.Disabled = nil

			return render(cmd, rc, renderer, shell)
		},
	}

	flags.Bind(cmd.Flags())

	return cmd
}

// loadRenderer applies the user configuration. A broken configuration must never break the prompt, so it is
// reported and the defaults are used instead.
func loadRenderer(cmd *cobra.Command, detectors []prompt.Detector) *prompt.Renderer {
	cfg, err := loadUserConfig()
	if err == nil {
		var renderer *prompt.Renderer
		renderer, err = newRenderer(cfg, detectors)
		if err == nil {
			return renderer
		}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), output.WithWarningFormat("warning: %v, using default settings", err))

	return &prompt.Renderer{Detectors: detectors}
}

func render(cmd *cobra.Command, rc *rootContext, renderer *prompt.Renderer, shell output.Shell) error {
	// The prompt is captured by the shell, so stdout is never a terminal. Style unless asked not to.
	color.NoColor = rc.opts.NoColor

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	rendered := renderer.Render(cmd.Context(), prompt.NewContext(dir))
	fmt.Fprint(cmd.OutOrStdout(), renderer.Format(rendered, shell))

	return nil
}
