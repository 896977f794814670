// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"log"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/modules"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/output"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/tools"
	"github.com/spf13/cobra"
)

// toolDetector is implemented by detectors that depend on external tools.
type toolDetector interface {
	Tools() []tools.ExternalTool
}

type modulesFlags struct {
	check bool
}

func modulesCmd(rc *rootContext) *cobra.Command {
	flags := &modulesFlags{}

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the available modules.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			disabled := map[string]bool{}
			if cfg, err := loadUserConfig(); err != nil {
				log.Printf("failed loading user configuration: %v", err)
			} else if renderer, err := newRenderer(cfg, nil); err != nil {
				log.Printf("invalid user configuration: %v", err)
			} else {
				disabled = renderer.Disabled
			}

			out := cmd.OutOrStdout()
			for _, detector := range modules.Detectors(rc.commandRunner) {
				line := output.WithHighLightFormat(detector.Name())
				if disabled[detector.Name()] {
					line += output.WithGrayFormat(" (disabled)")
				}
				fmt.Fprintln(out, line)

				td, ok := detector.(toolDetector)
				if !flags.check || !ok {
					continue
				}

				for _, tool := range td.Tools() {
					installed, err := tool.CheckInstalled(cmd.Context())
					switch {
					case err != nil:
						fmt.Fprintf(out, "  %s: %s\n", tool.Name(), output.WithWarningFormat("%v", err))
					case installed:
						fmt.Fprintf(out, "  %s: installed\n", tool.Name())
					default:
						fmt.Fprintf(out, "  %s: %s, see %s\n",
							tool.Name(), output.WithWarningFormat("not found"), tool.InstallUrl())
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.check, "check", false, "Checks whether the tools used by each module are installed.")

	return cmd
}
