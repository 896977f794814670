// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/azure/azure-dev/cli/azdprompt/internal"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/exec"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rootContext carries the state shared by every command once flags are parsed.
type rootContext struct {
	opts          *internal.GlobalCommandOptions
	commandRunner exec.CommandRunner
}

// NewRootCmd creates the azdprompt command tree. When commandRunner is nil, external tools are run as real child
// processes.
func NewRootCmd(commandRunner exec.CommandRunner) *cobra.Command {
	prevDir := ""
	rc := &rootContext{
		opts:          &internal.GlobalCommandOptions{},
		commandRunner: commandRunner,
	}
	opts := rc.opts

	cmd := &cobra.Command{
		Use:   "azdprompt",
		Short: "Render shell prompt segments for the current directory.",
		Long: heredoc.Doc(`
			azdprompt inspects the current directory and renders short prompt segments for the
			toolchains it recognizes, such as the active .NET SDK version.

			Add it to your shell prompt, for example in ~/.bashrc:

				PS1='$(azdprompt prompt --shell bash) \$ '

			Modules can be disabled or restyled in ~/.azdprompt/config.json.`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Cwd != "" {
				current, err := os.Getwd()

				if err != nil {
					return err
				}

				prevDir = current

				if err := os.Chdir(opts.Cwd); err != nil {
					return fmt.Errorf("failed to change directory to %s: %w", opts.Cwd, err)
				}
			}

			log.SetFlags(log.LstdFlags | log.Lshortfile)

			if opts.EnableDebugLogging {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}

			if _, has := os.LookupEnv("NO_COLOR"); has {
				opts.NoColor = true
			}

			if opts.NoColor {
				color.NoColor = true
			}

			if rc.commandRunner == nil {
				rc.commandRunner = exec.NewCommandRunner(&exec.RunnerOptions{
					DebugLogging: opts.EnableDebugLogging,
				})
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// This is just for cleanliness and making writing tests simpler since
			// we can just remove the entire project folder afterwards.
			// In practical execution, this wouldn't affect much, since the CLI is exiting.
			if prevDir != "" {
				return os.Chdir(prevDir)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.Flags().BoolP("help", "h", false, "Help for "+cmd.Name())
	cmd.PersistentFlags().StringVarP(&opts.Cwd, "cwd", "C", "", "Sets the current working directory.")
	cmd.PersistentFlags().BoolVar(&opts.EnableDebugLogging, "debug", false, "Enables debugging and diagnostics logging.")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disables colored output.")

	cmd.AddCommand(promptCmd(rc))
	cmd.AddCommand(moduleCmd(rc))
	cmd.AddCommand(modulesCmd(rc))
	cmd.AddCommand(configCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}
