// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"

	"github.com/azure/azure-dev/cli/azdprompt/internal"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type versionFlags struct {
	outputFormat string
}

func (v *versionFlags) Bind(local *pflag.FlagSet) {
	local.StringVarP(
		&v.outputFormat,
		"output",
		"o",
		string(output.NoneFormat),
		fmt.Sprintf("Output format (supported formats are %s, %s)", output.NoneFormat, output.JsonFormat))
}

func versionCmd() *cobra.Command {
	flags := &versionFlags{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of azdprompt.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(flags.outputFormat, output.NoneFormat, output.JsonFormat)
			if err != nil {
				return err
			}

			switch format {
			case output.JsonFormat:
				return output.FormatJson(internal.GetVersionSpec(), cmd.OutOrStdout())
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "azdprompt version %s\n", internal.Version)
			}

			return nil
		},
	}

	flags.Bind(cmd.Flags())

	return cmd
}
