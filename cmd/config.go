// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/config"
	"github.com/azure/azure-dev/cli/azdprompt/pkg/output"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "config",
		Short: "Manage azdprompt configuration.",
	}

	root.AddCommand(configListCmd())
	root.AddCommand(configGetCmd())
	root.AddCommand(configSetCmd())
	root.AddCommand(configUnsetCmd())

	return root
}

// azdprompt config list

func configListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists all configuration values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadUserConfig()
			if err != nil {
				return err
			}

			if err := output.FormatJson(cfg.Raw(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed formatting config values: %w", err)
			}

			return nil
		},
	}
}

// azdprompt config get <path>

func configGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Gets a configuration value. Strings are printed as is, other values as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadUserConfig()
			if err != nil {
				return err
			}

			path := args[0]
			if str, ok := cfg.GetString(path); ok {
				fmt.Fprintln(cmd.OutOrStdout(), str)
				return nil
			}

			value, ok := cfg.Get(path)
			if !ok {
				return fmt.Errorf("no value stored at path '%s'", path)
			}

			if err := output.FormatJson(value, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed formatting config value: %w", err)
			}

			return nil
		},
	}
}

// azdprompt config set <path> <value>

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Sets a configuration value. Values that are valid JSON, like true or 1000, are stored as JSON.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadUserConfig()
			if err != nil {
				return err
			}

			path := args[0]
			value := parseConfigValue(args[1])

			if err := cfg.Set(path, value); err != nil {
				return fmt.Errorf("failed setting configuration value '%s' to '%s': %w", path, args[1], err)
			}

			return saveUserConfig(cfg)
		},
	}
}

// azdprompt config unset <path>

func configUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <path>",
		Short: "Removes a configuration value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadUserConfig()
			if err != nil {
				return err
			}

			if err := cfg.Unset(args[0]); err != nil {
				return fmt.Errorf("failed removing configuration with path '%s': %w", args[0], err)
			}

			return saveUserConfig(cfg)
		},
	}
}

// parseConfigValue keeps JSON scalars typed, so that `set modules.dotnet.disabled true` stores a boolean.
// Anything else, including JSON objects and arrays, is stored as a string.
func parseConfigValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}

	switch value.(type) {
	case bool, float64, string:
		return value
	default:
		return raw
	}
}

func saveUserConfig(cfg config.Config) error {
	configFilePath, err := config.GetUserConfigFilePath()
	if err != nil {
		return err
	}

	if err := config.NewFileConfigManager(config.NewManager()).Save(cfg, configFilePath); err != nil {
		return fmt.Errorf("failed saving configuration: %w", err)
	}

	return nil
}
