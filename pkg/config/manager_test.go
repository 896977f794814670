// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SaveAndLoadConfig(t *testing.T) {
	t.Setenv(ConfigDirEnvVarName, t.TempDir())

	var promptConfig Config = NewConfig(
		map[string]any{
			"modules": map[string]any{
				"dotnet": map[string]any{
					"style": "bold purple",
				},
			},
		},
	)

	configFilePath, err := GetUserConfigFilePath()
	require.NoError(t, err)

	configManager := NewFileConfigManager(NewManager())
	err = configManager.Save(promptConfig, configFilePath)
	require.NoError(t, err)

	existingConfig, err := configManager.Load(configFilePath)
	require.NoError(t, err)
	require.NotNil(t, existingConfig)
	require.Equal(t, promptConfig, existingConfig)
}

func Test_SaveOverwritesLongerConfig(t *testing.T) {
	configFilePath := filepath.Join(t.TempDir(), "nested", "config.json")
	configManager := NewFileConfigManager(NewManager())

	long := NewConfig(map[string]any{"prompt": map[string]any{"separator": "a very long separator value"}})
	require.NoError(t, configManager.Save(long, configFilePath))

	short := NewConfig(map[string]any{"a": "b"})
	require.NoError(t, configManager.Save(short, configFilePath))

	loaded, err := configManager.Load(configFilePath)
	require.NoError(t, err)
	require.Equal(t, short, loaded)
}

func Test_LoadOrEmpty(t *testing.T) {
	configManager := NewFileConfigManager(NewManager())

	cfg, err := configManager.LoadOrEmpty(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.True(t, cfg.IsEmpty())

	invalid := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(invalid, []byte("{not json"), 0600))

	_, err = configManager.LoadOrEmpty(invalid)
	require.Error(t, err)
}

func Test_ManagerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	manager := NewManager()

	require.NoError(t, manager.Save(NewConfig(map[string]any{"prompt": map[string]any{"separator": " "}}), &buf))

	cfg, err := manager.Load(&buf)
	require.NoError(t, err)

	separator, ok := cfg.GetString("prompt.separator")
	require.True(t, ok)
	require.Equal(t, " ", separator)
}

func Test_GetUserConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "azdprompt")
	t.Setenv(ConfigDirEnvVarName, dir)

	configDir, err := GetUserConfigDir()
	require.NoError(t, err)
	require.Equal(t, dir, configDir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
