package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/azure/azure-dev/cli/azdprompt/pkg/osutil"
)

// FileConfigManager provides the ability to load, parse and save configuration files
type FileConfigManager interface {
	// Saves the configuration to the specified file path
	// Path is automatically created if it does not exist
	Save(config Config, filePath string) error

	// Loads configuration from the specified file path
	Load(filePath string) (Config, error)

	// Loads configuration from the specified file path, returning an empty configuration when the file
	// does not exist
	LoadOrEmpty(filePath string) (Config, error)
}

// NewFileConfigManager creates a new FileConfigManager instance
func NewFileConfigManager(configManager Manager) FileConfigManager {
	return &fileConfigManager{
		manager: configManager,
	}
}

type fileConfigManager struct {
	manager Manager
}

func (m *fileConfigManager) Load(filePath string) (Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed opening configuration file: %w", err)
	}

	defer file.Close()

	return m.manager.Load(file)
}

func (m *fileConfigManager) LoadOrEmpty(filePath string) (Config, error) {
	cfg, err := m.Load(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return NewEmptyConfig(), nil
	}

	return cfg, err
}

func (m *fileConfigManager) Save(c Config, filePath string) error {
	folderPath := filepath.Dir(filePath)
	if err := os.MkdirAll(folderPath, osutil.PermissionDirectory); err != nil {
		return fmt.Errorf("failed creating config directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, osutil.PermissionFile)
	if err != nil {
		return fmt.Errorf("failed creating config file: %w", err)
	}
	defer file.Close()

	return m.manager.Save(c, file)
}
