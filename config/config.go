package config

import (
	"binary-play/constants"
	"binary-play/types"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
)

// ConfigManager handles loading/saving. Config holds the values stored in
// the config file; BINARYPLAY_* environment overrides are applied on read
// and never written back.
type ConfigManager struct {
	Config     *types.AppConfig
	ConfigPath string
	Mu         sync.RWMutex
}

// NewConfigManager initializes the manager and determines the file path
func NewConfigManager() *ConfigManager {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to executable dir if home is not available
		exePath, err := os.Executable()
		if err != nil {
			exePath = "."
		}
		configPath := filepath.Join(filepath.Dir(exePath), "config.json")
		return &ConfigManager{
			ConfigPath: configPath,
			Config:     &types.AppConfig{},
		}
	}
	configPath := filepath.Join(home, constants.AppDir, constants.ConfigDir, "config.json")

	return &ConfigManager{
		ConfigPath: configPath,
		Config:     &types.AppConfig{},
	}
}

// Load reads the config from disk and checks the BINARYPLAY_* environment overrides.
func (cm *ConfigManager) Load() error {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()

	if _, err := os.Stat(cm.ConfigPath); os.IsNotExist(err) {
		if err := cm.createDefault(); err != nil {
			return err
		}
		_, err := withEnv(*cm.Config)
		return err
	}

	data, err := os.ReadFile(cm.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cm.Config); err != nil {
		return fmt.Errorf("failed to parse config json: %w", err)
	}

	_, err = withEnv(*cm.Config)
	return err
}

// withEnv overwrites only the fields whose variable is set.
func withEnv(cfg types.AppConfig) (types.AppConfig, error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	return cfg, nil
}

// GetConfig returns a copy of the effective config, environment overrides
// included (Thread-Safe). Invalid overrides are reported by Load and ignored here.
func (cm *ConfigManager) GetConfig() types.AppConfig {
	cfg := cm.GetStoredConfig()
	if effective, err := withEnv(cfg); err == nil {
		return effective
	}
	return cfg
}

// GetStoredConfig returns a copy of the config as stored on disk (Thread-Safe)
func (cm *ConfigManager) GetStoredConfig() types.AppConfig {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	return *cm.Config
}

// Save writes the given config to disk and makes it current
func (cm *ConfigManager) Save(newConfig types.AppConfig) error {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()

	*cm.Config = newConfig
	return cm.write()
}

// GetDefaultDataDir returns the EmulationStation data directory in the user's home
func GetDefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, constants.ESDataDir), nil
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() types.AppConfig {
	dataDir, _ := GetDefaultDataDir()
	if dataDir == "" {
		dataDir = filepath.Join(".", constants.ESDataDir)
	}
	return types.AppConfig{
		DataDir:         dataDir,
		InspectArchives: true,
		MaxDepth:        constants.DefaultMaxDepth,
	}
}

// createDefault generates a config file if none exists
func (cm *ConfigManager) createDefault() error {
	defaultConfig := DefaultConfig()
	cm.Config = &defaultConfig

	fmt.Fprintln(os.Stderr, "Config file not found. Creating default at:", cm.ConfigPath)
	return cm.write()
}

func (cm *ConfigManager) write() error {
	dir := filepath.Dir(cm.ConfigPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.Config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cm.ConfigPath, data, 0o644)
}
