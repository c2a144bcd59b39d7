package configsrv

import (
	"binary-play/types"
	"fmt"
	"path/filepath"

	"golang.org/x/text/language"
)

// ConfigManager defines the interface for managing the app configuration.
// ConfigGetStoredConfig returns the persisted values, without environment
// overrides; updates are merged into it.
type ConfigManager interface {
	ConfigGetConfig() types.AppConfig
	ConfigGetStoredConfig() types.AppConfig
	ConfigSave(cfg types.AppConfig) error
}

// Service handles configuration-related logic.
type Service struct {
	cm ConfigManager
}

// New creates a new Config service.
func New(cm ConfigManager) *Service {
	return &Service{
		cm: cm,
	}
}

// GetConfig returns the current configuration.
func (s *Service) GetConfig() types.AppConfig {
	return s.cm.ConfigGetConfig()
}

// SaveConfig merges the non-zero fields of cfg into the stored configuration
// and saves it. The returned bool reports whether the data directory changed.
func (s *Service) SaveConfig(cfg types.AppConfig) (string, bool) {
	current := s.cm.ConfigGetStoredConfig()
	oldDataDir := current.DataDir

	if cfg.DataDir != "" {
		current.DataDir = filepath.Clean(cfg.DataDir)
	}
	if cfg.Locale != "" {
		tag, err := language.Parse(cfg.Locale)
		if err != nil {
			return fmt.Sprintf("Error saving config: invalid locale %q", cfg.Locale), false
		}
		current.Locale = tag.String()
	}
	updateIfPositive(&current.MaxDepth, cfg.MaxDepth)
	updateIfPositive(&current.Workers, cfg.Workers)

	if err := s.cm.ConfigSave(current); err != nil {
		return fmt.Sprintf("Error saving config: %s", err.Error()), false
	}

	dataDirChanged := current.DataDir != oldDataDir
	return "Configuration saved successfully!", dataDirChanged
}

// SetInspectArchives toggles archive inspection, which SaveConfig cannot
// distinguish from an unset field.
func (s *Service) SetInspectArchives(enabled bool) error {
	cfg := s.cm.ConfigGetStoredConfig()
	cfg.InspectArchives = enabled
	if err := s.cm.ConfigSave(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func updateIfPositive(target *int, value int) {
	if value > 0 {
		*target = value
	}
}
