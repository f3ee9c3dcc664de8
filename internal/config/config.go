// Package config loads the application configuration: built-in
// defaults, overlaid by the user's TOML file, overlaid by command-line
// flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/inkwell-editor/inkwell/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`
	Surface SurfaceConfig `toml:"surface"`
}

// SurfaceConfig holds writing-surface settings.
type SurfaceConfig struct {
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	StatusBarHeight int  `toml:"status_bar_height"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Surface: SurfaceConfig{
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: DefaultSystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
	}
}

// loadFromFile reads a TOML config file. A missing file is not an error.
func loadFromFile(filePath string) (*Config, *toml.MetaData, error) {
	cfg := &Config{}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, fmt.Errorf("error checking config file %q: %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file %q: %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("config file %q: unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, &metadata, nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Surface.ScrollOff < 0 {
		c.Surface.ScrollOff = defaults.Surface.ScrollOff
	}
	if c.Surface.StatusBarHeight <= 0 {
		c.Surface.StatusBarHeight = defaults.Surface.StatusBarHeight
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates defaults, file, flag overrides and validation.
// It runs once; subsequent calls return the first result.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			if configDir, err := os.UserConfigDir(); err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, metadata, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				cfg.merge(fileCfg, metadata)
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})
	return loadedConfig, loadErr
}

// merge overlays the settings that were present in the file.
func (c *Config) merge(file *Config, metadata *toml.MetaData) {
	if file.Logger.LogLevel != "" {
		c.Logger.LogLevel = file.Logger.LogLevel
	}
	if file.Logger.LogFilePath != "" {
		c.Logger.LogFilePath = file.Logger.LogFilePath
	}
	if len(file.Logger.EnabledPackages) > 0 {
		c.Logger.EnabledPackages = file.Logger.EnabledPackages
	}
	if len(file.Logger.DisabledPackages) > 0 {
		c.Logger.DisabledPackages = file.Logger.DisabledPackages
	}
	if file.Surface.ScrollOff != 0 {
		c.Surface.ScrollOff = file.Surface.ScrollOff
	}
	if file.Surface.StatusBarHeight != 0 {
		c.Surface.StatusBarHeight = file.Surface.StatusBarHeight
	}
	// A plain bool can't distinguish "false" from "absent"; ask the
	// decoder whether the key was actually present.
	if metadata != nil && metadata.IsDefined("surface", "system_clipboard") {
		c.Surface.SystemClipboard = file.Surface.SystemClipboard
	}
}

// Get returns the loaded config, or defaults when LoadConfig was never
// called.
func Get() *Config {
	if loadedConfig == nil {
		return NewDefaultConfig()
	}
	return loadedConfig
}
