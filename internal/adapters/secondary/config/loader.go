package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/decksite/internal/domain/entities"
	"github.com/fredcamaral/decksite/internal/domain/ports"
)

// TOMLLoader implements the ConfigLoader interface using TOML files
type TOMLLoader struct {
	globalPath string
	localName  string
}

// NewTOMLLoader creates a new TOML configuration loader
func NewTOMLLoader() *TOMLLoader {
	homeDir, _ := os.UserHomeDir()
	globalPath := filepath.Join(homeDir, ".config", "decksite", "config.toml")

	return &TOMLLoader{
		globalPath: globalPath,
		localName:  "decksite.toml",
	}
}

// LoadGlobal loads the global configuration file, creating defaults on
// first run.
func (l *TOMLLoader) LoadGlobal(ctx context.Context) (*entities.Config, error) {
	if _, err := os.Stat(l.globalPath); os.IsNotExist(err) {
		if err := l.CreateDefaults(ctx, l.globalPath); err != nil {
			return nil, fmt.Errorf("creating defaults: %w", err)
		}
	}

	return l.loadConfig(l.globalPath)
}

// LoadLocal loads a local configuration file from the specified directory
func (l *TOMLLoader) LoadLocal(ctx context.Context, dir string) (*entities.Config, error) {
	localPath := filepath.Join(dir, l.localName)

	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return nil, nil // Local config is optional
	}

	return l.loadConfig(localPath)
}

// CreateDefaults creates a default configuration file at the specified path
func (l *TOMLLoader) CreateDefaults(ctx context.Context, path string) error {
	if err := l.ensureConfigDir(path); err != nil {
		return err
	}

	defaults := GetDefaultConfig()

	file, err := os.Create(path) // #nosec G304 - path is controlled (global config path)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := toml.NewEncoder(file)
	encoder.Indent = "  "

	if err := encoder.Encode(defaults); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}

	return nil
}

// LoadFile loads a configuration file from an explicit path.
func (l *TOMLLoader) LoadFile(ctx context.Context, path string) (*entities.Config, error) {
	return l.loadConfig(path)
}

// GetLocalPath returns the path to the local configuration file for a directory
func (l *TOMLLoader) GetLocalPath(dir string) string {
	return filepath.Join(dir, l.localName)
}

// loadConfig loads and validates a configuration file
func (l *TOMLLoader) loadConfig(path string) (*entities.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is from controlled sources (global/local config)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var config entities.Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing TOML from %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return &config, nil
}

// ensureConfigDir ensures the configuration directory exists
func (l *TOMLLoader) ensureConfigDir(path string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	return nil
}

// Merge merges configurations over the defaults with later configs taking
// precedence; nil entries are skipped.
func Merge(configs ...*entities.Config) *entities.Config {
	result := GetDefaultConfig()
	for _, c := range configs {
		if c == nil {
			continue
		}
		mergeInto(result, c)
	}
	return result
}

// mergeInto merges source configuration into target configuration
func mergeInto(target, source *entities.Config) {
	if source.Server.Port != 0 {
		target.Server.Port = source.Server.Port
	}
	if source.Server.Host != "" {
		target.Server.Host = source.Server.Host
	}
	if source.Server.ReadTimeout != 0 {
		target.Server.ReadTimeout = source.Server.ReadTimeout
	}
	if source.Server.WriteTimeout != 0 {
		target.Server.WriteTimeout = source.Server.WriteTimeout
	}
	if source.Server.ShutdownTimeout != 0 {
		target.Server.ShutdownTimeout = source.Server.ShutdownTimeout
	}
	if len(source.Server.CORSOrigins) > 0 {
		target.Server.CORSOrigins = append([]string(nil), source.Server.CORSOrigins...)
	}

	if source.Build.OutputDir != "" {
		target.Build.OutputDir = source.Build.OutputDir
	}
	if source.Build.DefaultTheme != "" {
		target.Build.DefaultTheme = source.Build.DefaultTheme
	}

	if source.Watcher.IntervalMs != 0 {
		target.Watcher.IntervalMs = source.Watcher.IntervalMs
	}
	if source.Watcher.DebounceMs != 0 {
		target.Watcher.DebounceMs = source.Watcher.DebounceMs
	}

	if source.Logging.Level != "" {
		target.Logging.Level = source.Logging.Level
	}
	if source.Logging.Verbose {
		target.Logging.Verbose = true
	}
}

// Ensure TOMLLoader implements ports.ConfigLoader
var _ ports.ConfigLoader = (*TOMLLoader)(nil)
