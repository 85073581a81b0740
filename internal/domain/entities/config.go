package entities

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"time"
)

// Config represents the complete site-level configuration loaded from
// decksite.toml. In-document Deckset commands live in GlobalConfig; this
// struct covers everything around the parsing core.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Build   BuildConfig   `toml:"build"`
	Watcher WatcherConfig `toml:"watcher"`
	Logging LoggingConfig `toml:"logging"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Build.Validate(); err != nil {
		return fmt.Errorf("build config: %w", err)
	}

	if err := c.Watcher.Validate(); err != nil {
		return fmt.Errorf("watcher config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// ServerConfig contains preview server configuration
type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	CORSOrigins     []string `toml:"cors_origins"`
}

// Validate validates server configuration
func (s ServerConfig) Validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return errors.New("port must be between 0 and 65535")
	}

	if s.Host != "" {
		if ip := net.ParseIP(s.Host); ip == nil {
			if _, err := net.LookupHost(s.Host); err != nil {
				return fmt.Errorf("invalid host: %w", err)
			}
		}
	}

	if s.ReadTimeout < 0 {
		return errors.New("read timeout must be non-negative")
	}

	if s.WriteTimeout < 0 {
		return errors.New("write timeout must be non-negative")
	}

	if s.ShutdownTimeout < 0 {
		return errors.New("shutdown timeout must be non-negative")
	}

	for _, origin := range s.CORSOrigins {
		if origin == "" {
			return errors.New("CORS origin cannot be empty")
		}
		if origin == "*" {
			continue
		}
		if len(origin) < 7 || (!strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://")) {
			return fmt.Errorf("invalid CORS origin format: %s (must start with http:// or https://)", origin)
		}
	}

	return nil
}

// GetReadTimeout returns the read timeout as a duration
func (s ServerConfig) GetReadTimeout() time.Duration {
	if s.ReadTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.ReadTimeout) * time.Second
}

// GetWriteTimeout returns the write timeout as a duration
func (s ServerConfig) GetWriteTimeout() time.Duration {
	if s.WriteTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.WriteTimeout) * time.Second
}

// GetShutdownTimeout returns the shutdown timeout as a duration
func (s ServerConfig) GetShutdownTimeout() time.Duration {
	if s.ShutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// GetCORSOrigins returns CORS origins with defaults if empty
func (s ServerConfig) GetCORSOrigins() []string {
	if len(s.CORSOrigins) == 0 {
		return []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:8080",
			"http://127.0.0.1:8080",
		}
	}
	return s.CORSOrigins
}

// BuildConfig contains static-site build configuration
type BuildConfig struct {
	// OutputDir is where the generated site is written, relative to the
	// source root unless absolute
	OutputDir string `toml:"output_dir"`

	// DefaultTheme applies when a presentation sets no theme command
	DefaultTheme string `toml:"default_theme"`

	// CopyAssets controls whether referenced local media is copied into
	// the output tree
	CopyAssets bool `toml:"copy_assets"`
}

// Validate validates build configuration
func (b BuildConfig) Validate() error {
	if b.OutputDir != "" && filepath.Clean(b.OutputDir) == "." {
		return errors.New("output directory must not be the source root")
	}
	return nil
}

// GetOutputDir returns the output directory with default
func (b BuildConfig) GetOutputDir() string {
	if b.OutputDir == "" {
		return "site"
	}
	return b.OutputDir
}

// GetDefaultTheme returns the default theme with fallback
func (b BuildConfig) GetDefaultTheme() string {
	if b.DefaultTheme == "" {
		return "default"
	}
	return b.DefaultTheme
}

// WatcherConfig contains file watcher configuration
type WatcherConfig struct {
	IntervalMs int `toml:"interval_ms"`
	DebounceMs int `toml:"debounce_ms"`
}

// Validate validates watcher configuration
func (w WatcherConfig) Validate() error {
	if w.IntervalMs != 0 && w.IntervalMs < 50 {
		return errors.New("watcher interval must be at least 50ms")
	}

	if w.DebounceMs < 0 {
		return errors.New("debounce time must be non-negative")
	}

	return nil
}

// GetInterval returns the watcher interval as a duration
func (w WatcherConfig) GetInterval() time.Duration {
	if w.IntervalMs <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(w.IntervalMs) * time.Millisecond
}

// GetDebounce returns the debounce time as a duration
func (w WatcherConfig) GetDebounce() time.Duration {
	if w.DebounceMs <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// LogLevel represents logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string `toml:"level"` // debug, info, warn, error
	Verbose bool   `toml:"verbose"`
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, "":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l.Level)
	}
}

// GetLevel returns the log level with default
func (l LoggingConfig) GetLevel() LogLevel {
	if l.Level == "" {
		return LogLevelInfo
	}
	return LogLevel(l.Level)
}
