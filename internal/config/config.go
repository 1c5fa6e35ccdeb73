package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "credo"

	// DefaultConfigName selects the named config applied when the user
	// gives no --config-name.
	DefaultConfigName = "default"

	// ConfigBaseName is the basename (without extension) of configuration
	// files discovered on the search path.
	ConfigBaseName = ".credo"

	// DefaultParseTimeout bounds how long a single source file may take
	// to load and split. Collaborating parsers may honor it; the check
	// runner applies it as a per-file context deadline.
	DefaultParseTimeout = 5 * time.Second

	// DefaultGlob is the file pattern analyzed when the configuration
	// names no included files.
	DefaultGlob = "**/*.ex"
)

// Config is the static configuration of a run. It is resolved once by the
// resolve-config pipeline stage and never mutated afterwards.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity, following the same reasoning as the rest of the tool's
// configuration surface. Run-derived options are deliberately kept off this
// struct; they live on the execution context.
type Config struct {
	// Name is the named config this run resolved, e.g. "default".
	Name string

	// FilesIncluded are the glob patterns of files to analyze.
	FilesIncluded []string

	// FilesExcluded are the glob patterns of files to skip.
	FilesExcluded []string

	// EnabledChecks lists check identifiers explicitly enabled by
	// configuration. Empty means every registered check is active.
	EnabledChecks []string

	// DisabledChecks lists check identifiers disabled by configuration.
	DisabledChecks []string

	// CheckParams maps a check identifier to its parameter bag.
	CheckParams map[string]map[string]any

	// Requires lists additional source files with custom checks that a
	// host integration loads before the run.
	Requires []string

	// Plugins lists the plugin identifiers active for this run.
	Plugins []string

	// ParseTimeout bounds per-file loading.
	ParseTimeout time.Duration

	// Strict enables low-priority issues regardless of --all-priorities.
	Strict bool
}

// NewConfig creates a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Name:          DefaultConfigName,
		FilesIncluded: []string{DefaultGlob},
		CheckParams:   make(map[string]map[string]any),
		ParseTimeout:  DefaultParseTimeout,
	}
}

// Validate checks the resolved configuration.
// It returns the first problem found; fixing one error often makes later
// ones irrelevant.
func (c *Config) Validate() error {
	if c.ParseTimeout < 0 {
		return ErrInvalidParseTimeout
	}
	if len(c.FilesIncluded) == 0 {
		return ErrNoFilesIncluded
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for credo.
// On Linux: ~/.config/credo
// On macOS: ~/Library/Application Support/credo
// On Windows: %APPDATA%\credo
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
