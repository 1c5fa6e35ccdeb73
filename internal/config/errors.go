package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic handling while still providing
// human-readable messages.
var (
	// ErrInvalidParseTimeout is returned when the parse timeout is
	// negative. Use 0 to disable the per-file deadline.
	ErrInvalidParseTimeout = errors.New("invalid parse timeout: must be non-negative")

	// ErrNoFilesIncluded is returned when the resolved configuration
	// names no file patterns at all.
	ErrNoFilesIncluded = errors.New("no files included: configuration must name at least one file pattern")

	// ErrUnknownConfigName is returned when --config-name selects a named
	// config that no discovered configuration file defines.
	ErrUnknownConfigName = errors.New("unknown config name")

	// ErrUnsupportedConfigFormat is returned for configuration files with
	// an extension other than .yml, .yaml or .toml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
