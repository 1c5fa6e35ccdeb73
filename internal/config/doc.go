// Package config holds the static run configuration and the loading of
// configuration files.
//
// Configuration comes from three layers, merged in order: built-in
// defaults, configuration files discovered on the search path (working
// directory ancestry, then the XDG config directory), and an explicit
// --config-file path. Files may be YAML (.credo.yml) or TOML (.credo.toml);
// both carry the same named-config schema, and --config-name selects which
// named config applies.
//
// The resolved Config is static for the duration of a run. Run-derived
// options (minimum priority, verbosity, format) live on the execution
// context instead, because they are produced by CLI parsing inside the
// pipeline.
package config
