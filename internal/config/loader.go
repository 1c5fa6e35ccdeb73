package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration schema. A file defines one or more
// named configs; --config-name selects which one applies.
type File struct {
	Configs []NamedConfig `yaml:"configs" toml:"configs"`
}

// NamedConfig is one selectable configuration inside a File.
type NamedConfig struct {
	Name   string      `yaml:"name" toml:"name"`
	Files  FilesConfig `yaml:"files" toml:"files"`
	Checks ChecksList  `yaml:"checks" toml:"checks"`

	Requires []string `yaml:"requires" toml:"requires"`
	Plugins  []string `yaml:"plugins" toml:"plugins"`

	// ParseTimeout is a duration string such as "5s".
	ParseTimeout string `yaml:"parse_timeout" toml:"parse_timeout"`

	Strict bool `yaml:"strict" toml:"strict"`
}

// FilesConfig names the analyzed and skipped file patterns.
type FilesConfig struct {
	Included []string `yaml:"included" toml:"included"`
	Excluded []string `yaml:"excluded" toml:"excluded"`
}

// ChecksList enables and disables checks, optionally with parameters.
type ChecksList struct {
	Enabled  []CheckSetting `yaml:"enabled" toml:"enabled"`
	Disabled []CheckSetting `yaml:"disabled" toml:"disabled"`
}

// CheckSetting is one check reference with an optional parameter bag.
type CheckSetting struct {
	Check  string         `yaml:"check" toml:"check"`
	Params map[string]any `yaml:"params" toml:"params"`
}

// LoadFile reads and decodes a configuration file, choosing the decoder by
// file extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}

	return &f, nil
}

// configExtensions are tried in order at every search location.
var configExtensions = []string{".yml", ".yaml", ".toml"}

// SearchPaths returns the configuration files that exist on the search
// path, ordered most-general first so that merging in order lets the most
// specific file win: the XDG config directory, then every ancestor of
// workDir from the root down to workDir itself.
func SearchPaths(workDir string) []string {
	var paths []string

	for _, ext := range configExtensions {
		p := filepath.Join(XDGConfigDir(), ConfigBaseName+ext)
		if fileExists(p) {
			paths = append(paths, p)
		}
	}

	var ancestry []string
	dir := workDir
	for {
		ancestry = append([]string{dir}, ancestry...)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	for _, dir := range ancestry {
		for _, ext := range configExtensions {
			p := filepath.Join(dir, ConfigBaseName+ext)
			if fileExists(p) {
				paths = append(paths, p)
			}
		}
	}

	return paths
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Named returns the named config defined by the file, or false when the
// file defines no config with that name.
func (f *File) Named(name string) (NamedConfig, bool) {
	for _, nc := range f.Configs {
		if nc.Name == name {
			return nc, true
		}
	}
	return NamedConfig{}, false
}

// Merge applies the non-empty fields of a named config onto c. Files are
// merged most-general first, so every Merge call may override what earlier
// files set.
func (c *Config) Merge(nc NamedConfig) error {
	if len(nc.Files.Included) > 0 {
		c.FilesIncluded = append([]string(nil), nc.Files.Included...)
	}
	if len(nc.Files.Excluded) > 0 {
		c.FilesExcluded = append([]string(nil), nc.Files.Excluded...)
	}
	for _, setting := range nc.Checks.Enabled {
		c.EnabledChecks = appendUnique(c.EnabledChecks, setting.Check)
		if len(setting.Params) > 0 {
			c.CheckParams[setting.Check] = setting.Params
		}
	}
	for _, setting := range nc.Checks.Disabled {
		c.DisabledChecks = appendUnique(c.DisabledChecks, setting.Check)
	}
	if len(nc.Requires) > 0 {
		c.Requires = append([]string(nil), nc.Requires...)
	}
	if len(nc.Plugins) > 0 {
		c.Plugins = append([]string(nil), nc.Plugins...)
	}
	if nc.ParseTimeout != "" {
		d, err := time.ParseDuration(nc.ParseTimeout)
		if err != nil {
			return fmt.Errorf("invalid parse_timeout %q: %w", nc.ParseTimeout, err)
		}
		c.ParseTimeout = d
	}
	if nc.Strict {
		c.Strict = true
	}
	return nil
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
