package task

import (
	"fmt"

	"github.com/credo-go/credo/internal/config"
	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
)

// ResolveConfig loads and merges the configuration files on the search
// path. --config-file restricts the lookup to that one file; otherwise the
// XDG config directory and the working directory's ancestry are searched,
// most general first, so the most specific file wins on merge. Every file
// consulted becomes a descriptor in the config-file store.
type ResolveConfig struct {
	// WorkDir overrides the working directory, for tests. Empty means
	// os.Getwd.
	WorkDir string
}

// Name implements execution.Task.
func (ResolveConfig) Name() string { return "resolve_config" }

// Run implements execution.Task.
func (t ResolveConfig) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	exec.ConfigFiles.Append(model.ConfigFile{Filename: "(built-in defaults)", Origin: model.OriginDefault})

	paths, origin, err := t.searchPaths(exec)
	if err != nil {
		return haltWithError(exec, err.Error())
	}

	found := false
	for _, path := range paths {
		f, err := config.LoadFile(path)
		if err != nil {
			return haltWithError(exec, err.Error())
		}
		exec.ConfigFiles.Append(model.ConfigFile{Filename: path, Origin: origin})

		nc, ok := f.Named(exec.Config.Name)
		if !ok {
			continue
		}
		found = true
		if err := exec.Config.Merge(nc); err != nil {
			return haltWithError(exec, fmt.Sprintf("merging %s: %v", path, err))
		}
	}

	// The built-in defaults satisfy the default name; any other name must
	// be defined by some file on the search path.
	if !found && exec.Config.Name != config.DefaultConfigName {
		return haltWithError(exec,
			fmt.Sprintf("%v: %q", config.ErrUnknownConfigName, exec.Config.Name))
	}

	return exec
}

func (t ResolveConfig) searchPaths(exec *execution.Execution) ([]string, string, error) {
	if exec.CLIOptions != nil {
		if path, ok := exec.CLIOptions.String("config-file"); ok {
			return []string{path}, model.OriginFlag, nil
		}
	}

	workDir, err := resolveWorkDir(exec, t.WorkDir)
	if err != nil {
		return nil, "", err
	}
	return config.SearchPaths(workDir), model.OriginFile, nil
}
