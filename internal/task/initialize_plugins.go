package task

import (
	"github.com/credo-go/credo/internal/cli"
	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/plugin"
)

// InitializePlugins runs every registered plugin's Init, then does the
// strict re-parse of the argument list: plugin switches now exist, so any
// switch still unknown is a user error. Converter-bound switch values are
// copied into the plugin parameter stores afterwards.
type InitializePlugins struct {
	plugins []plugin.Plugin
}

// NewInitializePlugins creates the task for the given plugins.
func NewInitializePlugins(plugins ...plugin.Plugin) InitializePlugins {
	return InitializePlugins{plugins: plugins}
}

// Name implements execution.Task.
func (InitializePlugins) Name() string { return "initialize_plugins" }

// Run implements execution.Task.
func (t InitializePlugins) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	exec = plugin.InitializeAll(exec, t.plugins)

	// parse_options tolerated unknown switches; with every plugin switch
	// registered this parse is authoritative.
	parsed, err := cli.Parse(exec.CLI, exec.Argv)
	if err != nil {
		return haltWithError(exec, err.Error())
	}
	exec.CLIOptions = parsed

	plugin.ApplyParamConverters(exec)
	return exec
}
