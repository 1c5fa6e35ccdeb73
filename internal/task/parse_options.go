package task

import (
	"github.com/credo-go/credo/internal/cli"
	"github.com/credo-go/credo/internal/execution"
)

// ParseOptions parses the raw argument list against the switch registry.
// Switches plugins have not registered yet are tolerated here; the strict
// re-parse in initialize_plugins rejects anything still unknown. A
// malformed value is a configuration error, not a crash: the message is
// recorded and the run halts.
type ParseOptions struct{}

// Name implements execution.Task.
func (ParseOptions) Name() string { return "parse_options" }

// Run implements execution.Task.
func (ParseOptions) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	parsed, err := cli.ParseTolerant(exec.CLI, exec.Argv)
	if err != nil {
		return haltWithError(exec, err.Error())
	}
	exec.CLIOptions = parsed
	return exec
}
