package task

import "github.com/credo-go/credo/internal/execution"

// DefaultCommand runs when the user names no command.
const DefaultCommand = "suggest"

// DetermineCommand selects the command to run: --help and --version win,
// otherwise the first positional argument is consumed when it names a
// registered command. A first argument that is not a command stays in the
// argument list and is treated as a path later.
type DetermineCommand struct{}

// Name implements execution.Task.
func (DetermineCommand) Name() string { return "determine_command" }

// Run implements execution.Task.
func (DetermineCommand) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	switch {
	case exec.Help:
		exec.SetCommandName("help")
	case exec.Version:
		exec.SetCommandName("version")
	default:
		if exec.CLIOptions == nil || len(exec.CLIOptions.Args) == 0 {
			return exec
		}
		name := exec.CLIOptions.Args[0]
		if _, err := exec.Command(name); err == nil {
			exec.SetCommandName(name)
			exec.CLIOptions.Args = exec.CLIOptions.Args[1:]
		}
	}
	return exec
}

// SetDefaultCommand falls back to the default command when
// determine_command selected none.
type SetDefaultCommand struct{}

// Name implements execution.Task.
func (SetDefaultCommand) Name() string { return "set_default_command" }

// Run implements execution.Task.
func (SetDefaultCommand) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	if exec.CommandName() == "" {
		exec.SetCommandName(DefaultCommand)
	}
	return exec
}
