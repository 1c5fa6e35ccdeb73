package task

import "github.com/credo-go/credo/internal/execution"

// RunCommand executes the selected command. An unregistered command name
// is a lookup failure whose diagnostic lists every registered command.
type RunCommand struct{}

// Name implements execution.Task.
func (RunCommand) Name() string { return "run_command" }

// Run implements execution.Task.
func (RunCommand) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	next, err := exec.RunCommand(exec.CommandName())
	if err != nil {
		return haltWithError(next, err.Error())
	}
	return next
}

// HaltExecution is the final task of the top-level pipeline. It marks the
// run as finished so nothing can be appended behind it.
type HaltExecution struct{}

// Name implements execution.Task.
func (HaltExecution) Name() string { return "halt_execution" }

// Run implements execution.Task.
func (HaltExecution) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	exec.Halt()
	return exec
}
