package task

import "github.com/credo-go/credo/internal/execution"

// ValidateConfig rejects a resolved configuration that cannot drive a run.
type ValidateConfig struct{}

// Name implements execution.Task.
func (ValidateConfig) Name() string { return "validate_config" }

// Run implements execution.Task.
func (ValidateConfig) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	if err := exec.Config.Validate(); err != nil {
		return haltWithError(exec, err.Error())
	}
	return exec
}
