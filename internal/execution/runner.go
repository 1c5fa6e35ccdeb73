package execution

import "fmt"

// Run executes the top-level pipeline against the context and returns the
// resulting context.
func Run(exec *Execution) *Execution {
	return RunPipeline(exec, MainPipelineKey)
}

// RunPipeline executes the named pipeline: every stage in registration
// order, every task in list order, each task consuming and returning the
// context. Before each task the halted flag is checked; once set, every
// remaining task in this invocation is skipped and the context passes
// through unchanged.
//
// RunPipeline panics with a *ContractViolation when the pipeline key is
// unknown or a task returns an invalid context. Both are programming
// errors, not user errors.
func RunPipeline(exec *Execution, key string) *Execution {
	p := exec.Pipeline(key)
	if p == nil {
		panic(&ContractViolation{
			Unit:   fmt.Sprintf("pipeline %q", key),
			Detail: "no pipeline registered under this key",
		})
	}

	logger := exec.Logger
	parent := exec.currentTask
	grandparent := exec.parentTask

	for _, stage := range p.stages {
		for _, spec := range stage.tasks {
			if exec.Halted() {
				logger.Debug("skipping task, execution halted",
					"pipeline", key,
					"stage", stage.name,
					"task", spec.Task.Name(),
				)
				continue
			}

			logger.Debug("executing task",
				"pipeline", key,
				"stage", stage.name,
				"task", spec.Task.Name(),
			)

			exec.parentTask = parent
			exec.currentTask = spec.Task.Name()

			name := spec.Task.Name()
			var next *Execution
			exec.Timings.Record(map[string]string{
				"pipeline": key,
				"stage":    stage.name,
				"task":     name,
			}, func() {
				next = spec.Task.Run(exec, spec.Options)
			})

			exec = ensureExecution(fmt.Sprintf("task %s", name), next)
		}
	}

	exec.currentTask = parent
	exec.parentTask = grandparent

	return exec
}
