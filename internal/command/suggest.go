package command

import (
	"io"

	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/task"
)

// Suggest is the default command: analyze the target files and print the
// issues worth fixing, most severe first. It owns its own named pipeline
// and re-enters the pipeline machinery to run it.
type Suggest struct {
	output
}

// NewSuggest creates the suggest command writing to out.
func NewSuggest(out io.Writer) *Suggest {
	return &Suggest{output: newOutput(out)}
}

// Name implements execution.Command.
func (*Suggest) Name() string { return "suggest" }

// Init implements execution.Command.
func (c *Suggest) Init(exec *execution.Execution) *execution.Execution {
	registerAnalysisPipeline(exec, c.Name(), task.PrintResults{Output: c.out})
	return exec
}

// Run implements execution.Command.
func (c *Suggest) Run(exec *execution.Execution) *execution.Execution {
	return execution.RunPipeline(exec, c.Name())
}
