package command

import (
	"fmt"
	"io"

	"github.com/credo-go/credo/internal/check"
	"github.com/credo-go/credo/internal/execution"
)

// Categories prints the check categories with their descriptions.
type Categories struct {
	output
}

// NewCategories creates the categories command writing to out.
func NewCategories(out io.Writer) *Categories {
	return &Categories{output: newOutput(out)}
}

// Name implements execution.Command.
func (*Categories) Name() string { return "categories" }

// Init implements execution.Command.
func (c *Categories) Init(exec *execution.Execution) *execution.Execution {
	return exec
}

// Run implements execution.Command.
func (c *Categories) Run(exec *execution.Execution) *execution.Execution {
	for _, cat := range check.Categories() {
		fmt.Fprintf(c.out, "%s\n  %s\n\n", cat.Name, cat.Description)
	}
	return exec
}
