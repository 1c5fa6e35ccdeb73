package command

import (
	"fmt"
	"io"

	"github.com/credo-go/credo/internal/execution"
)

// Version prints the version string.
type Version struct {
	output
	version string
}

// NewVersion creates the version command writing to out.
func NewVersion(out io.Writer, version string) *Version {
	return &Version{output: newOutput(out), version: version}
}

// Name implements execution.Command.
func (*Version) Name() string { return "version" }

// Init implements execution.Command.
func (c *Version) Init(exec *execution.Execution) *execution.Execution {
	return exec
}

// Run implements execution.Command.
func (c *Version) Run(exec *execution.Execution) *execution.Execution {
	fmt.Fprintln(c.out, c.version)
	return exec
}
