package command

import (
	"fmt"
	"io"

	"github.com/credo-go/credo/internal/execution"
)

// checkScaffold is the starting point gen.check prints for a custom check.
const checkScaffold = `package checks

import "github.com/credo-go/credo/internal/model"

// MyCheck reports  . Describe the finding, not the category.
type MyCheck struct{}

// NewMyCheck creates the check.
func NewMyCheck() *MyCheck {
	return &MyCheck{}
}

// ID implements check.Check.
func (c *MyCheck) ID() string { return "Credo.Check.Readability.MyCheck" }

// Category implements check.Check.
func (c *MyCheck) Category() string { return "readability" }

// BasePriority implements check.Check.
func (c *MyCheck) BasePriority() int { return 1 }

// Explanation implements check.Check.
func (c *MyCheck) Explanation() string {
	return ` + "`" + `Explain what the check finds and why it matters.` + "`" + `
}

// Run implements check.Check. It must be safe to call concurrently.
func (c *MyCheck) Run(file *model.SourceFile, params map[string]any) []model.Issue {
	var issues []model.Issue
	for i, line := range file.Lines {
		_ = i
		_ = line
	}
	return issues
}
`

// configScaffold is the default configuration file gen.config prints.
const configScaffold = `configs:
  - name: default
    files:
      included:
        - "**/*.ex"
      excluded: []
    checks:
      enabled: []
      disabled: []
    strict: false
    parse_timeout: 5s
`

// GenCheck prints a scaffold for a custom check to stdout, ready to be
// saved and adjusted.
type GenCheck struct {
	output
}

// NewGenCheck creates the gen.check command writing to out.
func NewGenCheck(out io.Writer) *GenCheck {
	return &GenCheck{output: newOutput(out)}
}

// Name implements execution.Command.
func (*GenCheck) Name() string { return "gen.check" }

// Init implements execution.Command.
func (c *GenCheck) Init(exec *execution.Execution) *execution.Execution {
	return exec
}

// Run implements execution.Command.
func (c *GenCheck) Run(exec *execution.Execution) *execution.Execution {
	fmt.Fprint(c.out, checkScaffold)
	return exec
}

// GenConfig prints a default configuration file to stdout.
type GenConfig struct {
	output
}

// NewGenConfig creates the gen.config command writing to out.
func NewGenConfig(out io.Writer) *GenConfig {
	return &GenConfig{output: newOutput(out)}
}

// Name implements execution.Command.
func (*GenConfig) Name() string { return "gen.config" }

// Init implements execution.Command.
func (c *GenConfig) Init(exec *execution.Execution) *execution.Execution {
	return exec
}

// Run implements execution.Command.
func (c *GenConfig) Run(exec *execution.Execution) *execution.Execution {
	fmt.Fprint(c.out, configScaffold)
	return exec
}
