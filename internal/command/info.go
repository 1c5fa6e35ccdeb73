package command

import (
	"fmt"
	"io"
	"runtime"

	"github.com/credo-go/credo/internal/execution"
)

// Info prints run environment details: version, runtime, configuration
// sources and the registered checks. Verbose runs list every check with
// its category and priority.
type Info struct {
	output
	version string
}

// NewInfo creates the info command writing to out.
func NewInfo(out io.Writer, version string) *Info {
	return &Info{output: newOutput(out), version: version}
}

// Name implements execution.Command.
func (*Info) Name() string { return "info" }

// Init implements execution.Command.
func (c *Info) Init(exec *execution.Execution) *execution.Execution {
	return exec
}

// Run implements execution.Command.
func (c *Info) Run(exec *execution.Execution) *execution.Execution {
	reg := registry()

	fmt.Fprintf(c.out, "credo %s\n", c.version)
	fmt.Fprintf(c.out, "go: %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(c.out, "config: %s\n", exec.Config.Name)
	fmt.Fprintf(c.out, "checks: %d\n", reg.Count())

	if configs := exec.ConfigFiles.GetAll(); len(configs) > 0 {
		fmt.Fprintln(c.out, "config sources:")
		for _, cf := range configs {
			fmt.Fprintf(c.out, "  %s (%s)\n", cf.Filename, cf.Origin)
		}
	}

	if exec.Verbose {
		fmt.Fprintln(c.out, "registered checks:")
		for _, chk := range reg.All() {
			fmt.Fprintf(c.out, "  %s (%s, priority %d)\n",
				chk.ID(), chk.Category(), chk.BasePriority())
		}
	}
	return exec
}
