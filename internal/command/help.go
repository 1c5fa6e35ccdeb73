package command

import (
	"fmt"
	"io"

	"github.com/credo-go/credo/internal/cli"
	"github.com/credo-go/credo/internal/execution"
)

// Help prints the command list and the recognized switches, including
// switches plugins registered for this run.
type Help struct {
	output
}

// NewHelp creates the help command writing to out.
func NewHelp(out io.Writer) *Help {
	return &Help{output: newOutput(out)}
}

// Name implements execution.Command.
func (*Help) Name() string { return "help" }

// Init implements execution.Command.
func (c *Help) Init(exec *execution.Execution) *execution.Execution {
	return exec
}

// Run implements execution.Command.
func (c *Help) Run(exec *execution.Execution) *execution.Execution {
	fmt.Fprintln(c.out, "Usage: credo <command> [options] [paths]")
	fmt.Fprintln(c.out)

	fmt.Fprintln(c.out, "Commands:")
	for _, name := range exec.CommandNames() {
		fmt.Fprintf(c.out, "  %s\n", name)
	}
	fmt.Fprintln(c.out)

	aliases := make(map[string]string)
	for _, a := range exec.CLI.Aliases() {
		aliases[a.Name] = a.Alias
	}

	fmt.Fprintln(c.out, "Options:")
	for _, sw := range exec.CLI.Switches() {
		c.printSwitch(sw, aliases[sw.Name])
	}
	return exec
}

func (c *Help) printSwitch(sw cli.Switch, alias string) {
	short := "    "
	if alias != "" {
		short = fmt.Sprintf("-%s, ", alias)
	}
	name := "--" + sw.Name
	if sw.Type != cli.SwitchBool {
		name += " <value>"
	}
	if sw.Plugin != "" {
		name += fmt.Sprintf(" (plugin: %s)", sw.Plugin)
	}
	fmt.Fprintf(c.out, "  %s%s\n", short, name)
}
