package execution

import (
	"fmt"
	"sort"
	"strings"
)

// Command is an executable sub-program selected by the determine-command
// stage. Init runs during set-up (registering the command's own pipeline,
// CLI switches and defaults); Run executes the command proper. Both must
// return a valid execution context.
type Command interface {
	// Name is the key the command is registered under, e.g. "suggest".
	Name() string

	// Init prepares the execution for this command.
	Init(exec *Execution) *Execution

	// Run executes the command.
	Run(exec *Execution) *Execution
}

// PutCommand registers a command implementation under its name. Init is
// invoked immediately so the command can set up its pipelines and switches
// before option parsing needs them. The context Init returns is validated
// and handed back; callers continue with it.
func (e *Execution) PutCommand(cmd Command) *Execution {
	e.commands[cmd.Name()] = cmd
	return ensureExecution(fmt.Sprintf("command %s (init)", cmd.Name()), cmd.Init(e))
}

// Command returns the registered command for name. An unregistered name is
// a lookup failure; the error lists every currently registered command.
func (e *Execution) Command(name string) (Command, error) {
	cmd, ok := e.commands[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q, registered commands: %s",
			name, strings.Join(e.CommandNames(), ", "))
	}
	return cmd, nil
}

// CommandNames returns the registered command names, sorted.
func (e *Execution) CommandNames() []string {
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunCommand looks up and executes the named command, validating the
// context it returns.
func (e *Execution) RunCommand(name string) (*Execution, error) {
	cmd, err := e.Command(name)
	if err != nil {
		return e, err
	}
	return ensureExecution(fmt.Sprintf("command %s", name), cmd.Run(e)), nil
}
