package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/credo-go/credo/internal/check/checks"
	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
	"github.com/credo-go/credo/internal/task"
)

// Explain prints the explanation text of a check, looked up by its
// identifier. Issue references of the form "path:line" or
// "path:line:column" resolve to the check of the issue recorded at that
// location; the referenced file is analyzed on demand when the issue store
// does not hold it yet.
type Explain struct {
	output
}

// NewExplain creates the explain command writing to out.
func NewExplain(out io.Writer) *Explain {
	return &Explain{output: newOutput(out)}
}

// Name implements execution.Command.
func (*Explain) Name() string { return "explain" }

// Init implements execution.Command. The command owns a two-stage
// pipeline that loads and analyzes the referenced file, so an issue
// reference can be resolved without a prior suggest run.
func (c *Explain) Init(exec *execution.Execution) *execution.Execution {
	p := execution.NewPipeline(stageLoadFiles, stageRunChecks)
	exec.PutPipeline(c.Name(), p)

	// Registration into freshly created stages cannot fail.
	_ = exec.AppendTask(c.Name(), c.Name(), stageLoadFiles, task.LoadSourceFiles{}, nil)
	_ = exec.AppendTask(c.Name(), c.Name(), stageRunChecks, task.NewRunChecks(checks.All()...), nil)
	return exec
}

// Run implements execution.Command.
func (c *Explain) Run(exec *execution.Execution) *execution.Execution {
	if exec.CLIOptions == nil || len(exec.CLIOptions.Args) == 0 {
		exec.Logger.Error("explain needs a check identifier, e.g. credo explain Credo.Check.Design.TagTODO")
		exec.SetExitStatus(1)
		return exec
	}

	ref := exec.CLIOptions.Args[0]
	id := ref
	if path, lineNo, ok := parseReference(ref); ok {
		resolved, found := issueCheckID(exec, path, lineNo)
		if !found {
			exec = c.analyze(exec, path)
			if exec.Halted() {
				return exec
			}
			resolved, found = issueCheckID(exec, path, lineNo)
		}
		if found {
			id = resolved
		}
	}

	chk, ok := registry().Get(id)
	if !ok {
		exec.Logger.Error("unknown check", "check", ref)
		exec.SetExitStatus(1)
		return exec
	}

	fmt.Fprintf(c.out, "%s\n\n", chk.ID())
	fmt.Fprintf(c.out, "Category: %s\n", chk.Category())
	fmt.Fprintf(c.out, "Priority: %d (%s)\n\n", chk.BasePriority(),
		model.SeverityForPriority(chk.BasePriority()))
	fmt.Fprintln(c.out, chk.Explanation())
	return exec
}

// analyze runs the command's pipeline against the referenced path only, so
// the issue store ends up holding that file's issues.
func (c *Explain) analyze(exec *execution.Execution, path string) *execution.Execution {
	saved := exec.CLIOptions.Args
	exec.CLIOptions.Args = []string{path}
	exec = execution.RunPipeline(exec, c.Name())
	exec.CLIOptions.Args = saved
	return exec
}

// parseReference splits an issue reference into its path and line. A
// reference needs at least "path:line"; anything else is taken for a check
// identifier.
func parseReference(ref string) (path string, lineNo int, ok bool) {
	parts := strings.Split(ref, ":")
	if len(parts) < 2 {
		return "", 0, false
	}
	lineNo, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, false
	}
	return parts[0], lineNo, true
}

// issueCheckID returns the check of the issue recorded at path:line.
func issueCheckID(exec *execution.Execution, path string, lineNo int) (string, bool) {
	for _, issue := range exec.Issues.Get(path) {
		if issue.LineNo == lineNo {
			return issue.CheckID, true
		}
	}
	return "", false
}
