package command

import (
	"fmt"
	"io"
	"sort"

	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
	"github.com/credo-go/credo/internal/report"
	"github.com/credo-go/credo/internal/task"
)

// List analyzes like suggest but renders the issues grouped per file,
// with a heading per file. Non-default formats render the same document
// the suggest command would.
type List struct {
	output
}

// NewList creates the list command writing to out.
func NewList(out io.Writer) *List {
	return &List{output: newOutput(out)}
}

// Name implements execution.Command.
func (*List) Name() string { return "list" }

// Init implements execution.Command.
func (c *List) Init(exec *execution.Execution) *execution.Execution {
	registerAnalysisPipeline(exec, c.Name(), printGroupedResults{out: c.out})
	return exec
}

// Run implements execution.Command.
func (c *List) Run(exec *execution.Execution) *execution.Execution {
	return execution.RunPipeline(exec, c.Name())
}

// printGroupedResults is the list command's print task: per-file headings
// over oneline issue rendering for the console format, delegating to the
// standard writers for every other format.
type printGroupedResults struct {
	out io.Writer
}

// Name implements execution.Task.
func (printGroupedResults) Name() string { return "print_grouped_results" }

// Run implements execution.Task.
func (t printGroupedResults) Run(exec *execution.Execution, opts execution.TaskOptions) *execution.Execution {
	if exec.Format == "" || exec.Format == report.FormatOneline {
		return t.printGrouped(exec)
	}
	return task.PrintResults{Output: t.out}.Run(exec, opts)
}

func (t printGroupedResults) printGrouped(exec *execution.Execution) *execution.Execution {
	byFile := exec.Issues.GetAll()

	filenames := make([]string, 0, len(byFile))
	for filename := range byFile {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	oneline := report.NewOnelineWriter(t.out, report.WithColor(exec.ColorEnabled))

	var all []model.Issue
	for _, filename := range filenames {
		fmt.Fprintf(t.out, "%s (%d)\n", filename, len(byFile[filename]))
		if _, err := oneline.Write(byFile[filename]); err != nil {
			exec.Logger.Error("writing results failed", "error", err)
			exec.SetExitStatus(1)
			return exec
		}
		fmt.Fprintln(t.out)
		all = append(all, byFile[filename]...)
	}

	for _, issue := range all {
		exec.SetExitStatus(int(model.SeverityForPriority(issue.Priority)) + 1)
	}
	return exec
}
