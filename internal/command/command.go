package command

import (
	"io"
	"os"

	"github.com/credo-go/credo/internal/check"
	"github.com/credo-go/credo/internal/check/checks"
	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/task"
)

// output is the shared output destination of the built-in commands.
type output struct {
	out io.Writer
}

func newOutput(out io.Writer) output {
	if out == nil {
		out = os.Stdout
	}
	return output{out: out}
}

// All returns the built-in commands writing to out, ready for
// registration. Version is the string reported by the version and info
// commands.
func All(out io.Writer, version string) []execution.Command {
	return []execution.Command{
		NewCategories(out),
		NewExplain(out),
		NewGenCheck(out),
		NewGenConfig(out),
		NewHelp(out),
		NewInfo(out, version),
		NewList(out),
		NewSuggest(out),
		NewVersion(out, version),
	}
}

// analysisStages are the stage names of the pipelines the suggest, list
// and explain commands register for themselves.
const (
	stageLoadFiles    = "load-and-validate-source-files"
	stageRunChecks    = "run-checks"
	stageFilterIssues = "set-relevant-issues"
	stagePrintResults = "print-results"
)

// registerAnalysisPipeline builds the standard analysis pipeline under the
// command's own key and fills its stages with the default analysis tasks.
func registerAnalysisPipeline(exec *execution.Execution, owner string, print execution.Task) {
	p := execution.NewPipeline(
		stageLoadFiles,
		stageRunChecks,
		stageFilterIssues,
		stagePrintResults,
	)
	exec.PutPipeline(owner, p)

	// Registration into freshly created stages cannot fail.
	_ = exec.AppendTask(owner, owner, stageLoadFiles, task.LoadSourceFiles{}, nil)
	_ = exec.AppendTask(owner, owner, stageRunChecks, task.NewRunChecks(checks.All()...), nil)
	_ = exec.AppendTask(owner, owner, stageFilterIssues, task.SetRelevantIssues{}, nil)
	_ = exec.AppendTask(owner, owner, stagePrintResults, print, nil)
}

// registry returns the built-in checks as a lookup registry.
func registry() *check.Registry {
	r := check.NewRegistry()
	r.Put(checks.All()...)
	return r
}
