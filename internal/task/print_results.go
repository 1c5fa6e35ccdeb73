package task

import (
	"fmt"
	"io"
	"os"

	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
	"github.com/credo-go/credo/internal/report"
)

// DefaultExportPath is where the SonarQube export file lands unless the
// command configures another path.
const DefaultExportPath = "credo-sonarqube.json"

// PrintResults renders the surviving issues in the run's output format and
// derives the exit status from the most severe one. For export formats the
// document goes to the export file and a oneline rendering goes to the
// console.
type PrintResults struct {
	// Output receives the rendered issues. Nil means os.Stdout.
	Output io.Writer

	// ExportPath is the export-file destination for formats that write
	// one. Empty means DefaultExportPath.
	ExportPath string

	// BaseFolder is the path prefix for export formats emitting paths
	// relative to a project root.
	BaseFolder string
}

// Name implements execution.Task.
func (PrintResults) Name() string { return "print_results" }

// Run implements execution.Task.
func (t PrintResults) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	out := t.Output
	if out == nil {
		out = os.Stdout
	}

	target := out
	var closeTarget func() error
	if exec.Format == report.FormatSonarQube {
		path := t.ExportPath
		if path == "" {
			path = DefaultExportPath
		}
		f, err := os.Create(path)
		if err != nil {
			return haltWithError(exec, fmt.Sprintf("creating export file: %v", err))
		}
		target = f
		closeTarget = f.Close
	}

	writer, err := report.ForFormat(exec.Format, target,
		report.WithColorOutput(exec.ColorEnabled),
		report.WithExportBaseFolder(t.BaseFolder),
		report.WithConsoleOutput(out),
	)
	if err != nil {
		return haltWithError(exec, err.Error())
	}

	issues := exec.Issues.All()
	if _, err := writer.Write(issues); err != nil {
		// A failed write is surfaced, never dropped. Whether it fails
		// the process follows the same mute policy as issue findings.
		exec.Logger.Error("writing results failed", "error", err)
		exec.SetExitStatus(1)
	}
	if closeTarget != nil {
		if err := closeTarget(); err != nil {
			exec.Logger.Error("closing export file failed", "error", err)
			exec.SetExitStatus(1)
		}
	}

	if status := issueExitStatus(issues); status > 0 {
		exec.SetExitStatus(status)
	}
	return exec
}

// issueExitStatus maps the most severe remaining issue to an exit status:
// one above the severity tier, so INFO yields 1 and CRITICAL yields 4.
// Zero means no issues.
func issueExitStatus(issues []model.Issue) int {
	status := 0
	for _, issue := range issues {
		if s := int(model.SeverityForPriority(issue.Priority)) + 1; s > status {
			status = s
		}
	}
	return status
}
