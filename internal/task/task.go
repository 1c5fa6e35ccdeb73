package task

import (
	"fmt"
	"os"

	"github.com/credo-go/credo/internal/execution"
)

// WorkDirAssign is the assign key carrying the working-directory override
// for the run. Tasks resolving files consult it before falling back to
// os.Getwd.
const WorkDirAssign = "work_dir"

// Result keys recorded by the default tasks.
const (
	// UserErrorResult carries the user-facing message of a configuration
	// error that halted the run.
	UserErrorResult = "user_error"

	// OnlyMatchedResult and IgnoreMatchedResult record which check
	// identifiers the --only and --ignore-checks filters matched.
	OnlyMatchedResult   = "only_matched_checks"
	IgnoreMatchedResult = "ignore_matched_checks"
)

// haltWithError records a user-facing error, marks the run failed and
// halts the pipeline. Configuration errors are reported this way instead
// of crashing: the halted context still flows through the remaining
// (skipped) stages intact.
func haltWithError(exec *execution.Execution, msg string) *execution.Execution {
	exec.Logger.Error(msg)
	exec.PutResult(UserErrorResult, msg)
	exec.SetExitStatus(1)
	exec.Halt()
	return exec
}

// resolveWorkDir returns the working directory for a run: an explicit
// override first, then the run's work-dir assign, then os.Getwd.
func resolveWorkDir(exec *execution.Execution, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if v, ok := exec.GetAssign(WorkDirAssign); ok {
		if dir, ok := v.(string); ok && dir != "" {
			return dir, nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}
	return wd, nil
}
