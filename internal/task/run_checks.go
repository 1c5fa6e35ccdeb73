package task

import (
	"context"
	"regexp"

	"github.com/credo-go/credo/internal/check"
	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
)

// RunChecks selects the active checks and fans them out over the loaded
// source files. Issues and timing samples land in the execution's stores;
// the task returns only after every worker has joined.
type RunChecks struct {
	checks []check.Check
}

// NewRunChecks creates the task over the given check set.
func NewRunChecks(checks ...check.Check) RunChecks {
	return RunChecks{checks: checks}
}

// Name implements execution.Task.
func (RunChecks) Name() string { return "run_checks" }

// Run implements execution.Task.
func (t RunChecks) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	active, err := t.activeChecks(exec)
	if err != nil {
		return haltWithError(exec, err.Error())
	}

	selection, err := check.Select(active, exec.OnlyChecks, exec.IgnoreChecks)
	if err != nil {
		return haltWithError(exec, err.Error())
	}
	exec.PutResult(OnlyMatchedResult, checkIDs(selection.OnlyMatched))
	exec.PutResult(IgnoreMatchedResult, checkIDs(selection.IgnoreMatched))

	runner := check.NewRunner(
		check.WithCrashOnError(exec.CrashOnError),
		check.WithFileTimeout(exec.Config.ParseTimeout),
		check.WithLogger(exec.Logger),
	)
	if err := runner.Run(context.Background(), exec, selection.Selected); err != nil {
		return haltWithError(exec, err.Error())
	}

	return exec
}

// activeChecks applies the configuration's enable and disable lists to the
// full check set. --enable-disabled-checks patterns re-enable matching
// disabled checks.
func (t RunChecks) activeChecks(exec *execution.Execution) ([]check.Check, error) {
	reEnable, err := compilePatterns(exec.EnableDisabledChecks)
	if err != nil {
		return nil, err
	}

	enabled := make(map[string]bool, len(exec.Config.EnabledChecks))
	for _, id := range exec.Config.EnabledChecks {
		enabled[model.StripNamespace(id)] = true
	}
	disabled := make(map[string]bool, len(exec.Config.DisabledChecks))
	for _, id := range exec.Config.DisabledChecks {
		disabled[model.StripNamespace(id)] = true
	}

	var active []check.Check
	for _, c := range t.checks {
		id := model.StripNamespace(c.ID())
		if len(enabled) > 0 && !enabled[id] {
			continue
		}
		if disabled[id] && !matchesAny(reEnable, c.ID()) {
			continue
		}
		active = append(active, c)
	}
	return active, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

func matchesAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func checkIDs(checks []check.Check) []string {
	ids := make([]string, 0, len(checks))
	for _, c := range checks {
		ids = append(ids, c.ID())
	}
	return ids
}
