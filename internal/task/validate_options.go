package task

import (
	"fmt"
	"regexp"

	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
	"github.com/credo-go/credo/internal/report"
)

// ValidateOptions checks switch values that can be rejected before any
// work happens: the priority name, the output format and the check-filter
// patterns. Catching these here keeps raw crashes out of the command run.
type ValidateOptions struct{}

// Name implements execution.Task.
func (ValidateOptions) Name() string { return "validate_options" }

// Run implements execution.Task.
func (ValidateOptions) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	opts := exec.CLIOptions
	if opts == nil {
		return exec
	}

	if v, ok := opts.String("min-priority"); ok {
		if _, err := model.ParsePriority(v); err != nil {
			return haltWithError(exec, err.Error())
		}
	}

	if v, ok := opts.String("format"); ok {
		if !report.KnownFormat(v) {
			return haltWithError(exec, fmt.Sprintf("unknown output format %q", v))
		}
	}

	for _, name := range []string{"checks", "only", "ignore-checks", "ignore"} {
		v, ok := opts.String(name)
		if !ok {
			continue
		}
		for _, pattern := range splitPatterns(v) {
			if _, err := regexp.Compile("(?i)" + pattern); err != nil {
				return haltWithError(exec,
					fmt.Sprintf("invalid pattern %q for --%s: %v", pattern, name, err))
			}
		}
	}

	return exec
}
