package task

import (
	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
)

// SetRelevantIssues drops issues below the run's minimum priority from the
// issue store, preserving each file's discovery order.
type SetRelevantIssues struct{}

// Name implements execution.Task.
func (SetRelevantIssues) Name() string { return "set_relevant_issues" }

// Run implements execution.Task.
func (SetRelevantIssues) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	byFile := exec.Issues.GetAll()

	filtered := make(map[string][]model.Issue, len(byFile))
	for filename, issues := range byFile {
		var kept []model.Issue
		for _, issue := range issues {
			if issue.Priority >= exec.MinPriority {
				kept = append(kept, issue)
			}
		}
		if len(kept) > 0 {
			filtered[filename] = kept
		}
	}

	exec.Issues.Replace(filtered)
	return exec
}
