package checks

import (
	"strings"

	"github.com/credo-go/credo/internal/model"
)

// TrailingWhiteSpace reports spaces and tabs at the end of lines.
type TrailingWhiteSpace struct{}

// NewTrailingWhiteSpace creates the check.
func NewTrailingWhiteSpace() *TrailingWhiteSpace {
	return &TrailingWhiteSpace{}
}

// ID implements check.Check.
func (c *TrailingWhiteSpace) ID() string {
	return "Credo.Check.Readability.TrailingWhiteSpace"
}

// Category implements check.Check.
func (c *TrailingWhiteSpace) Category() string { return "readability" }

// BasePriority implements check.Check.
func (c *TrailingWhiteSpace) BasePriority() int { return -10 }

// Explanation implements check.Check.
func (c *TrailingWhiteSpace) Explanation() string {
	return `There should be no white-space (spaces, tabs) at the end of a line.

Most editors remove it automatically; leftover trailing white-space
produces noisy diffs.`
}

// Run implements check.Check.
func (c *TrailingWhiteSpace) Run(file *model.SourceFile, _ map[string]any) []model.Issue {
	var issues []model.Issue
	for i, line := range file.Lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line {
			continue
		}
		issues = append(issues, model.Issue{
			CheckID:  c.ID(),
			Category: c.Category(),
			Message:  "There should be no trailing white-space at the end of a line.",
			Filename: file.Filename,
			Priority: c.BasePriority(),
			LineNo:   i + 1,
			Column:   len(trimmed) + 1,
			Trigger:  line[len(trimmed):],
		})
	}
	return issues
}
