package checks

import (
	"fmt"
	"unicode/utf8"

	"github.com/credo-go/credo/internal/model"
)

// MaxLineLength reports lines longer than the configured maximum.
type MaxLineLength struct{}

// NewMaxLineLength creates the check.
func NewMaxLineLength() *MaxLineLength {
	return &MaxLineLength{}
}

// ID implements check.Check.
func (c *MaxLineLength) ID() string {
	return "Credo.Check.Readability.MaxLineLength"
}

// Category implements check.Check.
func (c *MaxLineLength) Category() string { return "readability" }

// BasePriority implements check.Check.
func (c *MaxLineLength) BasePriority() int { return 1 }

// Explanation implements check.Check.
func (c *MaxLineLength) Explanation() string {
	return `Lines should not exceed a maximum length (120 characters by default).

Long lines force horizontal scrolling and make diffs harder to review.
The limit is configurable via the max_length parameter.`
}

// Run implements check.Check.
func (c *MaxLineLength) Run(file *model.SourceFile, params map[string]any) []model.Issue {
	maxLength := paramInt(params, "max_length", 120)

	var issues []model.Issue
	for i, line := range file.Lines {
		length := utf8.RuneCountInString(line)
		if length <= maxLength {
			continue
		}
		issues = append(issues, model.Issue{
			CheckID:  c.ID(),
			Category: c.Category(),
			Message:  fmt.Sprintf("Line is too long (max is %d, was %d).", maxLength, length),
			Filename: file.Filename,
			Priority: c.BasePriority(),
			LineNo:   i + 1,
			Column:   maxLength + 1,
		})
	}
	return issues
}
