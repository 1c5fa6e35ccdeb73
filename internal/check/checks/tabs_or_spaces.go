package checks

import (
	"strings"

	"github.com/credo-go/credo/internal/model"
)

// TabsOrSpaces reports indentation that mixes tabs into a codebase
// configured for spaces, or the other way around.
type TabsOrSpaces struct{}

// NewTabsOrSpaces creates the check.
func NewTabsOrSpaces() *TabsOrSpaces {
	return &TabsOrSpaces{}
}

// ID implements check.Check.
func (c *TabsOrSpaces) ID() string {
	return "Credo.Check.Consistency.TabsOrSpaces"
}

// Category implements check.Check.
func (c *TabsOrSpaces) Category() string { return "consistency" }

// BasePriority implements check.Check.
func (c *TabsOrSpaces) BasePriority() int { return 5 }

// Explanation implements check.Check.
func (c *TabsOrSpaces) Explanation() string {
	return `Indentation should use either tabs or spaces, never both.

The preferred style defaults to spaces and is configurable via the
preferred parameter ("tabs" or "spaces").`
}

// Run implements check.Check.
func (c *TabsOrSpaces) Run(file *model.SourceFile, params map[string]any) []model.Issue {
	preferred := paramString(params, "preferred", "spaces")

	offending := "\t"
	message := "File is indented with tabs but spaces are preferred."
	if preferred == "tabs" {
		offending = " "
		message = "File is indented with spaces but tabs are preferred."
	}

	var issues []model.Issue
	for i, line := range file.Lines {
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !strings.Contains(indent, offending) {
			continue
		}
		issues = append(issues, model.Issue{
			CheckID:  c.ID(),
			Category: c.Category(),
			Message:  message,
			Filename: file.Filename,
			Priority: c.BasePriority(),
			LineNo:   i + 1,
			Column:   1,
		})
	}
	return issues
}
