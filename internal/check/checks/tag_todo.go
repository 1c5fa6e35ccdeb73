package checks

import (
	"fmt"
	"regexp"

	"github.com/credo-go/credo/internal/model"
)

// TagTODO reports TODO tags left in the source.
type TagTODO struct {
	re *regexp.Regexp
}

// NewTagTODO creates the check.
func NewTagTODO() *TagTODO {
	return &TagTODO{re: tagPattern("TODO")}
}

// ID implements check.Check.
func (c *TagTODO) ID() string { return "Credo.Check.Design.TagTODO" }

// Category implements check.Check.
func (c *TagTODO) Category() string { return "design" }

// BasePriority implements check.Check.
func (c *TagTODO) BasePriority() int { return 2 }

// Explanation implements check.Check.
func (c *TagTODO) Explanation() string {
	return `TODO tags are reminders for future work.

They are fine while working on a change, but should be resolved or turned
into tracked tickets before the change ships.`
}

// Run implements check.Check.
func (c *TagTODO) Run(file *model.SourceFile, _ map[string]any) []model.Issue {
	return findTags(c, c.re, "TODO", file)
}

// TagFIXME reports FIXME tags left in the source. FIXME marks code known
// to be wrong, so it outranks TODO.
type TagFIXME struct {
	re *regexp.Regexp
}

// NewTagFIXME creates the check.
func NewTagFIXME() *TagFIXME {
	return &TagFIXME{re: tagPattern("FIXME")}
}

// ID implements check.Check.
func (c *TagFIXME) ID() string { return "Credo.Check.Design.TagFIXME" }

// Category implements check.Check.
func (c *TagFIXME) Category() string { return "design" }

// BasePriority implements check.Check.
func (c *TagFIXME) BasePriority() int { return 12 }

// Explanation implements check.Check.
func (c *TagFIXME) Explanation() string {
	return `FIXME tags mark code that is known to be broken.

Unlike TODO tags they flag defects, not future work, and should be fixed
before the change ships.`
}

// Run implements check.Check.
func (c *TagFIXME) Run(file *model.SourceFile, _ map[string]any) []model.Issue {
	return findTags(c, c.re, "FIXME", file)
}

// tagPattern matches the tag as a word, optionally followed by a colon.
func tagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + tag + `\b:?`)
}

// tagged is the subset of check.Check needed by findTags.
type tagged interface {
	ID() string
	Category() string
	BasePriority() int
}

func findTags(c tagged, re *regexp.Regexp, tag string, file *model.SourceFile) []model.Issue {
	var issues []model.Issue
	for i, line := range file.Lines {
		loc := re.FindStringIndex(line)
		if loc == nil {
			continue
		}
		issues = append(issues, model.Issue{
			CheckID:  c.ID(),
			Category: c.Category(),
			Message:  fmt.Sprintf("Found a %s tag in a comment: %q", tag, line[loc[0]:loc[1]]),
			Filename: file.Filename,
			Priority: c.BasePriority(),
			LineNo:   i + 1,
			Column:   loc[0] + 1,
			Trigger:  line[loc[0]:loc[1]],
		})
	}
	return issues
}
