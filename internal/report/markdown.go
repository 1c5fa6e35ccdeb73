package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/credo-go/credo/internal/model"
)

// MarkdownWriter renders issues as a Markdown document for sharing and
// code-review comments.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation: type-safe tables, lists and headings without hand-assembled
// strings.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the issues grouped under a severity summary table.
func (w *MarkdownWriter) Write(issues []model.Issue) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Analysis Results")
	md.PlainText("")

	w.writeSummary(md, issues)
	w.writeIssues(md, issues)

	if err := md.Build(); err != nil {
		return 0, fmt.Errorf("writing markdown report: %w", err)
	}
	return len(md.String()), nil
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, issues []model.Issue) {
	counts := make(map[model.Severity]int)
	for _, issue := range issues {
		counts[model.SeverityForPriority(issue.Priority)]++
	}

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"Critical", strconv.Itoa(counts[model.SeverityCritical])},
			{"Major", strconv.Itoa(counts[model.SeverityMajor])},
			{"Minor", strconv.Itoa(counts[model.SeverityMinor])},
			{"Info", strconv.Itoa(counts[model.SeverityInfo])},
			{"**Total**", "**" + strconv.Itoa(len(issues)) + "**"},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, issues []model.Issue) {
	md.H2("Issues")
	md.PlainText("")

	if len(issues) == 0 {
		md.PlainText("No issues found.")
		return
	}

	rows := make([][]string, 0, len(issues))
	for _, issue := range sortedByLocation(issues) {
		rows = append(rows, []string{
			fmt.Sprintf("`%s:%d`", issue.Filename, issue.LineNo),
			model.StripNamespace(issue.CheckID),
			model.SeverityForPriority(issue.Priority).String(),
			issue.Message,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Location", "Check", "Severity", "Message"},
		Rows:   rows,
	})
}
