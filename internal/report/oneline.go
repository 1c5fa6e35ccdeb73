package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/credo-go/credo/internal/model"
)

// OnelineWriter renders one issue per line for terminal display:
//
//	[R] lib/worker.ex:14:7 Line is too long (max is 120, was 133).
//
// The single-letter tag is the first letter of the check's category, and
// the whole line is colored by the issue's severity when color is enabled.
type OnelineWriter struct {
	baseWriter

	// colored enables ANSI colors. Off by default so piped output stays
	// clean.
	colored bool
}

// OnelineWriterOption configures an OnelineWriter.
type OnelineWriterOption func(*OnelineWriter)

// WithColor enables or disables ANSI-colored output.
func WithColor(enabled bool) OnelineWriterOption {
	return func(w *OnelineWriter) {
		w.colored = enabled
	}
}

// NewOnelineWriter creates an OnelineWriter that outputs to the given
// writer.
func NewOnelineWriter(output io.Writer, opts ...OnelineWriterOption) *OnelineWriter {
	w := &OnelineWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the issues one per line, ordered by location.
func (w *OnelineWriter) Write(issues []model.Issue) (int, error) {
	var total int
	for _, issue := range sortedByLocation(issues) {
		n, err := fmt.Fprintln(w.output, w.renderLine(issue))
		total += n
		if err != nil {
			return total, fmt.Errorf("writing issue line: %w", err)
		}
	}
	return total, nil
}

func (w *OnelineWriter) renderLine(issue model.Issue) string {
	location := fmt.Sprintf("%s:%d", issue.Filename, issue.LineNo)
	if issue.Column > 0 {
		location = fmt.Sprintf("%s:%d", location, issue.Column)
	}

	line := fmt.Sprintf("[%s] %s %s", categoryTag(issue.Category), location, issue.Message)
	if !w.colored {
		return line
	}
	return severityColor(issue.Priority).Sprint(line)
}

// categoryTag is the single-letter category marker, "?" for an unknown
// category.
func categoryTag(category string) string {
	if category == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(category)[0:1]))
}

// severityColor maps an issue priority to a terminal color, one color per
// severity tier.
func severityColor(priority int) *color.Color {
	switch model.SeverityForPriority(priority) {
	case model.SeverityCritical:
		return color.New(color.FgRed)
	case model.SeverityMajor:
		return color.New(color.FgYellow)
	case model.SeverityMinor:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgHiBlack)
	}
}
