package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/credo-go/credo/internal/model"
)

// Writer defines the interface for issue output.
// Implementations render the run's issues in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write renders the issues to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(issues []model.Issue) (int, error)
}

// Format names accepted by the --format switch.
const (
	FormatOneline   = "oneline"
	FormatJSON      = "json"
	FormatSonarQube = "sonarqube"
	FormatMarkdown  = "markdown"
)

// KnownFormat reports whether name is a format ForFormat can serve. The
// empty name counts: it selects the default.
func KnownFormat(name string) bool {
	switch name {
	case "", FormatOneline, FormatJSON, FormatSonarQube, FormatMarkdown:
		return true
	}
	return false
}

// ForFormat returns the writer for a format name. The empty name selects
// the default console format.
func ForFormat(name string, output io.Writer, opts ...Option) (Writer, error) {
	o := newOptions(opts...)

	switch name {
	case "", FormatOneline:
		return NewOnelineWriter(output, WithColor(o.color)), nil
	case FormatJSON:
		return NewJSONWriter(output), nil
	case FormatSonarQube:
		return NewSonarQubeWriter(output,
			WithBaseFolder(o.baseFolder),
			WithConsole(o.console, o.color),
		), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Option configures format-independent writer settings for ForFormat.
type Option func(*options)

type options struct {
	color      bool
	baseFolder string
	console    io.Writer
}

func newOptions(opts ...Option) *options {
	o := &options{console: io.Discard}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithColorOutput enables colored console output where the format supports
// it.
func WithColorOutput(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithExportBaseFolder sets the base-folder prefix for export formats that
// emit file paths relative to a project root.
func WithExportBaseFolder(folder string) Option {
	return func(o *options) {
		o.baseFolder = folder
	}
}

// WithConsoleOutput sets the destination for secondary console rendering
// produced by export formats.
func WithConsoleOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.console = w
		}
	}
}

// baseWriter provides the shared output destination for writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// sortedByLocation returns the issues ordered by filename, then line, then
// column. Writers render a stable order regardless of worker scheduling.
func sortedByLocation(issues []model.Issue) []model.Issue {
	out := make([]model.Issue, len(issues))
	copy(out, issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Filename != out[j].Filename {
			return out[i].Filename < out[j].Filename
		}
		if out[i].LineNo != out[j].LineNo {
			return out[i].LineNo < out[j].LineNo
		}
		return out[i].Column < out[j].Column
	})
	return out
}
