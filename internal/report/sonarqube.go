package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/credo-go/credo/internal/model"
)

// SonarQube export constants. Every exported issue carries the same engine
// identifier, issue type and effort estimate.
const (
	sonarEngineID      = "credo"
	sonarIssueType     = "CODE_SMELL"
	sonarEffortMinutes = 90
)

// SonarQubeWriter writes the generic-issue import file SonarQube consumes,
// then renders the same issues in oneline form for console consumption.
//
// A write failure on the export file is returned to the caller, never
// dropped; whether it affects the exit status is the caller's policy.
type SonarQubeWriter struct {
	baseWriter

	// baseFolder is prepended to every issue's filename so paths resolve
	// against the SonarQube project root.
	baseFolder string

	// console receives the secondary oneline rendering.
	console *OnelineWriter
}

// SonarQubeWriterOption configures a SonarQubeWriter.
type SonarQubeWriterOption func(*SonarQubeWriter)

// WithBaseFolder sets the prefix concatenated with issue filenames in the
// export file.
func WithBaseFolder(folder string) SonarQubeWriterOption {
	return func(w *SonarQubeWriter) {
		w.baseFolder = folder
	}
}

// WithConsole sets the destination for the secondary oneline rendering.
func WithConsole(output io.Writer, colored bool) SonarQubeWriterOption {
	return func(w *SonarQubeWriter) {
		w.console = NewOnelineWriter(output, WithColor(colored))
	}
}

// NewSonarQubeWriter creates a SonarQubeWriter whose export file goes to
// the given writer.
func NewSonarQubeWriter(output io.Writer, opts ...SonarQubeWriterOption) *SonarQubeWriter {
	w := &SonarQubeWriter{
		baseWriter: newBaseWriter(output),
		console:    NewOnelineWriter(io.Discard),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

type sonarDocument struct {
	Issues []sonarIssue `json:"issues"`
}

type sonarIssue struct {
	EngineID        string        `json:"engineId"`
	RuleID          string        `json:"ruleId"`
	Severity        string        `json:"severity"`
	Type            string        `json:"type"`
	EffortMinutes   int           `json:"effortMinutes"`
	PrimaryLocation sonarLocation `json:"primaryLocation"`
}

type sonarLocation struct {
	Message   string         `json:"message"`
	FilePath  string         `json:"filePath"`
	TextRange sonarTextRange `json:"textRange"`
}

type sonarTextRange struct {
	StartLine int `json:"startLine"`
}

// Write writes the export document, then the oneline rendering.
func (w *SonarQubeWriter) Write(issues []model.Issue) (int, error) {
	doc := sonarDocument{Issues: []sonarIssue{}}
	for _, issue := range sortedByLocation(issues) {
		doc.Issues = append(doc.Issues, w.convert(issue))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding export file: %w", err)
	}
	data = append(data, '\n')

	total, err := w.output.Write(data)
	if err != nil {
		return total, fmt.Errorf("writing export file: %w", err)
	}

	n, err := w.console.Write(issues)
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

func (w *SonarQubeWriter) convert(issue model.Issue) sonarIssue {
	return sonarIssue{
		EngineID:      sonarEngineID,
		RuleID:        model.StripNamespace(issue.CheckID),
		Severity:      model.SeverityForPriority(issue.Priority).String(),
		Type:          sonarIssueType,
		EffortMinutes: sonarEffortMinutes,
		PrimaryLocation: sonarLocation{
			Message:  issue.Message,
			FilePath: w.baseFolder + issue.Filename,
			TextRange: sonarTextRange{
				StartLine: issue.LineNo,
			},
		},
	}
}
