package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/credo-go/credo/internal/model"
)

// JSONWriter renders issues as a JSON document for tool integration.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because it is sufficient for our needs and behaves
// consistently across Go versions.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// jsonDocument is the emitted top-level object.
type jsonDocument struct {
	Issues []model.Issue `json:"issues"`
}

// Write renders the issues as pretty-printed JSON, ordered by location.
func (w *JSONWriter) Write(issues []model.Issue) (int, error) {
	doc := jsonDocument{Issues: sortedByLocation(issues)}
	if doc.Issues == nil {
		doc.Issues = []model.Issue{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding issues: %w", err)
	}
	data = append(data, '\n')

	n, err := w.output.Write(data)
	if err != nil {
		return n, fmt.Errorf("writing JSON report: %w", err)
	}
	return n, nil
}
