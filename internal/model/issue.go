package model

// Issue is one finding reported by a check against a single source file.
//
// Priority is an unbounded signed integer; its magnitude encodes severity.
// Higher values are more urgent, negative values are informational only.
// See Severity for the mapping used by exporters.
type Issue struct {
	// CheckID is the namespaced identifier of the check that produced
	// this issue, e.g. "Credo.Check.Readability.MaxLineLength".
	CheckID string `json:"check"`

	// Category groups related checks, e.g. "readability" or "design".
	Category string `json:"category"`

	// Message is the human-readable description of the finding.
	Message string `json:"message"`

	// Filename is the path of the source file the issue was found in.
	Filename string `json:"filename"`

	// Priority is the signed severity source value. It starts from the
	// check's base priority and may be adjusted by configuration.
	Priority int `json:"priority"`

	// LineNo is the 1-based line number of the finding.
	LineNo int `json:"line_no"`

	// Column is the 1-based column of the trigger, 0 when unknown.
	Column int `json:"column,omitempty"`

	// Trigger is the text fragment that caused the issue, if any.
	Trigger string `json:"trigger,omitempty"`
}
