package model

import "strings"

// SourceFile is one analysis target, split into lines so that checks can
// address findings by 1-based line number.
type SourceFile struct {
	// Filename is the path the file was loaded from.
	Filename string `json:"filename"`

	// Lines holds the file content split on newlines.
	Lines []string `json:"-"`

	// Valid reports whether the file could be read and decoded.
	// Invalid files stay in the store so commands can report them,
	// but checks skip them.
	Valid bool `json:"valid"`
}

// NewSourceFile builds a SourceFile from raw file content.
func NewSourceFile(filename, source string) *SourceFile {
	return &SourceFile{
		Filename: filename,
		Lines:    strings.Split(source, "\n"),
		Valid:    true,
	}
}

// NewInvalidSourceFile records a target that could not be loaded.
func NewInvalidSourceFile(filename string) *SourceFile {
	return &SourceFile{Filename: filename}
}

// Line returns the 1-based line n, or "" when n is out of range.
func (s *SourceFile) Line(n int) string {
	if n < 1 || n > len(s.Lines) {
		return ""
	}
	return s.Lines[n-1]
}

// LineCount returns the number of lines in the file.
func (s *SourceFile) LineCount() int {
	return len(s.Lines)
}
