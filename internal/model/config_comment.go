package model

import (
	"strconv"
	"strings"
)

// ConfigComment is one per-file override parsed from a magic comment in the
// source, e.g. "# credo:disable-for-this-file Credo.Check.Design.TagTODO".
// The check runner consults these when filtering a file's issues.
type ConfigComment struct {
	// Filename the comment appears in.
	Filename string `json:"filename"`

	// LineNo is the 1-based line of the comment.
	LineNo int `json:"line_no"`

	// Instruction is "disable-for-this-file", "disable-for-next-line"
	// or "disable-for-lines".
	Instruction string `json:"instruction"`

	// Lines is the count given after "disable-for-lines:", the number of
	// lines following the comment the instruction covers.
	Lines int `json:"lines,omitempty"`

	// CheckID names the check being disabled. Empty disables all checks
	// for the comment's scope.
	CheckID string `json:"check,omitempty"`
}

// configCommentMarker introduces a config comment inside a source comment.
const configCommentMarker = "credo:"

// Config-comment instructions.
const (
	InstructionDisableFile     = "disable-for-this-file"
	InstructionDisableNextLine = "disable-for-next-line"
	InstructionDisableLines    = "disable-for-lines"
)

// ParseConfigComments scans a source file for magic comments and returns
// the overrides it declares, in line order.
func ParseConfigComments(f *SourceFile) []ConfigComment {
	var comments []ConfigComment
	for i, line := range f.Lines {
		idx := strings.Index(line, configCommentMarker)
		if idx < 0 {
			continue
		}
		rest := strings.Fields(line[idx+len(configCommentMarker):])
		if len(rest) == 0 {
			continue
		}

		comment := ConfigComment{
			Filename: f.Filename,
			LineNo:   i + 1,
		}
		switch instruction := rest[0]; {
		case instruction == InstructionDisableFile, instruction == InstructionDisableNextLine:
			comment.Instruction = instruction
		case strings.HasPrefix(instruction, InstructionDisableLines+":"):
			n, err := strconv.Atoi(strings.TrimPrefix(instruction, InstructionDisableLines+":"))
			if err != nil || n <= 0 {
				continue
			}
			comment.Instruction = InstructionDisableLines
			comment.Lines = n
		default:
			continue
		}
		if len(rest) > 1 {
			comment.CheckID = rest[1]
		}
		comments = append(comments, comment)
	}
	return comments
}

// Suppresses reports whether the comment silences the given check at the
// given line.
func (c ConfigComment) Suppresses(checkID string, lineNo int) bool {
	if c.CheckID != "" && c.CheckID != checkID && StripNamespace(c.CheckID) != StripNamespace(checkID) {
		return false
	}
	switch c.Instruction {
	case InstructionDisableFile:
		return true
	case InstructionDisableNextLine:
		return lineNo == c.LineNo+1
	case InstructionDisableLines:
		return lineNo > c.LineNo && lineNo <= c.LineNo+c.Lines
	default:
		return false
	}
}
