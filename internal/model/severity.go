package model

import "strings"

// Severity represents the export tier of an issue, derived from its priority.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// the exact tag expected by external quality gates (e.g. SonarQube).
type Severity int

const (
	// SeverityInfo covers issues with negative priority. These carry no
	// urgency and exist for awareness only.
	SeverityInfo Severity = iota

	// SeverityMinor covers priorities 0 through 9.
	SeverityMinor

	// SeverityMajor covers priorities 10 through 19.
	SeverityMajor

	// SeverityCritical covers priorities of 20 and above.
	SeverityCritical
)

// String returns the export tag for the severity tier.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityMinor:
		return "MINOR"
	case SeverityMajor:
		return "MAJOR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// SeverityForPriority maps a signed issue priority to its severity tier.
// Boundaries are inclusive: p >= 20 is CRITICAL, 10..19 is MAJOR,
// 0..9 is MINOR and anything below zero is INFO.
func SeverityForPriority(p int) Severity {
	switch {
	case p >= 20:
		return SeverityCritical
	case p >= 10:
		return SeverityMajor
	case p >= 0:
		return SeverityMinor
	default:
		return SeverityInfo
	}
}

// languageNamespacePrefix is the module qualifier that source languages
// prepend to fully qualified check names. Exporters strip it so that rule
// identifiers stay stable across host languages.
const languageNamespacePrefix = "Elixir."

// StripNamespace removes the leading language-namespace qualifier from a
// check identifier. "Elixir.Credo.Check.Readability.ModuleDoc" becomes
// "Credo.Check.Readability.ModuleDoc". Identifiers without the qualifier
// are returned unchanged.
func StripNamespace(checkID string) string {
	return strings.TrimPrefix(checkID, languageNamespacePrefix)
}
