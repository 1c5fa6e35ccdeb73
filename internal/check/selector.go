package check

import (
	"fmt"
	"regexp"
)

// Selection is the result of filtering a check list against only/ignore
// patterns. OnlyMatched and IgnoreMatched are kept so callers can report
// what was explicitly filtered.
type Selection struct {
	// Selected are the checks that will run: OnlyMatched minus
	// IgnoreMatched.
	Selected []Check

	// OnlyMatched are the checks matching the only patterns, or every
	// check when no only pattern was given.
	OnlyMatched []Check

	// IgnoreMatched are the checks matching the ignore patterns.
	IgnoreMatched []Check
}

// Select filters checks by the only and ignore pattern lists. Each pattern
// is compiled as a case-insensitive regular expression matched against the
// check identifier; a check matches a list when any pattern matches. An
// empty only list includes every check, an empty ignore list ignores
// nothing, and ignore always wins on overlap.
//
// Select is a pure function of its inputs; a malformed pattern is a
// configuration error reported to the caller.
func Select(checks []Check, onlyPatterns, ignorePatterns []string) (Selection, error) {
	onlyRes, err := compilePatterns(onlyPatterns)
	if err != nil {
		return Selection{}, fmt.Errorf("invalid only pattern: %w", err)
	}
	ignoreRes, err := compilePatterns(ignorePatterns)
	if err != nil {
		return Selection{}, fmt.Errorf("invalid ignore pattern: %w", err)
	}

	var sel Selection

	for _, c := range checks {
		if len(onlyRes) == 0 || anyMatch(onlyRes, c.ID()) {
			sel.OnlyMatched = append(sel.OnlyMatched, c)
		}
		if len(ignoreRes) > 0 && anyMatch(ignoreRes, c.ID()) {
			sel.IgnoreMatched = append(sel.IgnoreMatched, c)
		}
	}

	ignored := make(map[string]bool, len(sel.IgnoreMatched))
	for _, c := range sel.IgnoreMatched {
		ignored[c.ID()] = true
	}
	for _, c := range sel.OnlyMatched {
		if !ignored[c.ID()] {
			sel.Selected = append(sel.Selected, c)
		}
	}

	return sel, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	var res []*regexp.Regexp
	for _, p := range patterns {
		if p == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, err
		}
		res = append(res, re)
	}
	return res, nil
}

func anyMatch(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
