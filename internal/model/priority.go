package model

import (
	"fmt"
	"strconv"
)

// Named priority aliases accepted wherever a numeric priority is expected,
// e.g. the --min-priority switch. The numbers line up with the severity
// boundaries in SeverityForPriority.
const (
	PriorityHigher = 20
	PriorityHigh   = 10
	PriorityNormal = 1
	PriorityLow    = -10
	PriorityIgnore = -100
)

// priorityNames maps the user-facing alias to its numeric value.
var priorityNames = map[string]int{
	"higher": PriorityHigher,
	"high":   PriorityHigh,
	"normal": PriorityNormal,
	"low":    PriorityLow,
	"ignore": PriorityIgnore,
}

// ParsePriority converts a priority given on the command line into its
// numeric value. It accepts both the named aliases ("high", "normal", ...)
// and raw signed integers.
func ParsePriority(s string) (int, error) {
	if p, ok := priorityNames[s]; ok {
		return p, nil
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid priority %q: expected an integer or one of higher/high/normal/low/ignore", s)
	}
	return p, nil
}
