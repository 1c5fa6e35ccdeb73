package checks

import "github.com/credo-go/credo/internal/check"

// All returns the built-in checks in registration order.
func All() []check.Check {
	return []check.Check{
		NewTabsOrSpaces(),
		NewTrailingWhiteSpace(),
		NewMaxLineLength(),
		NewTagTODO(),
		NewTagFIXME(),
	}
}

// paramInt reads an integer parameter from a check's parameter bag,
// accepting the integer types the YAML and TOML decoders produce.
func paramInt(params map[string]any, name string, fallback int) int {
	v, ok := params[name]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return fallback
	}
}

// paramString reads a string parameter from a check's parameter bag.
func paramString(params map[string]any, name, fallback string) string {
	if v, ok := params[name].(string); ok {
		return v
	}
	return fallback
}
