// Package checks provides the built-in source checks.
//
// Each check is a small, self-contained detector implementing the
// check.Check interface; All returns the default set in registration
// order. The built-ins are deliberately language-agnostic line scanners,
// since the core treats source files as numbered lines.
package checks
