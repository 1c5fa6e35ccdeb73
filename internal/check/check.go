package check

import (
	"github.com/credo-go/credo/internal/model"
)

// Check inspects a single source file and reports issues.
//
// Implementations must be safe for concurrent use: the runner invokes the
// same Check value from many file workers at once.
type Check interface {
	// ID is the namespaced check identifier, e.g.
	// "Credo.Check.Readability.MaxLineLength".
	ID() string

	// Category groups related checks: "readability", "design",
	// "consistency", "refactoring" or "warning".
	Category() string

	// BasePriority is the priority assigned to issues of this check
	// before configuration adjustments.
	BasePriority() int

	// Explanation is the long-form description shown by the explain
	// command.
	Explanation() string

	// Run analyzes the file and returns its issues in discovery order.
	// Params carries the check's configured parameter bag, possibly nil.
	Run(file *model.SourceFile, params map[string]any) []model.Issue
}

// Categories lists the known check categories with their descriptions,
// in display order.
func Categories() []Category {
	return []Category{
		{Name: "consistency", Description: "Checks for consistent usage of formatting conventions across the codebase."},
		{Name: "design", Description: "Checks for flags left in the code, like TODO and FIXME tags."},
		{Name: "readability", Description: "Checks that make the code easier to read without changing its behavior."},
		{Name: "refactoring", Description: "Checks for opportunities to simplify or restructure code."},
		{Name: "warning", Description: "Checks for code that looks like a likely mistake."},
	}
}

// Category is one check category with its user-facing description.
type Category struct {
	Name        string
	Description string
}

// Registry holds the active checks in registration order.
type Registry struct {
	checks []Check
	byID   map[string]Check
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Check)}
}

// Put registers checks. A check with an already-registered identifier
// replaces the earlier registration but keeps its position.
func (r *Registry) Put(checks ...Check) {
	for _, c := range checks {
		if _, exists := r.byID[c.ID()]; !exists {
			r.checks = append(r.checks, c)
		} else {
			for i, existing := range r.checks {
				if existing.ID() == c.ID() {
					r.checks[i] = c
					break
				}
			}
		}
		r.byID[c.ID()] = c
	}
}

// All returns a snapshot of the registered checks in order.
func (r *Registry) All() []Check {
	out := make([]Check, len(r.checks))
	copy(out, r.checks)
	return out
}

// Get returns the check registered under id, matching both the namespaced
// and the stripped form.
func (r *Registry) Get(id string) (Check, bool) {
	if c, ok := r.byID[id]; ok {
		return c, true
	}
	for _, c := range r.checks {
		if model.StripNamespace(c.ID()) == model.StripNamespace(id) {
			return c, true
		}
	}
	return nil, false
}

// Count returns the number of registered checks.
func (r *Registry) Count() int {
	return len(r.checks)
}
