package check

import (
	"testing"

	"github.com/credo-go/credo/internal/model"
)

// fakeCheck is a minimal Check for selector and registry tests.
type fakeCheck struct {
	id       string
	category string
	priority int
}

func (c fakeCheck) ID() string           { return c.id }
func (c fakeCheck) Category() string     { return c.category }
func (c fakeCheck) BasePriority() int    { return c.priority }
func (c fakeCheck) Explanation() string  { return "" }
func (c fakeCheck) Run(*model.SourceFile, map[string]any) []model.Issue {
	return nil
}

func ids(checks []Check) []string {
	out := make([]string, len(checks))
	for i, c := range checks {
		out[i] = c.ID()
	}
	return out
}

// TestSelect tests only/ignore filtering.
func TestSelect(t *testing.T) {
	t.Parallel()

	checks := []Check{
		fakeCheck{id: "A"},
		fakeCheck{id: "B"},
		fakeCheck{id: "C"},
	}

	t.Run("selected is only-matched minus ignore-matched", func(t *testing.T) {
		t.Parallel()

		sel, err := Select(checks, []string{"^A$", "^C$"}, []string{"^C$"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertIDs(t, "OnlyMatched", sel.OnlyMatched, "A", "C")
		assertIDs(t, "IgnoreMatched", sel.IgnoreMatched, "C")
		assertIDs(t, "Selected", sel.Selected, "A")
	})

	t.Run("empty only includes everything", func(t *testing.T) {
		t.Parallel()

		sel, err := Select(checks, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertIDs(t, "Selected", sel.Selected, "A", "B", "C")
		assertIDs(t, "OnlyMatched", sel.OnlyMatched, "A", "B", "C")
		if len(sel.IgnoreMatched) != 0 {
			t.Errorf("IgnoreMatched = %v, want empty", ids(sel.IgnoreMatched))
		}
	})

	t.Run("ignore wins on overlap", func(t *testing.T) {
		t.Parallel()

		sel, err := Select(checks, []string{"."}, []string{"."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(sel.Selected) != 0 {
			t.Errorf("Selected = %v, want empty", ids(sel.Selected))
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		readability := []Check{
			fakeCheck{id: "Credo.Check.Readability.MaxLineLength"},
			fakeCheck{id: "Credo.Check.Design.TagTODO"},
		}

		sel, err := Select(readability, []string{"readability"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertIDs(t, "Selected", sel.Selected, "Credo.Check.Readability.MaxLineLength")
	})

	t.Run("malformed pattern is an error", func(t *testing.T) {
		t.Parallel()

		if _, err := Select(checks, []string{"("}, nil); err == nil {
			t.Error("expected error for malformed only pattern")
		}
		if _, err := Select(checks, nil, []string{"("}); err == nil {
			t.Error("expected error for malformed ignore pattern")
		}
	})
}

func assertIDs(t *testing.T, label string, checks []Check, want ...string) {
	t.Helper()

	got := ids(checks)
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s = %v, want %v", label, got, want)
		}
	}
}

// TestRegistry tests registration and lookup.
func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Put(
		fakeCheck{id: "Elixir.Credo.Check.Design.TagTODO", priority: 1},
		fakeCheck{id: "Credo.Check.Readability.MaxLineLength", priority: 1},
	)

	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}

	t.Run("lookup by exact id", func(t *testing.T) {
		t.Parallel()

		if _, ok := r.Get("Credo.Check.Readability.MaxLineLength"); !ok {
			t.Error("expected lookup to succeed")
		}
	})

	t.Run("lookup matches stripped namespace", func(t *testing.T) {
		t.Parallel()

		if _, ok := r.Get("Credo.Check.Design.TagTODO"); !ok {
			t.Error("expected stripped-form lookup to succeed")
		}
	})

	t.Run("re-registration replaces in place", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.Put(fakeCheck{id: "X", priority: 1})
		r.Put(fakeCheck{id: "X", priority: 9})

		if r.Count() != 1 {
			t.Fatalf("Count() = %d, want 1", r.Count())
		}
		c, _ := r.Get("X")
		if c.BasePriority() != 9 {
			t.Errorf("BasePriority() = %d, want the replacement", c.BasePriority())
		}
	})
}
