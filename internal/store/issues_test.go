package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/credo-go/credo/internal/model"
)

// TestIssuesAppendAndGet tests basic accumulation per file.
func TestIssuesAppendAndGet(t *testing.T) {
	t.Parallel()

	s := NewIssues()
	s.Append(model.Issue{CheckID: "a", Filename: "f.ex", LineNo: 1})
	s.Append(model.Issue{CheckID: "b", Filename: "f.ex", LineNo: 2})
	s.Append(model.Issue{CheckID: "c", Filename: "g.ex", LineNo: 1})

	got := s.Get("f.ex")
	if len(got) != 2 {
		t.Fatalf("expected 2 issues for f.ex, got %d", len(got))
	}
	if got[0].CheckID != "a" || got[1].CheckID != "b" {
		t.Errorf("issues out of submission order: %v", got)
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}
	if len(s.All()) != 3 {
		t.Errorf("All() returned %d issues, want 3", len(s.All()))
	}
}

// TestIssuesConcurrentProducers tests that N parallel producers, each
// appending M issues for a distinct file, lose nothing and keep per-file
// submission order under any interleaving.
func TestIssuesConcurrentProducers(t *testing.T) {
	t.Parallel()

	const (
		producers = 16
		perFile   = 50
	)

	s := NewIssues()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			filename := fmt.Sprintf("file_%d.ex", p)
			for i := 0; i < perFile; i++ {
				s.Append(model.Issue{
					CheckID:  "check",
					Filename: filename,
					LineNo:   i + 1,
				})
			}
		}(p)
	}
	wg.Wait()

	if got := s.Count(); got != producers*perFile {
		t.Fatalf("Count() = %d, want %d", got, producers*perFile)
	}

	all := s.GetAll()
	if len(all) != producers {
		t.Fatalf("expected %d files, got %d", producers, len(all))
	}
	for filename, issues := range all {
		if len(issues) != perFile {
			t.Errorf("%s: expected %d issues, got %d", filename, perFile, len(issues))
		}
		for i, issue := range issues {
			if issue.LineNo != i+1 {
				t.Errorf("%s: issue %d out of submission order (line %d)", filename, i, issue.LineNo)
				break
			}
		}
	}
}

// TestIssuesSnapshotIsolation tests that reads return copies.
func TestIssuesSnapshotIsolation(t *testing.T) {
	t.Parallel()

	s := NewIssues()
	s.Append(model.Issue{CheckID: "a", Filename: "f.ex"})

	snap := s.Get("f.ex")
	snap[0].CheckID = "mutated"

	if got := s.Get("f.ex")[0].CheckID; got != "a" {
		t.Errorf("store was mutated through a snapshot: %q", got)
	}

	whole := s.GetAll()
	whole["f.ex"][0].CheckID = "mutated"
	if got := s.Get("f.ex")[0].CheckID; got != "a" {
		t.Errorf("store was mutated through a map snapshot: %q", got)
	}
}

// TestIssuesSetAndReplace tests wholesale replacement.
func TestIssuesSetAndReplace(t *testing.T) {
	t.Parallel()

	t.Run("Set replaces one file's list", func(t *testing.T) {
		t.Parallel()

		s := NewIssues()
		s.Append(model.Issue{CheckID: "old", Filename: "f.ex"})
		s.Set("f.ex", []model.Issue{{CheckID: "new", Filename: "f.ex"}})

		got := s.Get("f.ex")
		if len(got) != 1 || got[0].CheckID != "new" {
			t.Errorf("Set did not replace the list: %v", got)
		}
	})

	t.Run("Replace swaps the whole store", func(t *testing.T) {
		t.Parallel()

		s := NewIssues()
		s.Append(model.Issue{CheckID: "old", Filename: "f.ex"})
		s.Replace(map[string][]model.Issue{
			"g.ex": {{CheckID: "new", Filename: "g.ex"}},
		})

		if len(s.Get("f.ex")) != 0 {
			t.Error("expected f.ex to be gone after Replace")
		}
		if got := s.Get("g.ex"); len(got) != 1 || got[0].CheckID != "new" {
			t.Errorf("Replace content wrong: %v", got)
		}
	})
}
