package store

import (
	"sync"

	"github.com/credo-go/credo/internal/model"
)

// Issues accumulates findings per source file.
//
// Issues appended for the same file keep their submission order; no
// ordering is defined between issues of different files. All reads return
// copies of the stored slices.
type Issues struct {
	mu     sync.Mutex
	byFile map[string][]model.Issue
}

// NewIssues creates an empty issue store.
func NewIssues() *Issues {
	return &Issues{byFile: make(map[string][]model.Issue)}
}

// Append adds one issue to the list accumulated for its filename.
func (s *Issues) Append(issue model.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byFile[issue.Filename] = append(s.byFile[issue.Filename], issue)
}

// AppendAll adds a batch of issues, preserving the order of the batch
// within each file.
func (s *Issues) AppendAll(issues []model.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, issue := range issues {
		s.byFile[issue.Filename] = append(s.byFile[issue.Filename], issue)
	}
}

// Get returns a snapshot of the issues accumulated for filename, in
// submission order.
func (s *Issues) Get(filename string) []model.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()

	issues := s.byFile[filename]
	out := make([]model.Issue, len(issues))
	copy(out, issues)
	return out
}

// GetAll returns a snapshot of the whole map: filename to the ordered list
// of issues accumulated for that file.
func (s *Issues) GetAll() map[string][]model.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]model.Issue, len(s.byFile))
	for filename, issues := range s.byFile {
		cp := make([]model.Issue, len(issues))
		copy(cp, issues)
		out[filename] = cp
	}
	return out
}

// All returns the concatenation of every per-file list. Order within one
// file is preserved; order across files is unspecified.
func (s *Issues) All() []model.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Issue
	for _, issues := range s.byFile {
		out = append(out, issues...)
	}
	return out
}

// Set replaces the issue list for one filename wholesale.
func (s *Issues) Set(filename string, issues []model.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]model.Issue, len(issues))
	copy(cp, issues)
	s.byFile[filename] = cp
}

// Replace swaps the entire store content.
func (s *Issues) Replace(byFile map[string][]model.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byFile = make(map[string][]model.Issue, len(byFile))
	for filename, issues := range byFile {
		cp := make([]model.Issue, len(issues))
		copy(cp, issues)
		s.byFile[filename] = cp
	}
}

// Count returns the total number of issues across all files.
func (s *Issues) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, issues := range s.byFile {
		n += len(issues)
	}
	return n
}
