package store

import (
	"sync"

	"github.com/credo-go/credo/internal/model"
)

// SourceFiles holds the loaded analysis targets, keyed by filename.
// Insertion order is remembered so that whole-store reads are stable.
type SourceFiles struct {
	mu     sync.Mutex
	byName map[string]*model.SourceFile
	order  []string
}

// NewSourceFiles creates an empty source-file store.
func NewSourceFiles() *SourceFiles {
	return &SourceFiles{byName: make(map[string]*model.SourceFile)}
}

// Put merges the given files into the store. A file with a filename already
// present replaces the earlier entry but keeps its original position.
func (s *SourceFiles) Put(files ...*model.SourceFile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range files {
		if _, exists := s.byName[f.Filename]; !exists {
			s.order = append(s.order, f.Filename)
		}
		s.byName[f.Filename] = f
	}
}

// Get returns the source file stored under filename, or nil.
func (s *SourceFiles) Get(filename string) *model.SourceFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byName[filename]
}

// GetAll returns a snapshot of all stored files in insertion order.
func (s *SourceFiles) GetAll() []*model.SourceFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.SourceFile, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Replace swaps the entire store content for the given files.
func (s *SourceFiles) Replace(files []*model.SourceFile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byName = make(map[string]*model.SourceFile, len(files))
	s.order = s.order[:0]
	for _, f := range files {
		if _, exists := s.byName[f.Filename]; !exists {
			s.order = append(s.order, f.Filename)
		}
		s.byName[f.Filename] = f
	}
}

// Count returns the number of stored files.
func (s *SourceFiles) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byName)
}
