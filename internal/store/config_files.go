package store

import (
	"sync"

	"github.com/credo-go/credo/internal/model"
)

// ConfigFiles accumulates discovered configuration-file descriptors in
// discovery order. The resolve-config task reads them back in that order,
// so later files override earlier ones on merge.
type ConfigFiles struct {
	mu    sync.Mutex
	files []model.ConfigFile
}

// NewConfigFiles creates an empty config-file store.
func NewConfigFiles() *ConfigFiles {
	return &ConfigFiles{}
}

// Append adds descriptors to the end of the list.
func (s *ConfigFiles) Append(files ...model.ConfigFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, files...)
}

// GetAll returns a snapshot of all descriptors in discovery order.
func (s *ConfigFiles) GetAll() []model.ConfigFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ConfigFile, len(s.files))
	copy(out, s.files)
	return out
}

// Replace swaps the entire list of descriptors.
func (s *ConfigFiles) Replace(files []model.ConfigFile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = make([]model.ConfigFile, len(files))
	copy(s.files, files)
}

// Count returns the number of stored descriptors.
func (s *ConfigFiles) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
