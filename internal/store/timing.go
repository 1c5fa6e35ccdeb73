package store

import (
	"sync"
	"time"

	"github.com/credo-go/credo/internal/model"
)

// Timings accumulates timing samples from concurrently running workers.
type Timings struct {
	mu      sync.Mutex
	samples []model.TimingSample
}

// NewTimings creates an empty timing store.
func NewTimings() *Timings {
	return &Timings{}
}

// Append adds samples to the store.
func (s *Timings) Append(samples ...model.TimingSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, samples...)
}

// Record measures fn and stores one sample carrying the given tags.
func (s *Timings) Record(tags map[string]string, fn func()) {
	started := time.Now()
	fn()
	s.Append(model.TimingSample{
		Tags:      tags,
		StartedAt: started,
		Duration:  time.Since(started),
	})
}

// GetAll returns a snapshot of every sample recorded so far.
func (s *Timings) GetAll() []model.TimingSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.TimingSample, len(s.samples))
	copy(out, s.samples)
	return out
}

// ByTag returns a snapshot of samples whose tag key equals value.
func (s *Timings) ByTag(key, value string) []model.TimingSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.TimingSample
	for _, sample := range s.samples {
		if sample.Tags[key] == value {
			out = append(out, sample)
		}
	}
	return out
}

// Replace swaps the entire sample list.
func (s *Timings) Replace(samples []model.TimingSample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = make([]model.TimingSample, len(samples))
	copy(s.samples, samples)
}

// Total returns the summed duration of all samples matching the tag, or of
// every sample when key is empty.
func (s *Timings) Total(key, value string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total time.Duration
	for _, sample := range s.samples {
		if key == "" || sample.Tags[key] == value {
			total += sample.Duration
		}
	}
	return total
}
