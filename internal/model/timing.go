package model

import "time"

// TimingSample records the wall-clock cost of one unit of work, tagged so
// samples can be grouped (per check, per file, per task).
type TimingSample struct {
	// Tags identify the work, e.g. {"check": "...", "filename": "..."}.
	Tags map[string]string `json:"tags"`

	// StartedAt is when the work began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the work took.
	Duration time.Duration `json:"duration"`
}

// Tag returns the value for key, or "" when the sample has no such tag.
func (t TimingSample) Tag(key string) string {
	return t.Tags[key]
}
