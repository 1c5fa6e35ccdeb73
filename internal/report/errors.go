package report

import "errors"

// Sentinel errors for report writing.
var (
	// ErrUnknownFormat is returned when the --format switch names a
	// format no writer implements.
	ErrUnknownFormat = errors.New("unknown output format")
)
