// Package log provides leveled logging for credo runs, built on top of the
// standard slog package.
//
// Two knobs control verbosity: --verbose raises the level to Info and
// --debug to Debug; the default only shows warnings and errors so that
// report output stays clean on stdout (logs go to stderr).
//
// The ComponentHandler tags every record with the subsystem that emitted
// it ("runner", "pipeline", "command"), which keeps interleaved output from
// concurrent check workers attributable.
package log
