// Package model defines the core data structures used throughout credo.
//
// This package contains the following main types:
//   - Issue: One finding reported by a check against a source file
//   - SourceFile: A target file split into lines for analysis
//   - ConfigFile: A discovered configuration file descriptor
//   - TimingSample: One timed unit of work recorded during a run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (check, store, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
