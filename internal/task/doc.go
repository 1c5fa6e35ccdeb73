// Package task holds the built-in pipeline tasks: the bodies of the
// default top-level stages (option parsing through command dispatch) and
// the analysis tasks the suggest and list commands compose into their own
// pipelines (file loading, check running, issue filtering, printing).
//
// Tasks never return errors. A task that hits a configuration problem
// records a user-facing result, sets the exit status and halts the
// pipeline; the context keeps flowing through the skipped stages intact.
package task
