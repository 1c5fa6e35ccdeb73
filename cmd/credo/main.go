// Package main provides the entry point for the credo CLI.
//
// credo is a static analysis tool driven by an extensible execution
// pipeline. It discovers source files, runs the configured checks over
// them in parallel and reports the findings in several formats.
//
// Usage:
//
//	credo [command] [options] [paths]
//
// See `credo help` for commands and options.
package main

// main is the entry point for credo.
func main() {
	Execute()
}
