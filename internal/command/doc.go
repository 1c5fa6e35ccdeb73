// Package command implements the built-in commands dispatched by the
// run-command pipeline stage. Each command satisfies execution.Command:
// Init runs at registration time to set up pipelines and defaults, Run
// executes the command against the current context.
//
// The analysis commands (suggest, list) register their own named pipelines
// during Init and re-enter the pipeline machinery from Run, so plugins can
// extend their stages the same way they extend the top-level pipeline.
package command
