// Package execution defines the run context threaded through every pipeline
// stage and task, and the machinery that executes pipelines.
//
// An Execution is built once per invocation. It carries the raw arguments,
// the parsed CLI result, the switch registry, the static configuration, the
// run-derived options and all mutable run state: the named pipelines, the
// command registry, the plugin parameter store and the handles to the four
// concurrent stores. Tasks and commands receive an Execution and return an
// Execution; nothing in the core reaches for process-wide globals.
//
// Pipeline execution is sequential and halt-aware: once Halt is called,
// every not-yet-dispatched task is skipped and the context passes through
// unchanged. Work already fanned out inside a running task owns its own
// completion.
//
// Tasks and commands are held to a contract: they must return a valid
// (non-nil) Execution. A violation is a programmer error and panics with a
// *ContractViolation naming the offending unit, because a corrupted context
// would silently desync every downstream stage.
package execution
