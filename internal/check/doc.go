// Package check defines the check registry, the include/exclude selector
// and the runner that executes checks against source files.
//
// A check inspects one source file and emits issues. Checks are registered
// under their namespaced identifier; plugins contribute additional checks
// the same way the built-in set is contributed. Which registered checks
// actually run is a pure function of the registry and the user's only/
// ignore patterns, computed by Select.
//
// The runner is where concurrency enters the system: it fans out one
// worker per source file under an errgroup limit, and every worker appends
// issues and timing samples into the execution's stores. The runner joins
// all workers before returning, so store readers never race writers.
package check
