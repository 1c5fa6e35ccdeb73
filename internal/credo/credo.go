// Package credo wires the pieces into a runnable tool: it builds the
// execution context, attaches the default tasks to the top-level pipeline
// stages, registers the built-in commands and runs the pipeline. The CLI
// entry point calls Run and exits with its return value.
package credo

import (
	"fmt"
	"io"
	"os"

	"github.com/credo-go/credo/internal/command"
	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/log"
	"github.com/credo-go/credo/internal/plugin"
	"github.com/credo-go/credo/internal/task"
)

// Version is the release version reported by the version and info
// commands. Overridden at build time via ldflags.
var Version = "(devel)"

// mainOwner attributes the default task registrations in diagnostics.
const mainOwner = "credo"

// Runner holds the run configuration assembled from options.
type Runner struct {
	stdout  io.Writer
	stderr  io.Writer
	plugins []plugin.Plugin
	workDir string
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdout redirects normal output, for tests and embedding.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr redirects log and error output.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// WithPlugins registers plugins initialized during the
// initialize-plugins stage.
func WithPlugins(plugins ...plugin.Plugin) Option {
	return func(r *Runner) {
		r.plugins = append(r.plugins, plugins...)
	}
}

// WithWorkDir overrides the directory searched for configuration and
// source files.
func WithWorkDir(dir string) Option {
	return func(r *Runner) {
		r.workDir = dir
	}
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a full credo run for the argument list (without the binary
// name) and returns the process exit status. Contract violations are
// programming errors: the diagnostic is printed and the run fails, but the
// process is left to the caller.
func Run(args []string, opts ...Option) int {
	return NewRunner(opts...).Run(args)
}

// Run executes a full run and returns the exit status.
func (r *Runner) Run(args []string) (status int) {
	defer func() {
		if rec := recover(); rec != nil {
			if v, ok := rec.(*execution.ContractViolation); ok {
				fmt.Fprintf(r.stderr, "credo: %v\n", v)
				status = 70
				return
			}
			panic(rec)
		}
	}()

	exec := execution.Build(args)
	exec.Logger = log.New(r.stderr, false, false)
	if r.workDir != "" {
		exec.Assign(task.WorkDirAssign, r.workDir)
	}

	exec = r.register(exec)

	exec = execution.Run(exec)
	return exec.ExitStatus()
}

// register attaches the default tasks to the top-level pipeline stages and
// registers the built-in commands, returning the context the last Init
// produced. Command registration runs each command's Init, which is where
// suggest, list and explain set up their own pipelines.
func (r *Runner) register(exec *execution.Execution) *execution.Execution {
	stages := []struct {
		stage string
		task  execution.Task
	}{
		{execution.StageParseOptions, task.ParseOptions{}},
		{execution.StageInitializePlugins, task.NewInitializePlugins(r.plugins...)},
		{execution.StageValidateOptions, task.ValidateOptions{}},
		{execution.StageConvertOptionsToConfig, task.ConvertOptionsToConfig{}},
		{execution.StageDetermineCommand, task.DetermineCommand{}},
		{execution.StageSetDefaultCommand, task.SetDefaultCommand{}},
		{execution.StageResolveConfig, task.ResolveConfig{WorkDir: r.workDir}},
		{execution.StageValidateConfig, task.ValidateConfig{}},
		{execution.StageRunCommand, task.RunCommand{}},
		{execution.StageHaltExecution, task.HaltExecution{}},
	}
	for _, s := range stages {
		if err := exec.AppendTask(mainOwner, "", s.stage, s.task, nil); err != nil {
			panic(&execution.ContractViolation{
				Unit:   "default pipeline",
				Detail: err.Error(),
			})
		}
	}

	for _, cmd := range command.All(r.stdout, Version) {
		exec = exec.PutCommand(cmd)
	}
	return exec
}
