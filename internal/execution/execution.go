package execution

import (
	"log/slog"

	"github.com/credo-go/credo/internal/cli"
	"github.com/credo-go/credo/internal/config"
	"github.com/credo-go/credo/internal/model"
	"github.com/credo-go/credo/internal/store"
)

// Execution is the single context value threaded through every stage and
// task of a run. Tasks receive an Execution and return an Execution; the
// four stores it references are the only state mutated from concurrent
// workers.
type Execution struct {
	// Argv holds the raw command-line arguments, without the binary name.
	Argv []string

	// CLI is the registry of recognized switches, aliases and
	// plugin-contributed param converters.
	CLI *cli.Registry

	// CLIOptions is the parse result, populated by the parse-options
	// stage. Nil until that stage has run.
	CLIOptions *cli.Options

	// Config is the static configuration, resolved by the
	// convert-options-to-config and resolve-config stages.
	Config *config.Config

	// Run-derived options, produced from CLIOptions by
	// convert-options-to-config.

	// MinPriority suppresses issues below this priority in reports.
	MinPriority int

	// Verbose and Debug raise logging verbosity.
	Verbose bool
	Debug   bool

	// Format names the output format ("oneline", "json", "sonarqube",
	// "markdown"). Empty means the default console format.
	Format string

	// ColorEnabled turns on colored console output.
	ColorEnabled bool

	// OnlyChecks and IgnoreChecks are the user-supplied check filter
	// patterns, comma-separated on the command line.
	OnlyChecks   []string
	IgnoreChecks []string

	// EnableDisabledChecks re-enables configured-off checks whose
	// identifier matches one of these patterns.
	EnableDisabledChecks []string

	// CrashOnError aborts the whole run when a single file fails to
	// analyze instead of recording a degraded result and continuing.
	CrashOnError bool

	// MuteExitStatus forces a zero exit status regardless of findings.
	MuteExitStatus bool

	// ReadFromStdin analyzes stdin instead of the configured files.
	ReadFromStdin bool

	// Help and Version short-circuit command selection.
	Help    bool
	Version bool

	// Logger receives structured run logs.
	Logger *slog.Logger

	// Store handles. Started together with the Execution and torn down
	// only after every reader has finished.
	ConfigFiles *store.ConfigFiles
	SourceFiles *store.SourceFiles
	Issues      *store.Issues
	Timings     *store.Timings

	// Mutable run state.
	pipelines   map[string]*Pipeline
	commands    map[string]Command
	commandName string

	currentTask string
	parentTask  string

	initializingPlugin string

	halted bool

	assigns        map[string]any
	results        map[string]any
	pluginParams   map[string]map[string]any
	configComments map[string][]model.ConfigComment

	exitStatus int
}

// Build allocates a default Execution for the given argument list: default
// configuration and switch registry, the default top-level pipeline skeleton,
// and the four stores started.
func Build(args []string) *Execution {
	e := &Execution{
		Argv:        args,
		CLI:         cli.NewRegistry(),
		Config:      config.NewConfig(),
		MinPriority: model.PriorityNormal,
		Logger:      slog.Default(),

		ConfigFiles: store.NewConfigFiles(),
		SourceFiles: store.NewSourceFiles(),
		Issues:      store.NewIssues(),
		Timings:     store.NewTimings(),

		pipelines:      make(map[string]*Pipeline),
		commands:       make(map[string]Command),
		assigns:        make(map[string]any),
		results:        make(map[string]any),
		pluginParams:   make(map[string]map[string]any),
		configComments: make(map[string][]model.ConfigComment),
	}

	e.pipelines[MainPipelineKey] = NewPipeline(DefaultStageNames()...)

	return e
}

// Halt marks the run as halted. The flag is monotonic: once set it never
// resets within a run, and every not-yet-dispatched task is skipped.
func (e *Execution) Halt() {
	e.halted = true
}

// Halted reports whether the run has been halted.
func (e *Execution) Halted() bool {
	return e.halted
}

// CurrentTask returns the identity of the task currently executing, or ""
// between tasks.
func (e *Execution) CurrentTask() string {
	return e.currentTask
}

// ParentTask returns the identity of the task that invoked the pipeline the
// current task belongs to, or "" at the top level.
func (e *Execution) ParentTask() string {
	return e.parentTask
}

// SetCommandName records which command the determine-command stage selected.
func (e *Execution) SetCommandName(name string) {
	e.commandName = name
}

// CommandName returns the selected command name, or "".
func (e *Execution) CommandName() string {
	return e.commandName
}

// Assign stores a free-form named value on the context. Assigns are scoped
// to the run and shared across tasks; plugins use their param store instead.
func (e *Execution) Assign(key string, value any) {
	e.assigns[key] = value
}

// GetAssign returns a free-form assign and whether it exists.
func (e *Execution) GetAssign(key string) (any, bool) {
	v, ok := e.assigns[key]
	return v, ok
}

// PutResult records a named result for consumers (formatters, exit-status
// handling) to read after the run.
func (e *Execution) PutResult(name string, value any) {
	e.results[name] = value
}

// Result returns a named result and whether it exists.
func (e *Execution) Result(name string) (any, bool) {
	v, ok := e.results[name]
	return v, ok
}

// PutConfigComments stores per-file configuration-comment overrides parsed
// from magic comments in the source.
func (e *Execution) PutConfigComments(filename string, comments []model.ConfigComment) {
	e.configComments[filename] = comments
}

// ConfigComments returns the overrides recorded for a file.
func (e *Execution) ConfigComments(filename string) []model.ConfigComment {
	return e.configComments[filename]
}

// SetExitStatus records the exit status the process should finish with.
// MuteExitStatus is applied by the caller reading ExitStatus, not here.
func (e *Execution) SetExitStatus(status int) {
	if status > e.exitStatus {
		e.exitStatus = status
	}
}

// ExitStatus returns the recorded exit status, honoring MuteExitStatus.
func (e *Execution) ExitStatus() int {
	if e.MuteExitStatus {
		return 0
	}
	return e.exitStatus
}
