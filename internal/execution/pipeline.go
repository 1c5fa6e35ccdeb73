package execution

import (
	"errors"
	"fmt"
)

// MainPipelineKey is the owner key of the top-level pipeline registered by
// Build. Commands register their own pipelines under their command name.
const MainPipelineKey = "credo"

// Stage names of the default top-level pipeline, in execution order.
const (
	StagePreInit                = "pre-init"
	StageParseOptions           = "parse-options"
	StageInitializePlugins      = "initialize-plugins"
	StageValidateOptions        = "validate-options"
	StageConvertOptionsToConfig = "convert-options-to-config"
	StageDetermineCommand       = "determine-command"
	StageSetDefaultCommand      = "set-default-command"
	StageResolveConfig          = "resolve-config"
	StageValidateConfig         = "validate-config"
	StageRunCommand             = "run-command"
	StageHaltExecution          = "halt-execution"
)

// DefaultStageNames returns the stage order of the top-level pipeline.
func DefaultStageNames() []string {
	return []string{
		StagePreInit,
		StageParseOptions,
		StageInitializePlugins,
		StageValidateOptions,
		StageConvertOptionsToConfig,
		StageDetermineCommand,
		StageSetDefaultCommand,
		StageResolveConfig,
		StageValidateConfig,
		StageRunCommand,
		StageHaltExecution,
	}
}

// ErrUnknownStage is returned when a task is registered into a stage name
// the pipeline does not define. Silently dropping a plugin's task would be
// a latent bug, so registration fails loudly instead.
var ErrUnknownStage = errors.New("unknown pipeline stage")

// TaskOptions is the free-form options bag attached to a registered task.
type TaskOptions map[string]any

// Task is a unit of work transforming an execution context into a new one.
//
// A task signals problems by recording a result and halting the execution,
// not by returning an error: the runner keeps no error channel, and a
// halted context still flows through the remaining (skipped) stages intact.
type Task interface {
	// Name identifies the task in traces and diagnostics.
	Name() string

	// Run executes the task. It must return a valid execution context;
	// returning nil is a contract violation.
	Run(exec *Execution, opts TaskOptions) *Execution
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc struct {
	name string
	fn   func(exec *Execution, opts TaskOptions) *Execution
}

// NewTaskFunc wraps fn as a named Task.
func NewTaskFunc(name string, fn func(exec *Execution, opts TaskOptions) *Execution) TaskFunc {
	return TaskFunc{name: name, fn: fn}
}

// Name implements Task.
func (t TaskFunc) Name() string { return t.name }

// Run implements Task.
func (t TaskFunc) Run(exec *Execution, opts TaskOptions) *Execution {
	return t.fn(exec, opts)
}

// TaskSpec is one registered task together with its options bag.
type TaskSpec struct {
	Task    Task
	Options TaskOptions
}

// Stage is a named, ordered list of tasks within a pipeline.
type Stage struct {
	name  string
	tasks []TaskSpec
}

// Name returns the stage name.
func (s *Stage) Name() string { return s.name }

// Tasks returns a snapshot of the stage's task list in order.
func (s *Stage) Tasks() []TaskSpec {
	out := make([]TaskSpec, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Pipeline is a named, ordered sequence of stages. Stage order is fixed at
// construction; only the task list within a stage can be extended, and
// extension preserves the relative order of all other tasks.
type Pipeline struct {
	stages []*Stage
	index  map[string]*Stage
}

// NewPipeline creates a pipeline with the given stage names, each stage
// starting with an empty task list. Stage execution order is the given
// registration order, regardless of when plugins later add tasks.
func NewPipeline(stageNames ...string) *Pipeline {
	p := &Pipeline{index: make(map[string]*Stage, len(stageNames))}
	for _, name := range stageNames {
		stage := &Stage{name: name}
		p.stages = append(p.stages, stage)
		p.index[name] = stage
	}
	return p
}

// Stages returns the pipeline's stages in execution order.
func (p *Pipeline) Stages() []*Stage {
	out := make([]*Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// StageNames returns the stage names in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.name
	}
	return names
}

// Append adds a task at the back of the named stage's task list.
func (p *Pipeline) Append(stageName string, spec TaskSpec) error {
	stage, ok := p.index[stageName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStage, stageName)
	}
	stage.tasks = append(stage.tasks, spec)
	return nil
}

// Prepend inserts a task at the front of the named stage's task list.
func (p *Pipeline) Prepend(stageName string, spec TaskSpec) error {
	stage, ok := p.index[stageName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStage, stageName)
	}
	stage.tasks = append([]TaskSpec{spec}, stage.tasks...)
	return nil
}

// PutPipeline registers or wholesale-replaces a named pipeline on the
// execution context.
func (e *Execution) PutPipeline(key string, p *Pipeline) {
	e.pipelines[key] = p
}

// Pipeline returns the named pipeline, or nil. An empty key means the
// top-level pipeline.
func (e *Execution) Pipeline(key string) *Pipeline {
	if key == "" {
		key = MainPipelineKey
	}
	return e.pipelines[key]
}

// AppendTask inserts a task at the back of the named stage of a pipeline.
// An empty pipelineKey targets the top-level pipeline. The plugin name is
// recorded in diagnostics only.
func (e *Execution) AppendTask(plugin, pipelineKey, stageName string, task Task, opts TaskOptions) error {
	return e.extendPipeline(plugin, pipelineKey, stageName, task, opts, false)
}

// PrependTask inserts a task at the front of the named stage of a pipeline.
// An empty pipelineKey targets the top-level pipeline.
func (e *Execution) PrependTask(plugin, pipelineKey, stageName string, task Task, opts TaskOptions) error {
	return e.extendPipeline(plugin, pipelineKey, stageName, task, opts, true)
}

func (e *Execution) extendPipeline(plugin, pipelineKey, stageName string, task Task, opts TaskOptions, front bool) error {
	p := e.Pipeline(pipelineKey)
	if p == nil {
		return fmt.Errorf("no pipeline registered under %q", pipelineKey)
	}

	spec := TaskSpec{Task: task, Options: opts}
	var err error
	if front {
		err = p.Prepend(stageName, spec)
	} else {
		err = p.Append(stageName, spec)
	}
	if err != nil {
		return fmt.Errorf("plugin %q: %w", plugin, err)
	}
	return nil
}
