// Package plugin defines the extension surface for third-party
// contributors. A plugin registers extra CLI switches, pipeline tasks and
// parameters during the initialize-plugins stage; the execution context
// tracks which plugin is currently initializing so every registration is
// attributed to it.
package plugin

import (
	"github.com/credo-go/credo/internal/cli"
	"github.com/credo-go/credo/internal/execution"
)

// SwitchType re-exports the CLI switch value types so plugin authors only
// import this package.
type SwitchType = cli.SwitchType

// Switch value types.
const (
	SwitchBool   = cli.SwitchBool
	SwitchString = cli.SwitchString
	SwitchKeep   = cli.SwitchKeep
)

// Plugin is one external contributor. Init runs once during the
// initialize-plugins stage with the plugin marked as initializing; all
// registration calls made from Init are recorded under the plugin's name.
type Plugin interface {
	// Name identifies the plugin in registries and diagnostics.
	Name() string

	// Init registers the plugin's switches, tasks and defaults. It must
	// return a valid execution context.
	Init(exec *execution.Execution) *execution.Execution
}

// InitializeAll runs every plugin's Init in registration order, marking
// each as the initializing plugin for the duration of its Init call. At
// most one plugin initializes at a time; Init panicking or returning an
// invalid context is a contract violation handled by the caller.
func InitializeAll(exec *execution.Execution, plugins []Plugin) *execution.Execution {
	for _, p := range plugins {
		exec.SetInitializingPlugin(p.Name())
		exec = p.Init(exec)
		exec.SetInitializingPlugin("")
	}
	return exec
}

// PutCLISwitch registers a new recognized switch for the plugin currently
// initializing.
func PutCLISwitch(exec *execution.Execution, plugin, name string, typ SwitchType) {
	exec.CLI.PutSwitch(plugin, name, typ)
}

// PutCLISwitchAlias registers a short-form alias for one of the plugin's
// switches.
func PutCLISwitchAlias(exec *execution.Execution, plugin, name, alias string) {
	exec.CLI.PutAlias(plugin, name, alias)
}

// PutCLISwitchPluginParamConverter records that, after CLI parsing, the
// given switch's value is copied into the named plugin parameter. This is
// how a plugin receives user-supplied configuration without the core
// knowing its schema.
func PutCLISwitchPluginParamConverter(exec *execution.Execution, plugin, switchName, paramName string) {
	exec.CLI.PutParamConverter(plugin, switchName, paramName)
}

// PrependTask inserts a task at the front of the named stage of a pipeline
// on behalf of the plugin. An empty pipelineKey targets the top-level
// pipeline.
func PrependTask(exec *execution.Execution, plugin, pipelineKey, stageName string, task execution.Task, opts execution.TaskOptions) error {
	return exec.PrependTask(plugin, pipelineKey, stageName, task, opts)
}

// AppendTask inserts a task at the back of the named stage of a pipeline on
// behalf of the plugin. An empty pipelineKey targets the top-level pipeline.
func AppendTask(exec *execution.Execution, plugin, pipelineKey, stageName string, task execution.Task, opts execution.TaskOptions) error {
	return exec.AppendTask(plugin, pipelineKey, stageName, task, opts)
}

// ApplyParamConverters copies the parsed value of every converter's switch
// into the owning plugin's parameter store. Switches the user did not give
// leave the parameter untouched.
func ApplyParamConverters(exec *execution.Execution) {
	if exec.CLIOptions == nil {
		return
	}
	for _, conv := range exec.CLI.Converters() {
		if v, ok := exec.CLIOptions.SwitchValue(conv.Switch); ok {
			exec.PutPluginParam(conv.Plugin, conv.Param, v)
		}
	}
}
