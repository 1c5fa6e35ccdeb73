package task

import (
	"os"
	"strings"

	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/log"
	"github.com/credo-go/credo/internal/model"
)

// ConvertOptionsToConfig copies the parsed switch values onto the
// execution's run-derived options and static configuration. Switches the
// user did not give leave the defaults untouched.
type ConvertOptionsToConfig struct{}

// Name implements execution.Task.
func (ConvertOptionsToConfig) Name() string { return "convert_options_to_config" }

// Run implements execution.Task.
func (ConvertOptionsToConfig) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	opts := exec.CLIOptions
	if opts == nil {
		return exec
	}

	exec.Verbose = exec.Verbose || opts.GivenBool("verbose")
	exec.Debug = exec.Debug || opts.GivenBool("debug")
	if exec.Verbose || exec.Debug {
		exec.Logger = log.New(os.Stderr, exec.Verbose, exec.Debug)
	}

	exec.ColorEnabled = opts.GivenBool("color")
	exec.CrashOnError = opts.GivenBool("crash-on-error")
	exec.MuteExitStatus = opts.GivenBool("mute-exit-status")
	exec.ReadFromStdin = opts.GivenBool("read-from-stdin")
	exec.Help = opts.GivenBool("help")
	exec.Version = opts.GivenBool("version")

	if v, ok := opts.String("format"); ok {
		exec.Format = v
	}

	if opts.GivenBool("strict") {
		exec.Config.Strict = true
	}

	// Strict runs and --all-priorities drop the priority floor so every
	// issue is reported.
	if exec.Config.Strict || opts.GivenBool("all-priorities") {
		exec.MinPriority = model.PriorityIgnore
	}
	if v, ok := opts.String("min-priority"); ok {
		p, err := model.ParsePriority(v)
		if err != nil {
			return haltWithError(exec, err.Error())
		}
		exec.MinPriority = p
	}

	// --checks is the long-standing spelling, --only the newer one; both
	// feed the same filter. Same for --ignore-checks and --ignore.
	for _, name := range []string{"checks", "only"} {
		if v, ok := opts.String(name); ok {
			exec.OnlyChecks = append(exec.OnlyChecks, splitPatterns(v)...)
		}
	}
	for _, name := range []string{"ignore-checks", "ignore"} {
		if v, ok := opts.String(name); ok {
			exec.IgnoreChecks = append(exec.IgnoreChecks, splitPatterns(v)...)
		}
	}
	if v, ok := opts.String("enable-disabled-checks"); ok {
		exec.EnableDisabledChecks = append(exec.EnableDisabledChecks, splitPatterns(v)...)
	}

	if v := opts.Strings("files-included"); len(v) > 0 {
		exec.Config.FilesIncluded = v
	}
	if v := opts.Strings("files-excluded"); len(v) > 0 {
		exec.Config.FilesExcluded = v
	}
	if v, ok := opts.String("config-name"); ok {
		exec.Config.Name = v
	}

	if opts.GivenBool("all") {
		exec.Assign("show_all", true)
	}

	return exec
}

// splitPatterns splits a comma-separated switch value, dropping empty
// segments.
func splitPatterns(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
