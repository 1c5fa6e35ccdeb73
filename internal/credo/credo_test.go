package credo

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/plugin"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunSuggest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "a.ex", "# TODO: fix this\n")

	var stdout, stderr bytes.Buffer
	status := Run(nil,
		WithStdout(&stdout),
		WithStderr(&stderr),
		WithWorkDir(dir),
	)

	if status == 0 {
		t.Error("issues found but status is zero")
	}
	if !strings.Contains(stdout.String(), "a.ex:1") {
		t.Errorf("stdout missing the issue: %q", stdout.String())
	}
}

func TestRunCleanTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "a.ex", "nothing to report\n")

	var stdout bytes.Buffer
	status := Run(nil, WithStdout(&stdout), WithStderr(&bytes.Buffer{}), WithWorkDir(dir))

	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
}

// TestRunExplainIssueReference checks that an issue reference works without
// a prior analysis run: explain loads and analyzes the referenced file
// itself.
func TestRunExplainIssueReference(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "lib.ex", "# TODO: fix this\n")

	var stdout, stderr bytes.Buffer
	status := Run([]string{"explain", "lib.ex:1"},
		WithStdout(&stdout),
		WithStderr(&stderr),
		WithWorkDir(dir),
	)

	if status != 0 {
		t.Fatalf("status = %d, want 0 (stderr: %q)", status, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Credo.Check.Design.TagTODO") {
		t.Errorf("stdout missing the resolved check: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "TODO tags are reminders") {
		t.Errorf("stdout missing the explanation: %q", stdout.String())
	}
}

func TestRunVersionCommand(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	status := Run([]string{"version"}, WithStdout(&stdout), WithStderr(&bytes.Buffer{}))

	if status != 0 {
		t.Errorf("status = %d", status)
	}
	if strings.TrimSpace(stdout.String()) == "" {
		t.Error("no version printed")
	}
}

func TestRunUnknownSwitch(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	status := Run([]string{"--definitely-not-a-switch"},
		WithStdout(&bytes.Buffer{}), WithStderr(&stderr))

	if status == 0 {
		t.Error("expected a non-zero status")
	}
}

func TestRunMuteExitStatus(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "a.ex", "# FIXME: broken\n")

	status := Run([]string{"--mute-exit-status"},
		WithStdout(&bytes.Buffer{}), WithStderr(&bytes.Buffer{}), WithWorkDir(dir))

	if status != 0 {
		t.Errorf("status = %d, want 0 under --mute-exit-status", status)
	}
}

// switchPlugin adds one boolean switch bound to a plugin param.
type switchPlugin struct{}

func (switchPlugin) Name() string { return "switcher" }

func (p switchPlugin) Init(exec *execution.Execution) *execution.Execution {
	plugin.PutCLISwitch(exec, p.Name(), "extra", plugin.SwitchBool)
	plugin.PutCLISwitchPluginParamConverter(exec, p.Name(), "extra", "extra_enabled")
	return exec
}

func TestRunWithPlugin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "a.ex", "fine\n")

	status := Run([]string{"--extra"},
		WithStdout(&bytes.Buffer{}),
		WithStderr(&bytes.Buffer{}),
		WithWorkDir(dir),
		WithPlugins(switchPlugin{}),
	)

	if status != 0 {
		t.Errorf("status = %d, want 0: plugin switch should parse", status)
	}
}

// brokenTaskPlugin registers a task that corrupts the context.
type brokenTaskPlugin struct{}

func (brokenTaskPlugin) Name() string { return "broken" }

func (p brokenTaskPlugin) Init(exec *execution.Execution) *execution.Execution {
	_ = plugin.AppendTask(exec, p.Name(), "", execution.StageValidateOptions,
		nilTask{}, nil)
	return exec
}

type nilTask struct{}

func (nilTask) Name() string { return "corrupt" }
func (nilTask) Run(*execution.Execution, execution.TaskOptions) *execution.Execution {
	return nil
}

// TestRunContractViolation checks that a corrupted context aborts the run
// with a diagnostic instead of crashing the process.
func TestRunContractViolation(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	status := Run(nil,
		WithStdout(&bytes.Buffer{}),
		WithStderr(&stderr),
		WithPlugins(brokenTaskPlugin{}),
	)

	if status != 70 {
		t.Errorf("status = %d, want 70", status)
	}
	if !strings.Contains(stderr.String(), "corrupt") {
		t.Errorf("diagnostic does not name the task: %q", stderr.String())
	}
}
