package task

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/credo-go/credo/internal/check/checks"
	"github.com/credo-go/credo/internal/config"
	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
	"github.com/credo-go/credo/internal/report"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	t.Run("merges files on the search path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".credo.yml"), `
configs:
  - name: default
    files:
      included:
        - "**/*.go"
    strict: true
`)

		exec := buildParsed(t)
		exec = ResolveConfig{WorkDir: dir}.Run(exec, nil)

		if exec.Halted() {
			v, _ := exec.Result(UserErrorResult)
			t.Fatalf("halted: %v", v)
		}
		if !exec.Config.Strict {
			t.Error("strict not merged")
		}
		if len(exec.Config.FilesIncluded) != 1 || exec.Config.FilesIncluded[0] != "**/*.go" {
			t.Errorf("FilesIncluded = %v", exec.Config.FilesIncluded)
		}

		descriptors := exec.ConfigFiles.GetAll()
		if len(descriptors) < 2 {
			t.Fatalf("got %d descriptors, want defaults plus the file", len(descriptors))
		}
		if descriptors[0].Origin != model.OriginDefault {
			t.Errorf("first descriptor origin = %q", descriptors[0].Origin)
		}
		last := descriptors[len(descriptors)-1]
		if last.Origin != model.OriginFile || !strings.HasSuffix(last.Filename, ".credo.yml") {
			t.Errorf("file descriptor = %+v", last)
		}
	})

	t.Run("config-file switch restricts the lookup", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, path, `
[[configs]]
name = "ci"
strict = true
`)

		exec := buildParsed(t, "--config-file", path, "--config-name", "ci")
		exec = ConvertOptionsToConfig{}.Run(exec, nil)
		exec = ResolveConfig{}.Run(exec, nil)

		if exec.Halted() {
			v, _ := exec.Result(UserErrorResult)
			t.Fatalf("halted: %v", v)
		}
		if !exec.Config.Strict {
			t.Error("strict not merged from the flag-given file")
		}
		descriptors := exec.ConfigFiles.GetAll()
		if descriptors[len(descriptors)-1].Origin != model.OriginFlag {
			t.Errorf("origin = %q, want flag", descriptors[len(descriptors)-1].Origin)
		}
	})

	t.Run("unknown config name halts", func(t *testing.T) {
		t.Parallel()

		exec := buildParsed(t, "--config-name", "missing")
		exec = ConvertOptionsToConfig{}.Run(exec, nil)
		exec = ResolveConfig{WorkDir: t.TempDir()}.Run(exec, nil)

		if !exec.Halted() {
			t.Fatal("expected a halt")
		}
	})
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	exec := execution.Build(nil)
	exec.Config.FilesIncluded = nil
	exec = ValidateConfig{}.Run(exec, nil)

	if !exec.Halted() {
		t.Error("expected a halt for a config without included files")
	}
}

func TestLoadSourceFiles(t *testing.T) {
	t.Parallel()

	t.Run("walks and filters by pattern", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "lib", "a.ex"), "line")
		writeFile(t, filepath.Join(dir, "lib", "b.txt"), "line")
		writeFile(t, filepath.Join(dir, "test", "c.ex"), "line")
		writeFile(t, filepath.Join(dir, ".hidden", "d.ex"), "line")

		exec := buildParsed(t)
		exec.Config = config.NewConfig()
		exec.Config.FilesExcluded = []string{"test/**"}

		exec = LoadSourceFiles{WorkDir: dir}.Run(exec, nil)
		if exec.Halted() {
			v, _ := exec.Result(UserErrorResult)
			t.Fatalf("halted: %v", v)
		}

		if got := exec.SourceFiles.Count(); got != 1 {
			t.Fatalf("loaded %d files, want 1", got)
		}
		if exec.SourceFiles.Get("lib/a.ex") == nil {
			t.Error("lib/a.ex not loaded")
		}
	})

	t.Run("records config comments", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.ex"),
			"# credo:disable-for-this-file Credo.Check.Design.TagTODO\n# TODO: later")

		exec := buildParsed(t)
		exec = LoadSourceFiles{WorkDir: dir}.Run(exec, nil)

		comments := exec.ConfigComments("a.ex")
		if len(comments) != 1 {
			t.Fatalf("got %d comments, want 1", len(comments))
		}
		if comments[0].Instruction != model.InstructionDisableFile {
			t.Errorf("instruction = %q", comments[0].Instruction)
		}
	})

	t.Run("positional arguments narrow the walk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "lib", "a.ex"), "line")
		writeFile(t, filepath.Join(dir, "other", "b.ex"), "line")

		exec := buildParsed(t, "lib")
		exec = LoadSourceFiles{WorkDir: dir}.Run(exec, nil)

		if got := exec.SourceFiles.Count(); got != 1 {
			t.Fatalf("loaded %d files, want 1", got)
		}
	})

	t.Run("reads stdin on request", func(t *testing.T) {
		t.Parallel()

		exec := buildParsed(t, "--read-from-stdin")
		exec = ConvertOptionsToConfig{}.Run(exec, nil)
		exec = LoadSourceFiles{Stdin: strings.NewReader("one\ntwo")}.Run(exec, nil)

		file := exec.SourceFiles.Get("stdin")
		if file == nil {
			t.Fatal("stdin source not loaded")
		}
		if file.LineCount() != 2 {
			t.Errorf("LineCount = %d, want 2", file.LineCount())
		}
	})
}

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*.ex", "lib/deep/nested/a.ex", true},
		{"**/*.ex", "a.ex", true},
		{"**/*.ex", "lib/a.go", false},
		{"lib/**", "lib/a.ex", true},
		{"lib/**", "lib", true},
		{"lib/**", "library/a.ex", false},
		{"*.ex", "a.ex", true},
		{"*.ex", "lib/a.ex", false},
		{"lib/a.ex", "lib/a.ex", true},
	}
	for _, tt := range tests {
		if got := matchGlob(tt.pattern, tt.path); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestRunChecksTask(t *testing.T) {
	t.Parallel()

	t.Run("runs the active checks over the stores", func(t *testing.T) {
		t.Parallel()

		exec := execution.Build(nil)
		exec.SourceFiles.Put(model.NewSourceFile("a.ex", "# TODO: later"))

		exec = NewRunChecks(checks.All()...).Run(exec, nil)
		if exec.Halted() {
			t.Fatal("unexpected halt")
		}

		issues := exec.Issues.Get("a.ex")
		if len(issues) != 1 {
			t.Fatalf("got %d issues, want 1", len(issues))
		}
		if issues[0].CheckID != "Credo.Check.Design.TagTODO" {
			t.Errorf("check = %q", issues[0].CheckID)
		}

		if _, ok := exec.Result(OnlyMatchedResult); !ok {
			t.Error("only-matched result not recorded")
		}
	})

	t.Run("config disables a check", func(t *testing.T) {
		t.Parallel()

		exec := execution.Build(nil)
		exec.SourceFiles.Put(model.NewSourceFile("a.ex", "# TODO: later"))
		exec.Config.DisabledChecks = []string{"Credo.Check.Design.TagTODO"}

		exec = NewRunChecks(checks.All()...).Run(exec, nil)

		if got := exec.Issues.Count(); got != 0 {
			t.Errorf("disabled check produced %d issues", got)
		}
	})

	t.Run("enable-disabled-checks wins", func(t *testing.T) {
		t.Parallel()

		exec := execution.Build(nil)
		exec.SourceFiles.Put(model.NewSourceFile("a.ex", "# TODO: later"))
		exec.Config.DisabledChecks = []string{"Credo.Check.Design.TagTODO"}
		exec.EnableDisabledChecks = []string{"TagTODO"}

		exec = NewRunChecks(checks.All()...).Run(exec, nil)

		if got := exec.Issues.Count(); got != 1 {
			t.Errorf("re-enabled check produced %d issues, want 1", got)
		}
	})
}

func TestSetRelevantIssues(t *testing.T) {
	t.Parallel()

	exec := execution.Build(nil)
	exec.MinPriority = model.PriorityHigh
	exec.Issues.AppendAll([]model.Issue{
		{CheckID: "A", Filename: "a.ex", Priority: 12, LineNo: 1},
		{CheckID: "B", Filename: "a.ex", Priority: 1, LineNo: 2},
		{CheckID: "C", Filename: "b.ex", Priority: -10, LineNo: 1},
	})

	exec = SetRelevantIssues{}.Run(exec, nil)

	all := exec.Issues.All()
	if len(all) != 1 {
		t.Fatalf("got %d issues, want 1", len(all))
	}
	if all[0].CheckID != "A" {
		t.Errorf("surviving check = %q, want A", all[0].CheckID)
	}
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	t.Run("json output and exit status", func(t *testing.T) {
		t.Parallel()

		exec := execution.Build(nil)
		exec.Format = report.FormatJSON
		exec.Issues.Append(model.Issue{
			CheckID: "Credo.Check.Design.TagFIXME", Filename: "a.ex", Priority: 12, LineNo: 3,
		})

		var buf bytes.Buffer
		exec = PrintResults{Output: &buf}.Run(exec, nil)

		var doc struct {
			Issues []model.Issue `json:"issues"`
		}
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("decoding output: %v", err)
		}
		if len(doc.Issues) != 1 {
			t.Fatalf("got %d issues", len(doc.Issues))
		}

		// MAJOR tier maps one above its ordinal.
		if got := exec.ExitStatus(); got != int(model.SeverityMajor)+1 {
			t.Errorf("exit status = %d, want %d", got, int(model.SeverityMajor)+1)
		}
	})

	t.Run("mute-exit-status forces zero", func(t *testing.T) {
		t.Parallel()

		exec := execution.Build(nil)
		exec.MuteExitStatus = true
		exec.Issues.Append(model.Issue{CheckID: "X", Filename: "a.ex", Priority: 30, LineNo: 1})

		exec = PrintResults{Output: &bytes.Buffer{}}.Run(exec, nil)
		if got := exec.ExitStatus(); got != 0 {
			t.Errorf("exit status = %d, want 0", got)
		}
	})

	t.Run("sonarqube writes the export file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exportPath := filepath.Join(dir, "export.json")

		exec := execution.Build(nil)
		exec.Format = report.FormatSonarQube
		exec.Issues.Append(model.Issue{
			CheckID: "Elixir.X.Y", Message: "m", Filename: "f.ex", Priority: 12, LineNo: 7,
		})

		var console bytes.Buffer
		exec = PrintResults{Output: &console, ExportPath: exportPath}.Run(exec, nil)

		data, err := os.ReadFile(exportPath)
		if err != nil {
			t.Fatalf("reading export file: %v", err)
		}
		if !strings.Contains(string(data), `"ruleId": "X.Y"`) {
			t.Errorf("export file missing the stripped rule id: %s", data)
		}
		if !strings.Contains(console.String(), "f.ex:7") {
			t.Errorf("console render missing the issue: %q", console.String())
		}
	})

	t.Run("no issues leaves the exit status at zero", func(t *testing.T) {
		t.Parallel()

		exec := execution.Build(nil)
		exec = PrintResults{Output: &bytes.Buffer{}}.Run(exec, nil)
		if got := exec.ExitStatus(); got != 0 {
			t.Errorf("exit status = %d", got)
		}
	})
}
