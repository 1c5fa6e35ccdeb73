package task

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
)

// stdinFilename is the symbolic name given to source read from stdin.
const stdinFilename = "stdin"

// LoadSourceFiles discovers the files matching the configuration's include
// and exclude patterns, loads them into the source-file store and records
// each file's config comments. Files that cannot be read become invalid
// source-file entries; the check runner reports them as degraded instead
// of failing the discovery walk.
type LoadSourceFiles struct {
	// WorkDir overrides the directory walked, for tests. Empty means
	// os.Getwd.
	WorkDir string

	// Stdin overrides the reader used for --read-from-stdin, for tests.
	Stdin io.Reader
}

// Name implements execution.Task.
func (LoadSourceFiles) Name() string { return "load_source_files" }

// Run implements execution.Task.
func (t LoadSourceFiles) Run(exec *execution.Execution, _ execution.TaskOptions) *execution.Execution {
	if exec.ReadFromStdin {
		return t.loadStdin(exec)
	}

	workDir, err := resolveWorkDir(exec, t.WorkDir)
	if err != nil {
		return haltWithError(exec, err.Error())
	}

	// Positional arguments narrow the walk to the given paths.
	roots := []string{workDir}
	if exec.CLIOptions != nil && len(exec.CLIOptions.Args) > 0 {
		roots = nil
		for _, arg := range exec.CLIOptions.Args {
			if !filepath.IsAbs(arg) {
				arg = filepath.Join(workDir, arg)
			}
			roots = append(roots, arg)
		}
	}

	var count int
	for _, root := range roots {
		n, err := t.loadTree(exec, workDir, root)
		if err != nil {
			return haltWithError(exec, err.Error())
		}
		count += n
	}

	exec.Logger.Info("loaded source files", "count", count)
	return exec
}

func (t LoadSourceFiles) loadStdin(exec *execution.Execution) *execution.Execution {
	in := t.Stdin
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return haltWithError(exec, fmt.Sprintf("reading stdin: %v", err))
	}
	file := model.NewSourceFile(stdinFilename, string(data))
	exec.SourceFiles.Put(file)
	exec.PutConfigComments(file.Filename, model.ParseConfigComments(file))
	return exec
}

func (t LoadSourceFiles) loadTree(exec *execution.Execution, workDir, root string) (int, error) {
	info, err := os.Stat(root)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", root, err)
	}

	if !info.IsDir() {
		t.loadFile(exec, workDir, root)
		return 1, nil
	}

	count := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories are never analysis targets.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		rel := relativeTo(workDir, path)
		if !matchAny(exec.Config.FilesIncluded, rel) || matchAny(exec.Config.FilesExcluded, rel) {
			return nil
		}

		t.loadFile(exec, workDir, path)
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("walking %s: %w", root, err)
	}
	return count, nil
}

func (t LoadSourceFiles) loadFile(exec *execution.Execution, workDir, path string) {
	rel := relativeTo(workDir, path)

	data, err := os.ReadFile(path)
	if err != nil {
		exec.Logger.Warn("could not read source file", "filename", rel, "error", err)
		exec.SourceFiles.Put(model.NewInvalidSourceFile(rel))
		return
	}

	file := model.NewSourceFile(rel, string(data))
	exec.SourceFiles.Put(file)
	exec.PutConfigComments(file.Filename, model.ParseConfigComments(file))
}

func relativeTo(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// matchAny reports whether the path matches any of the glob patterns. A
// leading "**/" matches the path at any depth; a trailing "/**" matches
// everything below a directory.
func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matchGlob(pattern, path) {
			return true
		}
	}
	return false
}

func matchGlob(pattern, path string) bool {
	if pattern == path {
		return true
	}
	if rest, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == rest || strings.HasPrefix(path, rest+"/")
	}
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if ok, _ := filepath.Match(rest, filepath.Base(path)); ok {
			return true
		}
		if ok, _ := filepath.Match(rest, path); ok {
			return true
		}
		return false
	}
	ok, _ := filepath.Match(pattern, path)
	return ok
}
