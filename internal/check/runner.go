package check

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/credo-go/credo/internal/execution"
	"github.com/credo-go/credo/internal/model"
)

// BrokenFilesResult is the result key under which the runner records files
// it could not analyze when continuing past errors.
const BrokenFilesResult = "broken_files"

// Runner executes the selected checks against every source file in the
// store, one worker per file.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because errgroup handles the concurrency limit and first
// error correctly. Each file gets its own goroutine, but only
// 'concurrency' goroutines run simultaneously.
type Runner struct {
	// concurrency is the maximum number of files analyzed in parallel.
	concurrency int

	// crashOnError aborts the whole run when one file fails to analyze.
	// When false, the failure is recorded as a degraded result and the
	// remaining files still run.
	crashOnError bool

	// fileTimeout bounds per-file analysis, 0 means no deadline.
	fileTimeout time.Duration

	// logger for structured logging.
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency sets the maximum number of files analyzed in parallel.
// Default is GOMAXPROCS.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithCrashOnError makes the runner abort the whole run when a single file
// fails, instead of recording a degraded result and continuing.
func WithCrashOnError(crash bool) RunnerOption {
	return func(r *Runner) {
		r.crashOnError = crash
	}
}

// WithFileTimeout bounds the analysis of one file.
func WithFileTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.fileTimeout = d
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run analyzes every source file in the execution's store with the given
// checks. Issues and timing samples land in the execution's stores; the
// call returns only after every worker has finished, so readers of the
// stores never race the workers.
func (r *Runner) Run(ctx context.Context, exec *execution.Execution, checks []Check) error {
	files := exec.SourceFiles.GetAll()

	r.logger.Info("running checks",
		"checks", len(checks),
		"files", len(files),
		"concurrency", r.concurrency,
	)

	var (
		mu     sync.Mutex
		broken []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, file := range files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fileCtx := ctx
			if r.fileTimeout > 0 {
				var cancel context.CancelFunc
				fileCtx, cancel = context.WithTimeout(ctx, r.fileTimeout)
				defer cancel()
			}

			err := r.runFile(fileCtx, exec, file, checks)
			if err != nil {
				if r.crashOnError {
					return fmt.Errorf("analyzing %s: %w", file.Filename, err)
				}
				r.logger.Warn("file analysis degraded",
					"filename", file.Filename,
					"error", err,
				)
				mu.Lock()
				broken = append(broken, file.Filename)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(broken) > 0 {
		exec.PutResult(BrokenFilesResult, broken)
	}

	return nil
}

// runFile executes every check against one file and appends the surviving
// issues to the store. A panicking check is reported as that file's error
// rather than taking down the process.
func (r *Runner) runFile(ctx context.Context, exec *execution.Execution, file *model.SourceFile, checks []Check) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("check crashed: %v", rec)
		}
	}()

	if !file.Valid {
		return fmt.Errorf("file could not be loaded")
	}

	comments := exec.ConfigComments(file.Filename)

	for _, c := range checks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var issues []model.Issue
		exec.Timings.Record(map[string]string{
			"task":     "run_checks",
			"check":    c.ID(),
			"filename": file.Filename,
		}, func() {
			issues = c.Run(file, checkParams(exec.Config.CheckParams, c.ID()))
		})

		for _, issue := range issues {
			if suppressed(comments, issue) {
				continue
			}
			exec.Issues.Append(issue)
		}
	}

	return nil
}

// checkParams returns the configured parameter bag for a check. Config
// keys may carry the language-namespace qualifier or not, matching how
// enable and disable lists are resolved.
func checkParams(params map[string]map[string]any, checkID string) map[string]any {
	if p, ok := params[checkID]; ok {
		return p
	}
	want := model.StripNamespace(checkID)
	for id, p := range params {
		if model.StripNamespace(id) == want {
			return p
		}
	}
	return nil
}

func suppressed(comments []model.ConfigComment, issue model.Issue) bool {
	for _, comment := range comments {
		if comment.Suppresses(issue.CheckID, issue.LineNo) {
			return true
		}
	}
	return false
}
