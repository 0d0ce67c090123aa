// Package fill sequences the fill-in pipeline: fetch a month of diaries,
// keep the actionable days, render one request file per day, and optionally
// dispatch them.
package fill

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rubenboadana/WoffuAutomatizer/internal/filter"
	"github.com/rubenboadana/WoffuAutomatizer/internal/httpfile"
	"github.com/rubenboadana/WoffuAutomatizer/internal/render"
	"github.com/rubenboadana/WoffuAutomatizer/internal/woffu"
)

// ErrNoDiaries means the month returned no diary data at all. The run
// aborts: an empty month is indistinguishable from a rejected query.
var ErrNoDiaries = errors.New("no diaries found for the requested month")

// Options configures one run.
type Options struct {
	Year         int
	Month        time.Month
	TemplatePath string
	OutputDir    string
	Execute      bool
	Delay        time.Duration // pause between dispatches; defaults to 1s
	Today        time.Time     // zero means time.Now()
}

// Result aggregates the counters of one run. A Result with zero Actionable
// and a nil error is a successful "nothing to do" run.
type Result struct {
	UserID     int64
	TotalDays  int
	Actionable int
	Created    []string
	Executions []httpfile.Result
	Succeeded  int
	Failed     int
	OutputDir  string
}

// Runner owns the collaborators of the pipeline.
type Runner struct {
	client   *woffu.Client
	executor *httpfile.Executor
	log      *zap.Logger
}

// NewRunner creates a Runner.
func NewRunner(client *woffu.Client, executor *httpfile.Executor, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{client: client, executor: executor, log: log}
}

// Run executes the pipeline once. Setup failures (template, auth, empty
// month, output directory, artifact write) abort with an error;
// per-artifact dispatch failures are recorded in the Result and the run
// completes.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}

	template, err := render.ReadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	userID, err := r.client.ResolveUserID(ctx)
	if err != nil {
		return nil, err
	}

	r.log.Info("fetching monthly diaries",
		zap.Int64("user_id", userID),
		zap.Int("year", opts.Year),
		zap.Int("month", int(opts.Month)))

	diaries, err := r.client.MonthlyDiaries(ctx, userID, opts.Year, opts.Month)
	if err != nil {
		return nil, fmt.Errorf("fetching diaries: %w", err)
	}
	if len(diaries) == 0 {
		return nil, ErrNoDiaries
	}

	actionable := filter.Actionable(diaries, today)
	result := &Result{
		UserID:     userID,
		TotalDays:  len(diaries),
		Actionable: len(actionable),
		OutputDir:  opts.OutputDir,
	}
	r.log.Info("filtered diaries",
		zap.Int("total", result.TotalDays),
		zap.Int("actionable", result.Actionable))

	if len(actionable) == 0 {
		return result, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	for _, entry := range actionable {
		content := render.Render(template, entry, userID, r.client.Token())
		path, err := render.WriteArtifact(opts.OutputDir, entry.Date, content)
		if err != nil {
			return nil, err
		}
		r.log.Info("created request file", zap.String("path", path))
		result.Created = append(result.Created, path)
	}

	if !opts.Execute {
		return result, nil
	}

	delay := opts.Delay
	if delay <= 0 {
		delay = time.Second
	}
	// Strictly sequential dispatch, paced to stay under the service's rate
	// limits. Burst 1 lets the first request go out immediately.
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	for _, path := range result.Created {
		if err := limiter.Wait(ctx); err != nil {
			return result, err
		}
		outcome := r.executor.Execute(ctx, path)
		result.Executions = append(result.Executions, outcome)
		if outcome.Success {
			result.Succeeded++
			r.log.Info("request executed", zap.String("path", path))
		} else {
			result.Failed++
			r.log.Error("request failed",
				zap.String("path", path),
				zap.String("response", outcome.Response))
		}
	}

	return result, nil
}
