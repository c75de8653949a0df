package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"chronicle/internal/config"
	"chronicle/internal/export"
	"chronicle/internal/ingest"
	"chronicle/internal/logging"
	"chronicle/internal/pipeline"
	"chronicle/internal/runstore"
)

// ErrAlreadyRunning indicates another invocation holds the run lock.
var ErrAlreadyRunning = errors.New("another run is already in progress")

// Runner executes cleaning runs and enforces single-instance execution
// against a shared run database.
type Runner struct {
	cfg    *config.Config
	store  *runstore.Store
	logger *slog.Logger
}

// Result carries the recorded run and the pipeline's audit counters.
type Result struct {
	Run   *runstore.Run
	Stats *pipeline.Stats
}

// New constructs a Runner with initialized dependencies.
func New(cfg *config.Config, store *runstore.Store, logger *slog.Logger) (*Runner, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("runner requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "runner"),
	}, nil
}

// Execute performs one full run. The returned Result is populated even
// when the run fails partway, so callers can surface partial counters;
// the error reports the first failure.
func (r *Runner) Execute(ctx context.Context) (*Result, error) {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lockPath := filepath.Join(r.cfg.Paths.DataDir, "chronicle.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	defer func() { _ = lock.Unlock() }()

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)

	run := &runstore.Run{
		ID:         runID,
		Status:     runstore.StatusRunning,
		StartedAt:  time.Now().UTC(),
		OutputPath: r.cfg.Paths.OutputFile,
	}
	if err := r.store.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("record run start: %w", err)
	}

	logger.Info("run started",
		logging.String("raw_data_dir", r.cfg.Paths.RawDataDir),
		logging.String(logging.FieldEventType, "run_started"),
	)

	result := &Result{Run: run}

	raw, err := ingest.NewReader(r.cfg.Paths.RawDataDir, r.logger).Load(ctx)
	if err != nil {
		return result, r.fail(ctx, logger, run, nil, fmt.Errorf("load raw data: %w", err))
	}
	run.RawRows = len(raw)

	pipe, err := pipeline.New(r.cfg, r.logger)
	if err != nil {
		return result, r.fail(ctx, logger, run, nil, err)
	}

	cleaned, stats, err := pipe.Run(ctx, raw)
	result.Stats = stats
	if err != nil {
		return result, r.fail(ctx, logger, run, stats, err)
	}

	if err := export.WriteCSV(r.cfg.Paths.OutputFile, cleaned, r.logger); err != nil {
		return result, r.fail(ctx, logger, run, stats, err)
	}

	run.Status = runstore.StatusCompleted
	run.FinishedAt = time.Now().UTC()
	run.CleanedRows = len(cleaned)
	run.StatsJSON = marshalStats(stats)
	if err := r.store.Finish(ctx, run); err != nil {
		return result, fmt.Errorf("record run completion: %w", err)
	}

	logger.Info("run completed",
		logging.Int("raw_rows", run.RawRows),
		logging.Int("cleaned_rows", run.CleanedRows),
		logging.Duration("elapsed", run.FinishedAt.Sub(run.StartedAt)),
		logging.String("output", run.OutputPath),
		logging.String(logging.FieldEventType, "run_completed"),
	)
	return result, nil
}

// fail records the terminal failure on the run and returns the original
// error. Store errors during failure recording are logged, not returned,
// so the root cause survives.
func (r *Runner) fail(ctx context.Context, logger *slog.Logger, run *runstore.Run, stats *pipeline.Stats, cause error) error {
	run.Status = runstore.StatusFailed
	run.FinishedAt = time.Now().UTC()
	run.ErrorMessage = cause.Error()
	run.StatsJSON = marshalStats(stats)

	if err := r.store.Finish(ctx, run); err != nil {
		logger.Error("failed to record run failure",
			logging.Error(err),
			logging.String(logging.FieldEventType, "run_record_failed"),
		)
	}

	logger.Error("run failed",
		logging.Error(cause),
		logging.String(logging.FieldEventType, "run_failed"),
	)
	return cause
}

func marshalStats(stats *pipeline.Stats) string {
	if stats == nil {
		return ""
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return ""
	}
	return string(data)
}
