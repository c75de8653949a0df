package pipeline

import (
	"context"
	"log/slog"
	"time"

	"chronicle/internal/config"
	"chronicle/internal/events"
	"chronicle/internal/logging"
)

// Supported year range for the daylight-saving transition table.
const (
	dstFirstYear = 2020
	dstLastYear  = 2030
)

// Pipeline executes the cleaning stages over an in-memory event table.
// Construct it once per run via New; it holds only immutable configuration
// and may be shared across goroutines.
type Pipeline struct {
	timezone        string
	gap             time.Duration
	maxSessionSecs  float64
	denylistMaxSecs float64
	denylist        map[string]struct{}
	dstDates        map[events.Date]struct{}
	logger          *slog.Logger
}

// New validates configuration and builds a Pipeline. Threshold or timezone
// problems here are contract errors: they indicate a broken setup, not bad
// input data.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, contractErr("", "config is required")
	}
	if cfg.Study.Timezone == "" {
		return nil, contractErr("", "study timezone is required")
	}
	if cfg.Filters.GapHours <= 0 {
		return nil, contractErr("", "gap_hours must be positive")
	}
	if cfg.Filters.MaxSessionSeconds <= 0 {
		return nil, contractErr("", "max_session_seconds must be positive")
	}
	if cfg.Filters.DenylistMaxSeconds <= 0 {
		return nil, contractErr("", "denylist_max_seconds must be positive")
	}

	return &Pipeline{
		timezone:        cfg.Study.Timezone,
		gap:             time.Duration(cfg.Filters.GapHours * float64(time.Hour)),
		maxSessionSecs:  cfg.Filters.MaxSessionSeconds,
		denylistMaxSecs: cfg.Filters.DenylistMaxSeconds,
		denylist:        cfg.DenylistSet(),
		dstDates:        dstTransitionDates(dstFirstYear, dstLastYear),
		logger:          logging.NewComponentLogger(logger, "pipeline"),
	}, nil
}

// Run executes all five stages over raw and returns the cleaned table plus
// per-stage audit counters. An empty input yields an empty output; the only
// error sources are context cancellation and upstream contract violations.
func (p *Pipeline) Run(ctx context.Context, raw []events.RawEvent) ([]events.CleanedEvent, *Stats, error) {
	stats := &Stats{RawRows: len(raw)}

	normalized := p.Normalize(ctx, raw, stats)
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	sessions := p.Merge(ctx, normalized, stats)
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	plausible := p.FilterPlausible(ctx, sessions, stats)
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	gapClean := p.ExcludeGapDays(ctx, plausible, stats)
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	cleaned := p.CleanCalendar(ctx, gapClean, stats)
	stats.CleanedRows = len(cleaned)
	return cleaned, stats, nil
}

// stageStart logs the stage boundary and returns the context-aware logger
// stages use for their own reporting.
func (p *Pipeline) stageStart(ctx context.Context, stage string, rowsIn int) (*slog.Logger, time.Time) {
	stageCtx := logging.WithStage(ctx, stage)
	logger := logging.WithContext(stageCtx, p.logger)
	logger.Info("stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.Int("rows_in", rowsIn),
	)
	return logger, time.Now()
}

func stageComplete(logger *slog.Logger, started time.Time, rowsOut int, extra ...logging.Attr) {
	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Int("rows_out", rowsOut),
		logging.Duration("elapsed", time.Since(started)),
	}
	attrs = append(attrs, extra...)
	logger.Info("stage completed", logging.Args(attrs...)...)
}
