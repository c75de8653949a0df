// Package pipeline implements the event-reconstruction and
// plausibility-filtering core of Chronicle.
//
// A Pipeline runs five stages in a fixed order over an in-memory table:
// normalization (parse, timezone filter, dedup), session merging (collapse
// artificially split fragments), plausibility filtering (denylist and
// overlong sessions), gap-day exclusion (remove the days bordering
// implausible silent gaps), and calendar cleaning (midnight-edge fixes,
// first/last day removal, DST-date removal). Each stage consumes the
// previous stage's output slice and produces a fresh one; nothing is
// mutated across stage boundaries.
//
// Per-record problems (unparseable timestamps, non-numeric durations) are
// counted in Stats and logged, never fatal. Misconfigured thresholds are
// contract errors surfaced at construction.
package pipeline
