// Package report renders human-readable summaries of cleaning runs for
// the CLI: the per-stage audit table after a run and the run history
// listing.
package report
