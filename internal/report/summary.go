package report

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chronicle/internal/pipeline"
	"chronicle/internal/runstore"
)

var counts = message.NewPrinter(language.English)

// Summary renders the per-stage audit table for a run's counters.
func Summary(stats *pipeline.Stats) string {
	if stats == nil {
		return ""
	}

	normalizeDropped := stats.DuplicateRows + stats.OutOfTimezone + stats.ParseFailures
	plausible := stats.Sessions - stats.DenylistDropped - stats.OverlongDropped
	gapClean := plausible - stats.GapDayDropped
	calendarDropped := stats.MissingEndDropped + stats.DaySpanDropped + stats.EdgeDayDropped + stats.DSTDropped

	rows := [][]string{
		{"raw input", count(stats.RawRows), "", ""},
		{"normalize", count(stats.NormalizedEvents), count(normalizeDropped),
			counts.Sprintf("%d duplicate, %d foreign timezone, %d unparseable", stats.DuplicateRows, stats.OutOfTimezone, stats.ParseFailures)},
		{"merge", count(stats.Sessions), "",
			counts.Sprintf("%d fragments merged", stats.FragmentsMerged)},
		{"plausibility", count(plausible), count(stats.DenylistDropped + stats.OverlongDropped),
			counts.Sprintf("%d denylisted, %d overlong", stats.DenylistDropped, stats.OverlongDropped)},
		{"gap exclusion", count(gapClean), count(stats.GapDayDropped),
			counts.Sprintf("%d gaps marked", stats.Gaps)},
		{"calendar", count(stats.CleanedRows), count(calendarDropped),
			counts.Sprintf("%d missing end, %d day-spanning, %d edge day, %d DST",
				stats.MissingEndDropped, stats.DaySpanDropped, stats.EdgeDayDropped, stats.DSTDropped)},
	}

	return renderTable([]string{"STAGE", "ROWS OUT", "DROPPED", "DETAIL"}, rows, 1, 2)
}

// Runs renders recorded runs, newest first, for the history listing.
func Runs(runs []*runstore.Run) string {
	if len(runs) == 0 {
		return "No runs recorded."
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			string(run.Status),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			runDuration(run),
			count(run.RawRows),
			count(run.CleanedRows),
			run.OutputPath,
		})
	}

	return renderTable([]string{"RUN", "STATUS", "STARTED", "ELAPSED", "RAW", "CLEANED", "OUTPUT"}, rows, 3, 4, 5)
}

func count(n int) string {
	return counts.Sprintf("%d", n)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runDuration(run *runstore.Run) string {
	if run.FinishedAt.IsZero() {
		return "-"
	}
	elapsed := run.FinishedAt.Sub(run.StartedAt)
	if elapsed < 0 {
		return "-"
	}
	return elapsed.Round(10 * time.Millisecond).String()
}

// FailureLine renders the one-line failure notice shown after an
// unsuccessful run.
func FailureLine(run *runstore.Run) string {
	if run == nil || run.ErrorMessage == "" {
		return ""
	}
	return fmt.Sprintf("run %s failed: %s", shortID(run.ID), run.ErrorMessage)
}
