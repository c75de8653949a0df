package report_test

import (
	"strings"
	"testing"
	"time"

	"chronicle/internal/pipeline"
	"chronicle/internal/report"
	"chronicle/internal/runstore"
)

func TestSummaryIncludesStageCounters(t *testing.T) {
	stats := &pipeline.Stats{
		RawRows:          12500,
		DuplicateRows:    3,
		OutOfTimezone:    2,
		ParseFailures:    1,
		NormalizedEvents: 12494,
		Sessions:         12000,
		FragmentsMerged:  494,
		DenylistDropped:  40,
		OverlongDropped:  5,
		Gaps:             2,
		GapDayDropped:    120,
		CleanedRows:      11700,
	}

	out := report.Summary(stats)
	for _, want := range []string{"normalize", "merge", "plausibility", "gap exclusion", "calendar"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing stage %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "12,500") {
		t.Errorf("raw row count not grouped:\n%s", out)
	}
	if !strings.Contains(out, "494 fragments merged") {
		t.Errorf("merge detail missing:\n%s", out)
	}
}

func TestSummaryNilStats(t *testing.T) {
	if out := report.Summary(nil); out != "" {
		t.Fatalf("expected empty summary, got %q", out)
	}
}

func TestRunsListing(t *testing.T) {
	started := time.Date(2024, time.June, 4, 9, 0, 0, 0, time.UTC)
	runs := []*runstore.Run{
		{
			ID:          "0f47ac10-58cc-4372-a567-0e02b2c3d479",
			Status:      runstore.StatusCompleted,
			StartedAt:   started,
			FinishedAt:  started.Add(42 * time.Second),
			RawRows:     1000,
			CleanedRows: 400,
			OutputPath:  "/data/cleaned.csv",
		},
		{
			ID:        "1a001000-0000-0000-0000-000000000000",
			Status:    runstore.StatusRunning,
			StartedAt: started.Add(time.Hour),
		},
	}

	out := report.Runs(runs)
	if !strings.Contains(out, "0f47ac10") {
		t.Errorf("listing missing short run id:\n%s", out)
	}
	if strings.Contains(out, "0f47ac10-58cc") {
		t.Errorf("listing shows full run id:\n%s", out)
	}
	if !strings.Contains(out, "completed") || !strings.Contains(out, "running") {
		t.Errorf("listing missing statuses:\n%s", out)
	}
	if !strings.Contains(out, "/data/cleaned.csv") {
		t.Errorf("listing missing output path:\n%s", out)
	}
}

func TestRunsEmpty(t *testing.T) {
	if out := report.Runs(nil); !strings.Contains(out, "No runs recorded") {
		t.Fatalf("unexpected empty listing: %q", out)
	}
}

func TestFailureLine(t *testing.T) {
	run := &runstore.Run{ID: "0f47ac10-58cc", ErrorMessage: "load raw data: no CSV files"}
	line := report.FailureLine(run)
	if !strings.Contains(line, "0f47ac10") || !strings.Contains(line, "no CSV files") {
		t.Fatalf("unexpected failure line: %q", line)
	}
	if report.FailureLine(nil) != "" {
		t.Fatal("expected empty line for nil run")
	}
}
