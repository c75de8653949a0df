package main

import (
	"os"
	"path/filepath"
	"testing"

	"chronicle/internal/testsupport"
)

func TestRunCommandEndToEnd(t *testing.T) {
	env := setupCLITestEnv(t)

	tz := env.cfg.Study.Timezone
	testsupport.WriteRawCSV(t, filepath.Join(env.cfg.Paths.RawDataDir, "export.csv"),
		testsupport.RawLine("p1", "App Usage", "Mail", "com.example.mail", "2024-06-03T21:00:00.000-04:00", "2024-06-03T21:30:00.000-04:00", "1800", tz),
		testsupport.RawLine("p1", "App Usage", "Browser", "com.example.browser", "2024-06-04T09:00:00.000-04:00", "2024-06-04T10:00:00.000-04:00", "3600", tz),
		testsupport.RawLine("p1", "App Usage", "Browser", "com.example.browser", "2024-06-04T10:00:00.000-04:00", "2024-06-04T10:15:00.000-04:00", "900", tz),
		testsupport.RawLine("p1", "App Usage", "Mail", "com.example.mail", "2024-06-04T21:00:00.000-04:00", "2024-06-04T21:30:00.000-04:00", "1800", tz),
		testsupport.RawLine("p1", "App Usage", "Mail", "com.example.mail", "2024-06-05T08:00:00.000-04:00", "2024-06-05T08:30:00.000-04:00", "1800", tz),
	)

	out, _, err := runCLI(t, []string{"run"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "normalize")
	requireContains(t, out, "wrote 2 cleaned rows")

	if _, err := os.Stat(env.cfg.Paths.OutputFile); err != nil {
		t.Fatalf("expected export at %s: %v", env.cfg.Paths.OutputFile, err)
	}

	// The run shows up in the history listing.
	out, _, err = runCLI(t, []string{"runs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, out, "completed")
}

func TestRunCommandFailsWithoutRawData(t *testing.T) {
	env := setupCLITestEnv(t)

	if err := os.MkdirAll(env.cfg.Paths.RawDataDir, 0o755); err != nil {
		t.Fatalf("mkdir raw dir: %v", err)
	}

	if _, _, err := runCLI(t, []string{"run"}, env.configPath); err == nil {
		t.Fatal("expected error running without raw data")
	}

	out, _, err := runCLI(t, []string{"runs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, out, "failed")
}

func TestRunsEmptyDatabase(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"runs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, out, "No runs recorded")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "chronicle")
}
