package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chronicle/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Filters.GapHours != 12 {
		t.Fatalf("gap_hours default = %v", cfg.Filters.GapHours)
	}
	if cfg.Filters.MaxSessionSeconds != 21600 {
		t.Fatalf("max_session_seconds default = %v", cfg.Filters.MaxSessionSeconds)
	}
	if cfg.Filters.DenylistMaxSeconds != 600 {
		t.Fatalf("denylist_max_seconds default = %v", cfg.Filters.DenylistMaxSeconds)
	}
	if len(cfg.Filters.Denylist) != 10 {
		t.Fatalf("denylist default length = %d", len(cfg.Filters.Denylist))
	}
	if cfg.Study.Timezone == "" {
		t.Fatal("expected a default timezone")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("logging defaults = %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
raw_data_dir = "` + filepath.Join(dir, "raw") + `"
output_file = "` + filepath.Join(dir, "out", "cleaned.csv") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"
data_dir = "` + filepath.Join(dir, "data") + `"

[study]
timezone = "America/Chicago"

[filters]
gap_hours = 8.0
denylist = [" com.example.launcher ", "com.example.launcher", ""]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Study.Timezone != "America/Chicago" {
		t.Fatalf("timezone = %q", cfg.Study.Timezone)
	}
	if cfg.Filters.GapHours != 8 {
		t.Fatalf("gap_hours = %v", cfg.Filters.GapHours)
	}
	// Unspecified thresholds fall back to defaults.
	if cfg.Filters.MaxSessionSeconds != 21600 {
		t.Fatalf("max_session_seconds = %v", cfg.Filters.MaxSessionSeconds)
	}
	// Denylist entries are trimmed and deduplicated.
	if len(cfg.Filters.Denylist) != 1 || cfg.Filters.Denylist[0] != "com.example.launcher" {
		t.Fatalf("denylist = %v", cfg.Filters.Denylist)
	}
	if !filepath.IsAbs(cfg.Paths.RawDataDir) {
		t.Fatalf("raw_data_dir not absolute: %q", cfg.Paths.RawDataDir)
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"negative gap", func(c *config.Config) { c.Filters.GapHours = -1 }, "gap_hours"},
		{"negative cap", func(c *config.Config) { c.Filters.MaxSessionSeconds = -5 }, "max_session_seconds"},
		{"denylist above cap", func(c *config.Config) { c.Filters.DenylistMaxSeconds = 30000 }, "denylist_max_seconds"},
		{"empty timezone", func(c *config.Config) { c.Study.Timezone = "" }, "timezone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Filters.GapHours != 12 {
		t.Fatalf("sample gap_hours = %v", cfg.Filters.GapHours)
	}
	if len(cfg.Filters.Denylist) != 10 {
		t.Fatalf("sample denylist length = %d", len(cfg.Filters.Denylist))
	}
}

func TestDenylistSet(t *testing.T) {
	cfg := config.Default()
	set := cfg.DenylistSet()
	if len(set) != len(cfg.Filters.Denylist) {
		t.Fatalf("set size = %d, want %d", len(set), len(cfg.Filters.Denylist))
	}
	if _, ok := set["com.android.systemui"]; !ok {
		t.Fatal("expected com.android.systemui in denylist set")
	}
}
