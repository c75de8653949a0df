package testsupport

import (
	"path/filepath"
	"testing"

	"chronicle/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.RawDataDir = filepath.Join(base, "raw")
	cfgVal.Paths.OutputFile = filepath.Join(base, "out", "cleaned.csv")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTimezone overrides the study timezone on the test config.
func WithTimezone(tz string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Study.Timezone = tz
	}
}

// WithDenylist replaces the denylist on the test config.
func WithDenylist(apps ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Filters.Denylist = apps
	}
}

// WithGapHours overrides the gap threshold on the test config.
func WithGapHours(hours float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Filters.GapHours = hours
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.RawDataDir)
}
