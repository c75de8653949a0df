package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeStudy()
	c.normalizeFilters()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.RawDataDir) == "" {
		c.Paths.RawDataDir = defaultRawDataDir
	}
	if c.Paths.RawDataDir, err = expandPath(c.Paths.RawDataDir); err != nil {
		return fmt.Errorf("paths.raw_data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputFile) == "" {
		c.Paths.OutputFile = defaultOutputFile
	}
	if c.Paths.OutputFile, err = expandPath(c.Paths.OutputFile); err != nil {
		return fmt.Errorf("paths.output_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeStudy() {
	c.Study.Timezone = strings.TrimSpace(c.Study.Timezone)
	if c.Study.Timezone == "" {
		c.Study.Timezone = defaultTimezone
	}
}

func (c *Config) normalizeFilters() {
	if c.Filters.GapHours == 0 {
		c.Filters.GapHours = defaultGapHours
	}
	if c.Filters.MaxSessionSeconds == 0 {
		c.Filters.MaxSessionSeconds = defaultMaxSessionSeconds
	}
	if c.Filters.DenylistMaxSeconds == 0 {
		c.Filters.DenylistMaxSeconds = defaultDenylistMaxSeconds
	}

	apps := make([]string, 0, len(c.Filters.Denylist))
	seen := make(map[string]struct{}, len(c.Filters.Denylist))
	for _, app := range c.Filters.Denylist {
		normalized := strings.TrimSpace(app)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		apps = append(apps, normalized)
	}
	c.Filters.Denylist = apps
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
