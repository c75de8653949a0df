package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateStudy(); err != nil {
		return err
	}
	if err := c.validateFilters(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.RawDataDir == "" {
		return errors.New("paths.raw_data_dir must be set")
	}
	if c.Paths.OutputFile == "" {
		return errors.New("paths.output_file must be set")
	}
	if c.Paths.RawDataDir == c.Paths.OutputFile {
		return errors.New("paths.output_file must not equal paths.raw_data_dir")
	}
	return nil
}

func (c *Config) validateStudy() error {
	if c.Study.Timezone == "" {
		return errors.New("study.timezone must be set; raw rows declaring any other timezone are discarded")
	}
	return nil
}

func (c *Config) validateFilters() error {
	if c.Filters.GapHours <= 0 {
		return fmt.Errorf("filters.gap_hours must be positive, got %v", c.Filters.GapHours)
	}
	if c.Filters.MaxSessionSeconds <= 0 {
		return fmt.Errorf("filters.max_session_seconds must be positive, got %v", c.Filters.MaxSessionSeconds)
	}
	if c.Filters.DenylistMaxSeconds <= 0 {
		return fmt.Errorf("filters.denylist_max_seconds must be positive, got %v", c.Filters.DenylistMaxSeconds)
	}
	if c.Filters.DenylistMaxSeconds >= c.Filters.MaxSessionSeconds {
		return fmt.Errorf("filters.denylist_max_seconds (%v) must be below filters.max_session_seconds (%v)",
			c.Filters.DenylistMaxSeconds, c.Filters.MaxSessionSeconds)
	}
	return nil
}
