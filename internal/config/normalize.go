package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeBuild()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.SourcesDir, err = expandPath(c.Paths.SourcesDir); err != nil {
		return fmt.Errorf("paths.sources_dir: %w", err)
	}
	if c.Paths.ScalesDir, err = expandPath(c.Paths.ScalesDir); err != nil {
		return fmt.Errorf("paths.scales_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.IndexPath) == "" {
		c.Paths.IndexPath = filepath.Join(filepath.Dir(c.Paths.ScalesDir), "scale-index.db")
	}
	if c.Paths.IndexPath, err = expandPath(c.Paths.IndexPath); err != nil {
		return fmt.Errorf("paths.index_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeBuild() {
	cleaned := make([]string, 0, len(c.Build.Sources))
	for _, s := range c.Build.Sources {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	c.Build.Sources = cleaned
	c.Build.LargeIntegerPolicy = strings.ToLower(strings.TrimSpace(c.Build.LargeIntegerPolicy))
	if c.Build.LargeIntegerPolicy == "" {
		c.Build.LargeIntegerPolicy = policyFail
	}
	c.Build.LastTonePolicy = strings.ToLower(strings.TrimSpace(c.Build.LastTonePolicy))
	if c.Build.LastTonePolicy == "" {
		c.Build.LastTonePolicy = policyLog
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
