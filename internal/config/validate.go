package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks configuration invariants after normalization.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.ScalesDir) == "" {
		return fmt.Errorf("paths.scales_dir must be set")
	}
	if strings.TrimSpace(c.Paths.SourcesDir) == "" {
		return fmt.Errorf("paths.sources_dir must be set")
	}
	seen := map[string]bool{}
	for _, source := range c.Build.Sources {
		if !slices.Contains(KnownSources, source) {
			return fmt.Errorf("build.sources: unknown source %q (known: %s)", source, strings.Join(KnownSources, ", "))
		}
		if seen[source] {
			return fmt.Errorf("build.sources: %q listed twice", source)
		}
		seen[source] = true
	}
	for name, value := range map[string]string{
		"build.large_integer_policy": c.Build.LargeIntegerPolicy,
		"build.last_tone_policy":     c.Build.LastTonePolicy,
	} {
		if value != policyFail && value != policyLog {
			return fmt.Errorf("%s: unsupported value %q (want %q or %q)", name, value, policyFail, policyLog)
		}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
