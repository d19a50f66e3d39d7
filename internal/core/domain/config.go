package domain

import "slices"

// Config holds the settings that shape a sync run.
type Config struct {
	// Exempt lists additional package names never reported as not found.
	Exempt []string
	// ReportLimit caps how many not-found names are printed per file.
	ReportLimit int
	// Backup saves the original content of each file before it is overwritten.
	Backup bool
	// DryRun computes and reports the rewrite without writing anything.
	DryRun bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		ReportLimit: DefaultReportLimit,
	}
}

// ExemptNames returns the default exemptions followed by the configured ones, normalized and deduplicated.
func (c *Config) ExemptNames() []string {
	names := make([]string, 0, len(DefaultExemptNames)+len(c.Exempt))
	for _, n := range DefaultExemptNames {
		names = append(names, NormalizeName(n))
	}
	for _, n := range c.Exempt {
		if norm := NormalizeName(n); norm != "" && !slices.Contains(names, norm) {
			names = append(names, norm)
		}
	}
	return names
}

// Validate checks the config for values that cannot be used.
func (c *Config) Validate() error {
	if c.ReportLimit < 0 {
		return ErrInvalidReportLimit
	}
	return nil
}
