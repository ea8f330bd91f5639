package config

import "time"

// RetentionConfig controls the background data-retention loop: how old a
// terminal session must be before it is soft-deleted and its on-disk
// artifacts (event log, checkpoints) are removed.
type RetentionConfig struct {
	// SessionRetentionDays is the age threshold, measured from
	// completed_at, after which terminal sessions are soft-deleted.
	SessionRetentionDays int `yaml:"session_retention_days"`

	// CleanupInterval is how often the retention pass runs. All replicas
	// run it independently; the operations are idempotent.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 30,
		CleanupInterval:      6 * time.Hour,
	}
}
