package config

import (
	"fmt"

	"github.com/lgbarn/abysschess-go/internal/errors"
)

// DocumentConfig holds settings for the rendered README.
type DocumentConfig struct {
	// Path is the document to splice; empty disables splicing
	Path string `json:"readme"`

	// MarkerPrefix is the PREFIX in <!-- PREFIX_NAME_START -->
	MarkerPrefix string `json:"marker_prefix"`

	// Strict makes a missing marker fatal instead of a warning
	Strict bool `json:"strict"`

	// Repository is the owner/name slug move links point at
	Repository string `json:"repository"`

	// IssueBody is prefilled in the issue each move link opens
	IssueBody string `json:"issue_body"`

	// RecentLimit caps the recent-moves table
	RecentLimit int `json:"recent_limit"`

	// LeaderboardLimit caps the leaderboard table
	LeaderboardLimit int `json:"leaderboard_limit"`
}

// NewDocumentConfig creates a DocumentConfig with default values.
func NewDocumentConfig() *DocumentConfig {
	return &DocumentConfig{
		Path:             "README.md",
		MarkerPrefix:     "CHESS",
		RecentLimit:      5,
		LeaderboardLimit: 10,
	}
}

// Validate checks the marker prefix and table limits.
func (c *DocumentConfig) Validate() error {
	if !prefixPattern.MatchString(c.MarkerPrefix) {
		return fmt.Errorf("%w: marker prefix %q must be letters, digits or underscores",
			errors.ErrInvalidConfig, c.MarkerPrefix)
	}
	if c.RecentLimit < 0 || c.LeaderboardLimit < 0 {
		return fmt.Errorf("%w: table limits must not be negative", errors.ErrInvalidConfig)
	}
	return nil
}
