// Package types provides type definitions for structured data used throughout the mentor-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Mentor represents a single mentor profile after canonicalization.
// Instances are immutable once built; the mentor pool is rebuilt fresh
// from the data source on every recommendation request.
type Mentor struct {
	ID             int             `json:"mentor_id"`
	Name           string          `json:"mentor_name"`
	Company        string          `json:"company"`
	Price          int             `json:"price"`
	MentoringCount int             `json:"mentoring_count"`
	Stacks         map[string]bool `json:"-"`
	Topics         map[string]bool `json:"-"`
	// Quality is the log-damped popularity score in [0,1], normalized
	// against the cohort's maximum mentoring count.
	Quality float64 `json:"quality"`
}
