package state

import (
	"time"

	null "gopkg.in/guregu/null.v3"
)

// QueryEvent - A database query issued while serving one trace
type QueryEvent struct {
	// Absent when the line had no timestamp we could parse
	Timestamp null.Time `json:"timestamp"`

	TraceID   string `json:"trace_id"`
	Statement string `json:"statement"`

	// Absent when the log dialect does not report it
	DurationMs null.Float `json:"duration_ms"`
	Rows       null.Int   `json:"rows"`

	IsError bool `json:"is_error"`
}

// SortTime - Timestamp used for ordering, events without one sort first
func (e QueryEvent) SortTime() time.Time {
	if !e.Timestamp.Valid {
		return time.Time{}
	}
	return e.Timestamp.Time
}

// IsSlow - Whether the measured duration meets the threshold. Queries without
// a measured duration are never slow.
func (e QueryEvent) IsSlow(thresholdMs float64) bool {
	return e.DurationMs.Valid && e.DurationMs.Float64 >= thresholdMs
}

// DuplicateQuery - Normalized statement shape seen more than once
type DuplicateQuery struct {
	Statement   string `json:"statement"`
	Count       int    `json:"count"`
	Fingerprint string `json:"fingerprint"`
}
