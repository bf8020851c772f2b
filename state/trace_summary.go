package state

import (
	"time"

	null "gopkg.in/guregu/null.v3"
)

// TraceSummary - Aggregated query statistics for one requested trace
type TraceSummary struct {
	TraceID string

	StartTime null.Time
	EndTime   null.Time

	// Only set when both StartTime and EndTime are known
	TotalDuration *time.Duration

	TotalQueries     int
	TotalSlowQueries int
	HasErrors        bool

	// Number of queries whose normalized shape occurs more than once
	DuplicateQueries int
}
