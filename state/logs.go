package state

import (
	"github.com/google/uuid"
)

// ScanStats - Counters collected while reading through a log file
type ScanStats struct {
	LinesScanned int
	LinesMatched int
	ErrorLines   int

	QueriesByDialect map[string]int
}

// AnalysisResult - Everything produced by one pass over a log file
type AnalysisResult struct {
	RunID   uuid.UUID
	LogFile string

	TraceIDs        []string
	SlowThresholdMs float64

	Summaries     []TraceSummary
	Queries       []QueryEvent
	ErrorsByTrace map[string]bool

	Stats ScanStats
}
