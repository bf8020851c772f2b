package state

// LogLine - Classification of a single raw line in the application log
//
// Only lines that carry one of the requested trace identifiers are turned
// into a LogLine. Query is nil when none of the query shapes matched, in which
// case the line can still mark its trace as having errors.
type LogLine struct {
	TraceID string
	IsError bool

	// Name of the query shape that matched, empty if none did
	Dialect string

	Query *QueryEvent
}
