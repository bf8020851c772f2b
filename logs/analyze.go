package logs

import (
	null "gopkg.in/guregu/null.v3"

	"github.com/tracelog/analyzer/state"
)

// AnalyzeTraces - Summarizes the query events of each requested trace
//
// Exactly one summary is returned for each entry in traceIDs, in the same
// order, including traces that had no matching events at all.
func AnalyzeTraces(events []state.QueryEvent, traceIDs []string, errorsByTrace map[string]bool, slowThresholdMs float64) []state.TraceSummary {
	eventsByTrace := make(map[string][]state.QueryEvent)
	for _, event := range events {
		eventsByTrace[event.TraceID] = append(eventsByTrace[event.TraceID], event)
	}

	summaries := make([]state.TraceSummary, 0, len(traceIDs))
	for _, traceID := range traceIDs {
		summary := summarizeTrace(eventsByTrace[traceID], slowThresholdMs)
		summary.TraceID = traceID
		summary.HasErrors = summary.HasErrors || errorsByTrace[traceID]
		summaries = append(summaries, summary)
	}

	return summaries
}

func summarizeTrace(events []state.QueryEvent, slowThresholdMs float64) (summary state.TraceSummary) {
	summary.TotalQueries = len(events)

	for _, event := range events {
		if event.IsSlow(slowThresholdMs) {
			summary.TotalSlowQueries++
		}
		if event.IsError {
			summary.HasErrors = true
		}
		if !event.Timestamp.Valid {
			continue
		}
		if !summary.StartTime.Valid || event.Timestamp.Time.Before(summary.StartTime.Time) {
			summary.StartTime = null.TimeFrom(event.Timestamp.Time)
		}
		if !summary.EndTime.Valid || event.Timestamp.Time.After(summary.EndTime.Time) {
			summary.EndTime = null.TimeFrom(event.Timestamp.Time)
		}
	}

	if summary.StartTime.Valid && summary.EndTime.Valid {
		totalDuration := summary.EndTime.Time.Sub(summary.StartTime.Time)
		summary.TotalDuration = &totalDuration
	}

	// Every member of a colliding group counts, so three identical shapes add three
	for _, duplicate := range FindDuplicateQueries(events) {
		summary.DuplicateQueries += duplicate.Count
	}

	return
}
