package logs

import (
	"github.com/tracelog/analyzer/state"
	"github.com/tracelog/analyzer/util"
)

// FilterByTrace - Events belonging to any of traceIDs, in their original order
func FilterByTrace(events []state.QueryEvent, traceIDs []string) []state.QueryEvent {
	ids := make(map[string]struct{}, len(traceIDs))
	for _, traceID := range traceIDs {
		ids[traceID] = struct{}{}
	}

	var filtered []state.QueryEvent
	for _, event := range events {
		if _, ok := ids[event.TraceID]; ok {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// FindSlowQueries - Events whose duration is at least thresholdMs, in their original order
func FindSlowQueries(events []state.QueryEvent, thresholdMs float64) []state.QueryEvent {
	var slow []state.QueryEvent
	for _, event := range events {
		if event.IsSlow(thresholdMs) {
			slow = append(slow, event)
		}
	}
	return slow
}

// FindDuplicateQueries - Normalized statement shapes that occur more than once
//
// The result carries no particular order; callers that present it sort it
// themselves.
func FindDuplicateQueries(events []state.QueryEvent) []state.DuplicateQuery {
	counts := make(map[string]int)
	var shapes []string
	for _, event := range events {
		shape := util.NormalizeStatement(event.Statement)
		if counts[shape] == 0 {
			shapes = append(shapes, shape)
		}
		counts[shape]++
	}

	var duplicates []state.DuplicateQuery
	for _, shape := range shapes {
		if counts[shape] < 2 {
			continue
		}
		duplicates = append(duplicates, state.DuplicateQuery{
			Statement:   shape,
			Count:       counts[shape],
			Fingerprint: util.FingerprintText(shape),
		})
	}
	return duplicates
}
