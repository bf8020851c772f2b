package logs

import (
	"sort"

	"github.com/tracelog/analyzer/state"
	"github.com/tracelog/analyzer/util"
)

func PrintDebugInfo(logger *util.Logger, result state.AnalysisResult) {
	stats := result.Stats
	logger.PrintVerbose("Scanned %d lines, %d for requested traces, %d with errors", stats.LinesScanned, stats.LinesMatched, stats.ErrorLines)

	var dialects []string
	for dialect := range stats.QueriesByDialect {
		dialects = append(dialects, dialect)
	}
	sort.Strings(dialects)
	for _, dialect := range dialects {
		logger.PrintVerbose("%d x %s", stats.QueriesByDialect[dialect], dialect)
	}

	for _, summary := range result.Summaries {
		if summary.TotalQueries == 0 {
			logger.PrintWarning("No queries found for trace %s", summary.TraceID)
		}
	}
}
