package input

import (
	"bufio"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tracelog/analyzer/logs"
	"github.com/tracelog/analyzer/state"
	"github.com/tracelog/analyzer/util"
)

const DefaultSlowThresholdMs float64 = 500.0

var ErrLogFileNotFound = errors.New("log file not found")

// AnalyzeLogFile - Reads the log file once, extracting all query events of
// the requested traces and summarizing each trace
func AnalyzeLogFile(logger *util.Logger, path string, traceIDs []string, slowThresholdMs float64) (state.AnalysisResult, error) {
	var result state.AnalysisResult

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return result, errors.Wrap(ErrLogFileNotFound, path)
		}
		return result, errors.Wrapf(err, "could not access log file %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return result, errors.Wrapf(err, "could not open log file %s", path)
	}
	defer file.Close()

	runID, err := uuid.NewV7()
	if err != nil {
		return result, errors.Wrap(err, "could not generate run ID")
	}
	logger = logger.WithPrefix(runID.String())
	logger.PrintVerbose("Analyzing %s for %d trace(s)", path, len(traceIDs))

	// Invalid UTF-8 sequences are replaced with U+FFFD instead of failing the read
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := bufio.NewReader(transform.NewReader(file, decoder))

	parser := logs.NewLogParser(traceIDs, &logs.DefaultDialect)
	queries, errorsByTrace, stats, err := logs.ParseAndAnalyzeBuffer(reader, parser)
	if err != nil {
		return state.AnalysisResult{}, errors.Wrapf(err, "could not analyze log file %s", path)
	}

	result = state.AnalysisResult{
		RunID:           runID,
		LogFile:         path,
		TraceIDs:        traceIDs,
		SlowThresholdMs: slowThresholdMs,
		Summaries:       logs.AnalyzeTraces(queries, traceIDs, errorsByTrace, slowThresholdMs),
		Queries:         queries,
		ErrorsByTrace:   errorsByTrace,
		Stats:           stats,
	}

	logs.PrintDebugInfo(logger, result)

	return result, nil
}
