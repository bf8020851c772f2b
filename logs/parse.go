package logs

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/tracelog/analyzer/state"
)

type LogParser struct {
	dialect  *Dialect
	traceIDs map[string]struct{}
}

// NewLogParser - Parser that only considers lines belonging to traceIDs
func NewLogParser(traceIDs []string, dialect *Dialect) *LogParser {
	ids := make(map[string]struct{}, len(traceIDs))
	for _, traceID := range traceIDs {
		ids[traceID] = struct{}{}
	}
	if dialect == nil {
		dialect = &DefaultDialect
	}
	return &LogParser{dialect: dialect, traceIDs: ids}
}

// ParseLine classifies a single log line. ok is false for lines that don't
// carry a requested trace identifier, these are not looked at any further.
func (lp *LogParser) ParseLine(line string) (logLine state.LogLine, ok bool) {
	line = strings.TrimRight(line, "\r\n")

	traceIdxs := lp.dialect.TraceRegexp.FindStringSubmatchIndex(line)
	if traceIdxs == nil || len(traceIdxs) < 4 || traceIdxs[2] < 0 {
		return logLine, false
	}
	traceID := line[traceIdxs[2]:traceIdxs[3]]
	if _, requested := lp.traceIDs[traceID]; !requested {
		return logLine, false
	}

	logLine.TraceID = traceID
	logLine.IsError = lp.dialect.ErrorRegexp.MatchString(line)

	// The trace marker may appear anywhere, and is never part of the query
	content := line[:traceIdxs[0]] + line[traceIdxs[1]:]
	shape, event, matched := lp.dialect.MatchQuery(content)
	if !matched {
		return logLine, true
	}

	event.TraceID = traceID
	event.IsError = logLine.IsError
	event.Timestamp = ResolveTimestamp(line)

	logLine.Dialect = shape.Name
	logLine.Query = &event

	return logLine, true
}

type LineReader interface {
	ReadString(delim byte) (string, error)
}

// ParseAndAnalyzeBuffer reads logStream to the end and returns the query
// events in file order, together with which traces had error lines.
func ParseAndAnalyzeBuffer(logStream LineReader, parser *LogParser) ([]state.QueryEvent, map[string]bool, state.ScanStats, error) {
	var queries []state.QueryEvent
	errorsByTrace := make(map[string]bool)
	stats := state.ScanStats{QueriesByDialect: make(map[string]int)}

	for {
		line, err := logStream.ReadString('\n')

		// The last line of a file may not be newline-terminated, in which case
		// it is returned together with io.EOF
		if line != "" {
			stats.LinesScanned++

			logLine, ok := parser.ParseLine(line)
			if ok {
				stats.LinesMatched++
				if logLine.IsError {
					stats.ErrorLines++
					errorsByTrace[logLine.TraceID] = true
				}
				if logLine.Query != nil {
					stats.QueriesByDialect[logLine.Dialect]++
					queries = append(queries, *logLine.Query)
				}
			}
		}

		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, stats, errors.Wrap(err, "could not read log")
		}
	}

	return queries, errorsByTrace, stats, nil
}
