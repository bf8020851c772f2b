package output

import (
	"sort"
	"strconv"

	"github.com/tracelog/analyzer/state"
	"github.com/tracelog/analyzer/util"
)

// DateTimeLayout - How timestamps are presented (YYYY-MM-DD HH:MM:SS)
const DateTimeLayout = "2006-01-02 15:04:05"

// Row - One record of rendered output. Fields marshal in declaration order,
// absent values are nil pointers.
type Row interface {
	header() []string
	cells() []string
}

type SummaryRow struct {
	TraceID          string   `json:"trace_id" yaml:"trace_id"`
	StartTime        *string  `json:"start_time" yaml:"start_time"`
	EndTime          *string  `json:"end_time" yaml:"end_time"`
	TotalDurationSec *float64 `json:"total_duration_sec" yaml:"total_duration_sec"`
	TotalQueries     int      `json:"total_queries" yaml:"total_queries"`
	TotalSlowQueries int      `json:"total_slow_queries" yaml:"total_slow_queries"`
	HasErrors        bool     `json:"has_errors" yaml:"has_errors"`
	DuplicateQueries int      `json:"duplicate_queries" yaml:"duplicate_queries"`
}

func (r SummaryRow) header() []string {
	return []string{"trace_id", "start_time", "end_time", "total_duration_sec", "total_queries", "total_slow_queries", "has_errors", "duplicate_queries"}
}

func (r SummaryRow) cells() []string {
	return []string{
		r.TraceID,
		stringCell(r.StartTime),
		stringCell(r.EndTime),
		floatCell(r.TotalDurationSec),
		strconv.Itoa(r.TotalQueries),
		strconv.Itoa(r.TotalSlowQueries),
		strconv.FormatBool(r.HasErrors),
		strconv.Itoa(r.DuplicateQueries),
	}
}

type QueryRow struct {
	Timestamp  *string  `json:"timestamp" yaml:"timestamp"`
	TraceID    string   `json:"trace_id" yaml:"trace_id"`
	DurationMs *float64 `json:"duration_ms" yaml:"duration_ms"`
	Rows       *int64   `json:"rows" yaml:"rows"`
	Statement  string   `json:"statement" yaml:"statement"`
	IsError    bool     `json:"is_error" yaml:"is_error"`
}

func (r QueryRow) header() []string {
	return []string{"timestamp", "trace_id", "duration_ms", "rows", "statement", "is_error"}
}

func (r QueryRow) cells() []string {
	rows := ""
	if r.Rows != nil {
		rows = strconv.FormatInt(*r.Rows, 10)
	}
	return []string{stringCell(r.Timestamp), r.TraceID, floatCell(r.DurationMs), rows, r.Statement, strconv.FormatBool(r.IsError)}
}

type SlowQueryRow struct {
	Timestamp  *string  `json:"timestamp" yaml:"timestamp"`
	TraceID    string   `json:"trace_id" yaml:"trace_id"`
	DurationMs *float64 `json:"duration_ms" yaml:"duration_ms"`
	Statement  string   `json:"statement" yaml:"statement"`
}

func (r SlowQueryRow) header() []string {
	return []string{"timestamp", "trace_id", "duration_ms", "statement"}
}

func (r SlowQueryRow) cells() []string {
	return []string{stringCell(r.Timestamp), r.TraceID, floatCell(r.DurationMs), r.Statement}
}

type DuplicateRow struct {
	Statement   string `json:"statement" yaml:"statement"`
	Count       int    `json:"count" yaml:"count"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

func (r DuplicateRow) header() []string {
	return []string{"statement", "count", "fingerprint"}
}

func (r DuplicateRow) cells() []string {
	return []string{r.Statement, strconv.Itoa(r.Count), r.Fingerprint}
}

func SummaryRows(summaries []state.TraceSummary) []Row {
	rows := make([]Row, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, SummaryRow{
			TraceID:          s.TraceID,
			StartTime:        util.TimeToString(s.StartTime, DateTimeLayout),
			EndTime:          util.TimeToString(s.EndTime, DateTimeLayout),
			TotalDurationSec: util.DurationPtrToSeconds(s.TotalDuration),
			TotalQueries:     s.TotalQueries,
			TotalSlowQueries: s.TotalSlowQueries,
			HasErrors:        s.HasErrors,
			DuplicateQueries: s.DuplicateQueries,
		})
	}
	return rows
}

func QueryRows(queries []state.QueryEvent) []Row {
	rows := make([]Row, 0, len(queries))
	for _, q := range queries {
		rows = append(rows, QueryRow{
			Timestamp:  util.TimeToString(q.Timestamp, DateTimeLayout),
			TraceID:    q.TraceID,
			DurationMs: util.FloatToPtr(q.DurationMs),
			Rows:       util.IntToPtr(q.Rows),
			Statement:  q.Statement,
			IsError:    q.IsError,
		})
	}
	return rows
}

func SlowQueryRows(queries []state.QueryEvent) []Row {
	rows := make([]Row, 0, len(queries))
	for _, q := range queries {
		rows = append(rows, SlowQueryRow{
			Timestamp:  util.TimeToString(q.Timestamp, DateTimeLayout),
			TraceID:    q.TraceID,
			DurationMs: util.FloatToPtr(q.DurationMs),
			Statement:  q.Statement,
		})
	}
	return rows
}

// DuplicateRows - Rows sorted by descending count, then statement text
func DuplicateRows(duplicates []state.DuplicateQuery) []Row {
	sorted := SortDuplicates(duplicates)
	rows := make([]Row, 0, len(sorted))
	for _, d := range sorted {
		rows = append(rows, DuplicateRow{Statement: d.Statement, Count: d.Count, Fingerprint: d.Fingerprint})
	}
	return rows
}

// SortDuplicates - Copy of duplicates in presentation order
func SortDuplicates(duplicates []state.DuplicateQuery) []state.DuplicateQuery {
	sorted := make([]state.DuplicateQuery, len(duplicates))
	copy(sorted, duplicates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Statement < sorted[j].Statement
	})
	return sorted
}

func stringCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatCell(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
