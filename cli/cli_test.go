package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tracelog/analyzer/input"
	"github.com/tracelog/analyzer/output"
)

const testLog = `2025-09-05 12:34:56,789 DEBUG org.hibernate.SQL - select * from users where id = 1 [traceId: abc-123]
2025-09-05 12:34:57,289 INFO org.hibernate.SQL_SLOW - SlowQuery: 1200 milliseconds. SQL: 'com.mysql.cj.jdbc.ClientPreparedStatement: select * from orders' [traceId: abc-123]
2025-09-05 12:34:58,289 DEBUG org.hibernate.SQL - select * from users where id = 2 [traceId: abc-123]
2025-09-05 12:34:59,000 DEBUG org.hibernate.SQL - select * from users where id = 3 [traceId: def-456]
2025-09-05 12:35:00,000 ERROR com.acme.Api - java.lang.IllegalStateException: boom [traceId: def-456]
`

func isolateEnv(t *testing.T) {
	for _, name := range []string{"TRACE_ANALYZER_CONFIG", "TRACE_ANALYZER_SLOW_MS", "TRACE_ANALYZER_FORMAT", "TRACE_ANALYZER_OUTPUT_FILE", "TRACE_ANALYZER_VERBOSE"} {
		t.Setenv(name, "")
	}
}

func writeTestLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(testLog), 0644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolateEnv(t)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyseJSON(t *testing.T) {
	logFile := writeTestLog(t)

	stdout, _, err := runCLI(t, "analyse", logFile, "abc-123, def-456", "--format", "json")
	require.NoError(t, err)

	var rows []output.SummaryRow
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "abc-123", rows[0].TraceID)
	require.NotNil(t, rows[0].StartTime)
	assert.Equal(t, "2025-09-05 12:34:56", *rows[0].StartTime)
	require.NotNil(t, rows[0].TotalDurationSec)
	assert.InDelta(t, 1.5, *rows[0].TotalDurationSec, 0.0001)
	assert.Equal(t, 3, rows[0].TotalQueries)
	assert.Equal(t, 1, rows[0].TotalSlowQueries)
	assert.Equal(t, 2, rows[0].DuplicateQueries)
	assert.False(t, rows[0].HasErrors)

	assert.Equal(t, "def-456", rows[1].TraceID)
	assert.Equal(t, 1, rows[1].TotalQueries)
	assert.True(t, rows[1].HasErrors)
}

func TestAnalyzeAliasTable(t *testing.T) {
	logFile := writeTestLog(t)

	stdout, _, err := runCLI(t, "analyze", logFile, "abc-123")
	require.NoError(t, err)
	assert.Contains(t, stdout, "trace_id")
	assert.Contains(t, stdout, "abc-123")
	assert.NotContains(t, stdout, "def-456")
}

func TestAnalyseSlowThreshold(t *testing.T) {
	logFile := writeTestLog(t)

	stdout, _, err := runCLI(t, "analyse", logFile, "abc-123", "--slow-ms", "2000", "--format", "json")
	require.NoError(t, err)

	var rows []output.SummaryRow
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].TotalSlowQueries)
}

func TestListQueries(t *testing.T) {
	logFile := writeTestLog(t)

	stdout, _, err := runCLI(t, "list-queries", logFile, "def-456", "--format", "json")
	require.NoError(t, err)

	var rows []output.QueryRow
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "select * from users where id = 3", rows[0].Statement)
	assert.Nil(t, rows[0].DurationMs)
}

func TestListSlowQueries(t *testing.T) {
	logFile := writeTestLog(t)

	stdout, _, err := runCLI(t, "list-slow-queries", logFile, "abc-123,def-456", "--format", "json")
	require.NoError(t, err)

	var rows []output.SlowQueryRow
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "select * from orders", rows[0].Statement)
	require.NotNil(t, rows[0].DurationMs)
	assert.Equal(t, 1200.0, *rows[0].DurationMs)
}

func TestListDuplicateQueriesYAML(t *testing.T) {
	logFile := writeTestLog(t)

	stdout, _, err := runCLI(t, "list-duplicate-queries", logFile, "abc-123,def-456", "--format", "yaml")
	require.NoError(t, err)

	var rows []output.DuplicateRow
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "select * from users where id = ?", rows[0].Statement)
	assert.Equal(t, 3, rows[0].Count)
	assert.Len(t, rows[0].Fingerprint, 16)
}

func TestOutputFile(t *testing.T) {
	logFile := writeTestLog(t)
	outputFile := filepath.Join(t.TempDir(), "report.json")

	stdout, _, err := runCLI(t, "analyse", logFile, "abc-123", "--format", "json", "--output-file", outputFile)
	require.NoError(t, err)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(stdout, "\n"), string(content))
}

func TestEmptyResultTable(t *testing.T) {
	logFile := writeTestLog(t)

	stdout, _, err := runCLI(t, "list-slow-queries", logFile, "def-456")
	require.NoError(t, err)
	assert.Equal(t, "(no results)\n", stdout)
}

func TestUnknownFormatBeforeFileAccess(t *testing.T) {
	_, _, err := runCLI(t, "analyse", filepath.Join(t.TempDir(), "missing.log"), "abc-123", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnknownFormat))
}

func TestUnsupportedMode(t *testing.T) {
	_, _, err := runCLI(t, "analyse", filepath.Join(t.TempDir(), "missing.log"), "abc-123", "--mode", "HTTP")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}

func TestModeIsCaseInsensitive(t *testing.T) {
	logFile := writeTestLog(t)

	_, _, err := runCLI(t, "analyse", logFile, "abc-123", "--mode", "db")
	assert.NoError(t, err)
}

func TestMissingLogFile(t *testing.T) {
	_, _, err := runCLI(t, "analyse", filepath.Join(t.TempDir(), "missing.log"), "abc-123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, input.ErrLogFileNotFound))
}

func TestBlankTraceIDs(t *testing.T) {
	logFile := writeTestLog(t)

	_, _, err := runCLI(t, "analyse", logFile, " , ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one trace ID")
}

func TestWrongArgumentCount(t *testing.T) {
	_, _, err := runCLI(t, "analyse", "only-one-arg")
	assert.Error(t, err)
}

func TestConfigFileDefaults(t *testing.T) {
	logFile := writeTestLog(t)
	configFile := filepath.Join(t.TempDir(), "analyzer.conf")
	require.NoError(t, os.WriteFile(configFile, []byte("[analyzer]\nformat = json\nslow_ms = 2000\n"), 0644))

	stdout, _, err := runCLI(t, "--config", configFile, "analyse", logFile, "abc-123")
	require.NoError(t, err)

	var rows []output.SummaryRow
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].TotalSlowQueries)
}

func TestVerboseLogsToStderr(t *testing.T) {
	logFile := writeTestLog(t)

	_, stderr, err := runCLI(t, "analyse", logFile, "abc-123", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Scanned 5 lines")
}
