package logs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	null "gopkg.in/guregu/null.v3"

	"github.com/tracelog/analyzer/state"
)

const QueryShapeHibernateStats string = "hibernate-stats"
const QueryShapeHibernateSQL string = "hibernate-sql"
const QueryShapeHibernateSlow string = "hibernate-slow"

// CaptureMatchers maps the named groups a query shape regexp may use to how
// the captured value is applied to the query event. Groups that are not
// present in a shape leave the corresponding field absent.
var CaptureMatchers = map[string]func(value string, event *state.QueryEvent){
	// Statement text, used as-is
	"statement": func(value string, event *state.QueryEvent) {
		event.Statement = strings.TrimSpace(value)
	},
	// Statement text that may start with a JDBC driver/class qualifier
	"qualified_statement": func(value string, event *state.QueryEvent) {
		event.Statement = strings.TrimSpace(StripStatementQualifier(strings.TrimSpace(value)))
	},
	// Duration in milliseconds, possibly fractional
	"duration": func(value string, event *state.QueryEvent) {
		durationMs, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return
		}
		event.DurationMs = null.FloatFrom(durationMs)
	},
	// Number of rows returned
	"rows": func(value string, event *state.QueryEvent) {
		rows, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return
		}
		event.Rows = null.IntFrom(rows)
	},
}

// QueryShape - One recognized query log line shape
type QueryShape struct {
	Name   string
	Regexp *regexp.Regexp

	captureNames []string
}

// NewQueryShape compiles expr and checks that all of its named groups are
// known capture matchers. It panics on invalid input, since shapes are
// defined once at startup.
func NewQueryShape(name string, expr string) QueryShape {
	re := regexp.MustCompile(expr)
	for _, captureName := range re.SubexpNames() {
		if captureName == "" {
			continue
		}
		if _, ok := CaptureMatchers[captureName]; !ok {
			panic(fmt.Sprintf("query shape %s: unknown capture group %q", name, captureName))
		}
	}
	return QueryShape{Name: name, Regexp: re, captureNames: re.SubexpNames()}
}

// Match applies the shape to content, returning the extracted event fields
func (s QueryShape) Match(content string) (event state.QueryEvent, ok bool) {
	values := s.Regexp.FindStringSubmatch(content)
	if values == nil {
		return event, false
	}

	for i, captureName := range s.captureNames {
		if i == 0 || captureName == "" {
			continue
		}
		CaptureMatchers[captureName](values[i], &event)
	}

	return event, true
}

// Dialect - The set of patterns recognized in one family of log files
//
// TraceRegexp must have exactly one capturing group, the trace identifier.
// Shapes are tried in order and the first match wins.
type Dialect struct {
	TraceRegexp *regexp.Regexp
	ErrorRegexp *regexp.Regexp
	Shapes      []QueryShape
}

// MatchQuery - Finds the first query shape matching content
func (d *Dialect) MatchQuery(content string) (shape QueryShape, event state.QueryEvent, ok bool) {
	for _, shape = range d.Shapes {
		event, ok = shape.Match(content)
		if ok {
			return shape, event, true
		}
	}
	return QueryShape{}, state.QueryEvent{}, false
}

// Hibernate logging, as produced by the org.hibernate.SQL, org.hibernate.SQL_SLOW
// and org.hibernate.stat loggers:
//
// DEBUG org.hibernate.stat.internal.StatisticsImpl - HHH000117: HQL: select u from User u, time: 12ms, rows: 3
// DEBUG org.hibernate.SQL - select session0_.id as id1_34_ from session session0_
// INFO org.hibernate.SQL_SLOW - SlowQuery: 1200 milliseconds. SQL: 'com.mysql.cj.jdbc.ClientPreparedStatement: select 1'
var DefaultDialect = Dialect{
	TraceRegexp: regexp.MustCompile(`(?i)\[traceId:\s+([\w-]+)\]`),
	ErrorRegexp: regexp.MustCompile(`(?i)ERROR|Exception|Traceback`),
	Shapes: []QueryShape{
		NewQueryShape(QueryShapeHibernateStats, `(?i)DEBUG\s+org\.hibernate\.stat\S*\s+-\s+(?:HHH000117:\s+)?HQL:\s+(?P<statement>.+?),\s+time:\s+(?P<duration>[0-9.]+)\s*ms,\s+rows:\s+(?P<rows>\d+)\s*$`),
		NewQueryShape(QueryShapeHibernateSQL, `(?i)DEBUG\s+org\.hibernate\.SQL\s+-\s+(?P<statement>.+)$`),
		NewQueryShape(QueryShapeHibernateSlow, `(?i)INFO\s+org\.hibernate\.SQL_SLOW\s+-\s+SlowQuery:\s+(?P<duration>[0-9.]+)\s+milliseconds\.\s+SQL:\s+'(?P<qualified_statement>.+)'\s*$`),
	},
}

// e.g. "com.mysql.cj.jdbc.ClientPreparedStatement: " or
// "HikariProxyPreparedStatement@51e0b3b6 wrapping com.mysql.cj.jdbc.ClientPreparedStatement@2f1c: "
var statementQualifierRegexp = regexp.MustCompile(`^(?:\S+@[0-9a-fA-F]+\s+wrapping\s+)?(?:[A-Za-z_$][\w$]*\.)+[A-Za-z_$][\w$]*(?:@[0-9a-fA-F]+)?:\s*`)

// StripStatementQualifier - Removes a leading JDBC statement class name
func StripStatementQualifier(statement string) string {
	loc := statementQualifierRegexp.FindStringIndex(statement)
	if loc == nil {
		return statement
	}
	return statement[loc[1]:]
}
