package logs

import (
	"regexp"
	"strings"
	"time"

	null "gopkg.in/guregu/null.v3"
)

// 2025-09-05 12:34:56,789 or 2025-09-05T12:34:56.789123
var timestampRegexp = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}[,.]\d{3,6}`)

var timestampLayouts = []string{
	"2006-01-02 15:04:05.000000",
	"2006-01-02 15:04:05.00000",
	"2006-01-02 15:04:05.0000",
	"2006-01-02 15:04:05.000",
}

// ResolveTimestamp - Finds the first timestamp in the line. Timestamps carry
// no zone information and are interpreted as UTC.
func ResolveTimestamp(line string) null.Time {
	timePart := timestampRegexp.FindString(line)
	if timePart == "" {
		return null.Time{}
	}

	// Log configurations with a European locale use a comma as decimal separator
	timePart = strings.Replace(timePart, ",", ".", 1)
	timePart = strings.Replace(timePart, "T", " ", 1)

	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, timePart)
		if err == nil {
			return null.TimeFrom(ts)
		}
	}

	return null.Time{}
}
