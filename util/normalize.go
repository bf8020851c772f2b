package util

import (
	"regexp"
	"strings"
)

var numericTokenRegexp = regexp.MustCompile(`\b\d+\b`)

// NormalizeStatement - Reduces a SQL/HQL statement to its shape, so that
// statements that only differ in whitespace, letter case or numeric literals
// compare equal.
//
// Note that this also folds digits that form a whole token inside string
// literals or quoted identifiers.
func NormalizeStatement(statement string) string {
	normalized := strings.Join(strings.Fields(statement), " ")
	normalized = numericTokenRegexp.ReplaceAllLiteralString(normalized, "?")
	return strings.ToLower(normalized)
}
