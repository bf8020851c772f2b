package util

import "strings"

// helper function to check if a string is contained in a slice
func SliceContains(arr []string, val string) bool {
	for _, v := range arr {
		if v == val {
			return true
		}
	}
	return false
}

// SplitList - Splits a comma-separated argument, trimming whitespace and
// dropping empty entries
func SplitList(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
