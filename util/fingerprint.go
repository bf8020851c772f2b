package util

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// FingerprintStatement - Short, stable identifier for the normalized shape of
// a statement
func FingerprintStatement(statement string) string {
	return FingerprintText(NormalizeStatement(statement))
}

// FingerprintText - Hashes text that is already normalized
func FingerprintText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
