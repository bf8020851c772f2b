package output

import (
	"strings"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var SupportedFormats = []Format{FormatTable, FormatJSON, FormatYAML}

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat - Validates a user supplied format name (case-insensitive)
func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(value)))
	for _, supported := range SupportedFormats {
		if format == supported {
			return format, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q (supported: %s)", value, FormatNames())
}

// FormatNames - Comma-separated list of supported formats, for help texts
func FormatNames() string {
	names := make([]string, 0, len(SupportedFormats))
	for _, format := range SupportedFormats {
		names = append(names, string(format))
	}
	return strings.Join(names, ", ")
}
