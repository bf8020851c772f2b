package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const noResults = "(no results)"

// Render - Text representation of rows in the given format
func Render(rows []Row, format Format) (string, error) {
	if rows == nil {
		rows = []Row{}
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(rows); err != nil {
			return "", errors.Wrap(err, "could not encode JSON output")
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(rows); err != nil {
			return "", errors.Wrap(err, "could not encode YAML output")
		}
		if err := encoder.Close(); err != nil {
			return "", errors.Wrap(err, "could not encode YAML output")
		}
	case FormatTable:
		if len(rows) == 0 {
			return noResults, nil
		}
		renderTable(&buf, rows)
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// Markdown-style table, as on GitHub
func renderTable(buf *bytes.Buffer, rows []Row) {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(rows[0].header())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, row := range rows {
		table.Append(row.cells())
	}
	table.Render()
}

// WriteFile - Persists rendered output, nothing happens when path is empty
func WriteFile(path string, content string) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "could not write output file %s", path)
	}
	return nil
}
