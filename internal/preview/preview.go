package preview

import (
	"strings"

	"go-segmentation/internal/model"
	"go-segmentation/pkg/utils"
)

// MaxRows caps the preview at 10 data rows regardless of file size.
// This is a display cap, not a validation limit.
const MaxRows = 10

// Parse splits raw CSV text into a header row and up to MaxRows data
// rows. The first line is a comma-delimited header list; each data line
// is split on comma, trimmed, and zipped against the headers by
// position. Missing trailing fields map to the empty string.
//
// Quoted or embedded commas are NOT handled: a delimiter inside a
// quoted field shifts the column alignment. This matches the dashboard
// preview's documented behavior and is why encoding/csv is not used.
func Parse(raw string) model.Table {
	lines := strings.Split(raw, "\n")

	headers := splitFields(lines[0])

	var rows []map[string]string
	for _, line := range lines[1:] {
		if len(rows) >= MaxRows {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitFields(line)
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return model.Table{Headers: headers, Rows: rows}
}

// Build parses raw text and attaches the column summary used by the
// upload response
func Build(raw string) model.TablePreview {
	table := Parse(raw)
	return model.TablePreview{
		Table:          table,
		ColumnCount:    len(table.Headers),
		RowCount:       len(table.Rows),
		NumericColumns: numericColumns(table),
	}
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// numericColumns returns headers whose every non-empty preview value
// parses as a number
func numericColumns(t model.Table) []string {
	if len(t.Rows) == 0 {
		return nil
	}

	var numeric []string
	for _, h := range t.Headers {
		seen := false
		allNumeric := true
		for _, row := range t.Rows {
			v := row[h]
			if v == "" {
				continue
			}
			seen = true
			if !utils.IsNumeric(v) {
				allNumeric = false
				break
			}
		}
		if seen && allNumeric {
			numeric = append(numeric, h)
		}
	}
	return numeric
}
