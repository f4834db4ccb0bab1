// Package export produces the denormalized backup snapshot of the store:
// one semicolon-delimited CSV file per entity, and optionally a spreadsheet
// workbook, written into a user-chosen directory.
package export

import (
	"fmt"
	"strings"

	"github.com/clinicadesk/clinicadesk/internal/db"
)

// utf8BOM prefixes every non-empty CSV blob so spreadsheet tools render
// accented characters correctly.
const utf8BOM = "\ufeff"

// fieldDelimiter is a semicolon rather than a comma for locale
// compatibility (pt-BR spreadsheets use the comma as decimal separator).
const fieldDelimiter = ";"

// EncodeCSV serializes a record set as delimited text. Column order follows
// rs.Columns minus the excluded ones. An empty record set encodes to an
// empty blob with no header and no byte-order mark; callers must treat that
// as a valid, distinct case.
//
// The function is deterministic: identical input always yields identical
// bytes.
func EncodeCSV(rs *db.RecordSet, exclude []string) []byte {
	if rs == nil || len(rs.Rows) == 0 {
		return []byte{}
	}

	headers := filterColumns(rs.Columns, exclude)

	lines := make([]string, 0, len(rs.Rows)+1)
	lines = append(lines, strings.Join(headers, fieldDelimiter))

	for _, row := range rs.Rows {
		fields := make([]string, len(headers))
		for i, col := range headers {
			fields[i] = escapeField(row[col])
		}
		lines = append(lines, strings.Join(fields, fieldDelimiter))
	}

	return []byte(utf8BOM + strings.Join(lines, "\n"))
}

// escapeField stringifies a value and quotes it if and only if it contains
// the delimiter, a double quote, or a newline. Internal quotes are doubled.
// Nil becomes an empty field.
func escapeField(value any) string {
	if value == nil {
		return ""
	}
	str := fmt.Sprintf("%v", value)
	if strings.Contains(str, fieldDelimiter) || strings.Contains(str, `"`) || strings.Contains(str, "\n") {
		str = `"` + strings.ReplaceAll(str, `"`, `""`) + `"`
	}
	return str
}

func filterColumns(columns, exclude []string) []string {
	excludeSet := make(map[string]bool, len(exclude))
	for _, col := range exclude {
		excludeSet[col] = true
	}

	filtered := make([]string, 0, len(columns))
	for _, col := range columns {
		if !excludeSet[col] {
			filtered = append(filtered, col)
		}
	}
	return filtered
}
