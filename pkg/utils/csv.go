package utils

import (
	"io"
	"strings"
)

// WriteQuotedCSV writes rows with every field double-quoted and rows joined by "\n".
// encoding/csv only quotes fields that need it, which the export format does not allow.
func WriteQuotedCSV(w io.Writer, rows [][]string) error {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
