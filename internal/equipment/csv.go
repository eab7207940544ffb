package equipment

import (
	"fmt"
	"strings"
	"time"
)

// csvColumns is the fixed export header order expected by downstream
// spreadsheets; do not reorder.
var csvColumns = []string{
	"ID", "Type", "WLL", "Manufacturer", "Size", "Last Test Date",
	"Next Quarterly", "Next Annual", "Status", "Rugby Tag",
	"Test Authority", "Notes",
}

// quote wraps every field in double quotes unconditionally, doubling any
// embedded quotes. encoding/csv only quotes when it must, and the export
// contract wants every field quoted.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportCSV renders the register with the human type label in the Type
// column.
func ExportCSV(list []Entry, now time.Time) string {
	var b strings.Builder
	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(f))
		}
		b.WriteByte('\n')
	}

	writeRow(csvColumns)
	for _, e := range list {
		writeRow([]string{
			e.ID,
			TypeLabel(e.Type),
			fmt.Sprintf("%g", e.WLLTonnes),
			e.Manufacturer,
			e.Size,
			e.LastTestDate,
			e.NextQuarterlyDate,
			e.NextAnnualDate,
			Status(e, now).Label,
			e.RugbyTag,
			e.TestAuthority,
			e.Notes,
		})
	}
	return b.String()
}
