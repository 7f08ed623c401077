package dataset

import (
	"strconv"
	"strings"
)

// NoMatchMessage is rendered in place of an empty table.
const NoMatchMessage = "No matching test cases found. Please modify your selections."

// Markdown renders the table for display, with one-based row numbering. Cell
// values are sanitized so embedded pipes and newlines cannot break the layout.
func (t *Table) Markdown() string {
	if t.IsEmpty() {
		return NoMatchMessage
	}
	var b strings.Builder
	b.WriteString("| No. |")
	for _, c := range t.Columns {
		b.WriteString(" ")
		b.WriteString(safeCell(c))
		b.WriteString(" |")
	}
	b.WriteString("\n| --- |")
	for range t.Columns {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for i, row := range t.Rows {
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(" |")
		for _, v := range row {
			b.WriteString(" ")
			b.WriteString(safeCell(v))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func safeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
