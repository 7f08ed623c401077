package dataset

import (
	"sort"
	"strings"
)

// Well-known column names of the EMC requirements database. The loader accepts
// any column set; these are the ones the filter and summary layers care about.
const (
	ColProductFeature = "PRODUCT_FEATURE"
	ColEntity         = "ENTITY"
	ColPortType       = "PORT_TYPE"
	ColVoltageType    = "VOLTAGE_TYPE"
	ColVoltages       = "VOLTAGES"
	ColTestType       = "TEST_TYPE"

	ColDCRFreq     = "DCR_Freq_[Hz]"
	ColDCRLevel    = "DCR_Level_[%]"
	ColDCRCriteria = "DCR_Criteria"

	ColACVApply     = "ACV_Apply"
	ColACVFreq      = "ACV_Freq_[Hz]"
	ColACVCross     = "ACV_Cross_[deg]"
	ColACVRed       = "ACV_Red_[%]"
	ColACVDurCycles = "ACV_Dur_[Cycles]"
	ColACVDurMs     = "ACV_Dur_[ms]"
	ColACVCriteria  = "ACV_Criteria"
)

// Test type values recognized by the summary generators.
const (
	TestTypeDCRipple = "DC Ripple"
	TestTypeACVDI    = "AC VDI"
)

// Table is an ordered, read-only view of tabular data. An empty cell ("")
// means the value is missing. Rows always have len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New builds a Table from a header and raw rows, trimming cells and padding
// or truncating ragged rows to the header width.
func New(columns []string, rows [][]string) *Table {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = strings.TrimSpace(c)
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := make([]string, len(cols))
		for i := range cols {
			if i < len(r) {
				row[i] = strings.TrimSpace(r[i])
			}
		}
		out = append(out, row)
	}
	return &Table{Columns: cols, Rows: out}
}

// Empty returns a table with no columns and no rows, the degraded result of a
// failed fetch. All downstream operations accept it.
func Empty() *Table {
	return &Table{}
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, column name), or "" when the column does not
// exist. A missing column is business-as-usual missing data, not an error.
func (t *Table) Cell(row int, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// Prune returns a new table containing only columns that hold at least one
// non-missing value. Row order and row count are preserved; pruning a pruned
// table changes nothing.
func (t *Table) Prune() *Table {
	keep := make([]int, 0, len(t.Columns))
	for i := range t.Columns {
		for _, row := range t.Rows {
			if row[i] != "" {
				keep = append(keep, i)
				break
			}
		}
	}
	cols := make([]string, len(keep))
	for i, idx := range keep {
		cols[i] = t.Columns[idx]
	}
	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		nr := make([]string, len(keep))
		for i, idx := range keep {
			nr[i] = row[idx]
		}
		rows[r] = nr
	}
	return &Table{Columns: cols, Rows: rows}
}

// DistinctValues returns the sorted distinct non-missing values of a column.
// An absent column yields nil.
func (t *Table) DistinctValues(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		if v := row[idx]; v != "" {
			seen[v] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
