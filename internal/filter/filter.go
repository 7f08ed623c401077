// Package filter narrows a dataset by independent categorical dimensions.
// Constraints on different columns combine with logical AND; accepted values
// within one column combine with logical OR. Applying the dimensions in any
// order, or all at once, yields the same result set.
package filter

import (
	"github.com/voltlabs/emcplan-cli/internal/dataset"
)

// Dimensions are the categorical columns a caller may constrain.
var Dimensions = []string{
	dataset.ColProductFeature,
	dataset.ColEntity,
	dataset.ColPortType,
	dataset.ColVoltageType,
	dataset.ColVoltages,
}

// Selection maps a column name to its accepted values. A missing or empty
// entry imposes no constraint on that column.
type Selection map[string][]string

// IsEmpty reports whether the selection constrains nothing.
func (s Selection) IsEmpty() bool {
	return !s.hasConstraint()
}

func (s Selection) hasConstraint() bool {
	for _, vals := range s {
		if len(vals) > 0 {
			return true
		}
	}
	return false
}

// Apply returns a new table holding the rows whose value in every constrained
// column belongs to that column's accepted set. The source table is never
// mutated. A constraint on a column the table does not have matches no rows.
func Apply(t *dataset.Table, sel Selection) *dataset.Table {
	if !sel.hasConstraint() {
		return &dataset.Table{Columns: t.Columns, Rows: t.Rows}
	}

	type constraint struct {
		idx      int
		accepted map[string]bool
	}
	var constraints []constraint
	for col, vals := range sel {
		if len(vals) == 0 {
			continue
		}
		accepted := make(map[string]bool, len(vals))
		for _, v := range vals {
			accepted[v] = true
		}
		constraints = append(constraints, constraint{idx: t.ColumnIndex(col), accepted: accepted})
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		match := true
		for _, c := range constraints {
			if c.idx < 0 || !c.accepted[row[c.idx]] {
				match = false
				break
			}
		}
		if match {
			rows = append(rows, row)
		}
	}
	return &dataset.Table{Columns: t.Columns, Rows: rows}
}

// Values returns the sorted distinct non-missing values a caller can offer for
// one dimension. Choices are drawn from the table as given; the CLI passes the
// full unfiltered dataset here.
func Values(t *dataset.Table, column string) []string {
	return t.DistinctValues(column)
}
