package filter

import (
	"testing"

	"github.com/voltlabs/emcplan-cli/internal/dataset"
)

func requirementsTable() *dataset.Table {
	return dataset.New(
		[]string{"PRODUCT_FEATURE", "ENTITY", "PORT_TYPE", "VOLTAGE_TYPE", "VOLTAGES"},
		[][]string{
			{"Radio", "Unit A", "Power", "DC", "12V"},
			{"Radio", "Unit B", "Signal", "AC", "230V"},
			{"Antenna", "Unit A", "Power", "DC", "24V"},
			{"Antenna", "Unit B", "Power", "AC", "230V"},
			{"Display", "Unit C", "Signal", "DC", "12V"},
		},
	)
}

func rowKeys(t *dataset.Table) []string {
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Cell(i, "PRODUCT_FEATURE") + "/" + t.Cell(i, "ENTITY")
	}
	return out
}

func TestApplyEmptySelectionIsIdentity(t *testing.T) {
	src := requirementsTable()
	for _, sel := range []Selection{nil, {}, {"PRODUCT_FEATURE": nil}, {"PRODUCT_FEATURE": {}}} {
		got := Apply(src, sel)
		if len(got.Rows) != len(src.Rows) {
			t.Fatalf("selection %#v dropped rows: %d of %d", sel, len(got.Rows), len(src.Rows))
		}
	}
}

func TestApplyANDsColumnsORsValues(t *testing.T) {
	got := Apply(requirementsTable(), Selection{
		"PRODUCT_FEATURE": {"Radio", "Antenna"},
		"PORT_TYPE":       {"Power"},
	})
	want := []string{"Radio/Unit A", "Antenna/Unit A", "Antenna/Unit B"}
	keys := rowKeys(got)
	if len(keys) != len(want) {
		t.Fatalf("rows = %#v, want %#v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("row %d = %q, want %q (order must follow the source)", i, keys[i], want[i])
		}
	}
}

func TestApplyIsOrderIndependent(t *testing.T) {
	src := requirementsTable()
	sel := Selection{
		"PRODUCT_FEATURE": {"Radio", "Antenna"},
		"VOLTAGE_TYPE":    {"AC"},
		"VOLTAGES":        {"230V"},
	}
	allAtOnce := rowKeys(Apply(src, sel))

	perms := [][]string{
		{"PRODUCT_FEATURE", "VOLTAGE_TYPE", "VOLTAGES"},
		{"VOLTAGES", "PRODUCT_FEATURE", "VOLTAGE_TYPE"},
		{"VOLTAGE_TYPE", "VOLTAGES", "PRODUCT_FEATURE"},
	}
	for _, perm := range perms {
		step := src
		for _, col := range perm {
			step = Apply(step, Selection{col: sel[col]})
		}
		got := rowKeys(step)
		if len(got) != len(allAtOnce) {
			t.Fatalf("perm %v: rows = %#v, want %#v", perm, got, allAtOnce)
		}
		for i := range got {
			if got[i] != allAtOnce[i] {
				t.Fatalf("perm %v: row %d = %q, want %q", perm, i, got[i], allAtOnce[i])
			}
		}
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	src := requirementsTable()
	before := len(src.Rows)
	_ = Apply(src, Selection{"PRODUCT_FEATURE": {"Radio"}})
	if len(src.Rows) != before {
		t.Fatalf("source mutated: %d rows, want %d", len(src.Rows), before)
	}
}

func TestApplyAbsentColumnMatchesNothing(t *testing.T) {
	got := Apply(requirementsTable(), Selection{"NO_SUCH_COLUMN": {"x"}})
	if len(got.Rows) != 0 {
		t.Fatalf("constraint on absent column matched %d rows", len(got.Rows))
	}
}

func TestApplyEmptyTable(t *testing.T) {
	got := Apply(dataset.Empty(), Selection{"PRODUCT_FEATURE": {"Radio"}})
	if !got.IsEmpty() {
		t.Fatalf("empty table filter = %#v", got)
	}
}

func TestValuesComeFromGivenTable(t *testing.T) {
	vals := Values(requirementsTable(), "VOLTAGES")
	want := []string{"12V", "230V", "24V"}
	if len(vals) != len(want) {
		t.Fatalf("values = %#v, want %#v", vals, want)
	}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("values[%d] = %q, want %q", i, vals[i], want[i])
		}
	}
}
