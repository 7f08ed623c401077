package dataset

import (
	"path/filepath"
	"testing"
)

func TestXLSXRoundTrip(t *testing.T) {
	src := New(
		[]string{"PRODUCT_FEATURE", "TEST_TYPE", "DCR_Freq_[Hz]"},
		[][]string{
			{"Radio", "DC Ripple", "50"},
			{"Antenna", "AC VDI", ""},
		},
	)
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	if err := WriteXLSXFile(src, path, "Requirements"); err != nil {
		t.Fatalf("WriteXLSXFile: %v", err)
	}
	got, err := ReadXLSXFile(path, "Requirements")
	if err != nil {
		t.Fatalf("ReadXLSXFile: %v", err)
	}
	// The exported sheet carries a leading "No." column.
	if got.Columns[0] != "No." || got.Columns[1] != "PRODUCT_FEATURE" {
		t.Fatalf("columns = %#v", got.Columns)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(got.Rows))
	}
	if got.Cell(0, "PRODUCT_FEATURE") != "Radio" || got.Cell(1, "TEST_TYPE") != "AC VDI" {
		t.Fatalf("cells = %#v", got.Rows)
	}
}

func TestReadXLSXFileDefaultSheet(t *testing.T) {
	src := New([]string{"A"}, [][]string{{"1"}})
	path := filepath.Join(t.TempDir(), "single.xlsx")
	if err := WriteXLSXFile(src, path, ""); err != nil {
		t.Fatalf("WriteXLSXFile: %v", err)
	}
	got, err := ReadXLSXFile(path, "")
	if err != nil {
		t.Fatalf("ReadXLSXFile: %v", err)
	}
	if got.Cell(0, "A") != "1" {
		t.Fatalf("cell = %q, want 1", got.Cell(0, "A"))
	}
}
