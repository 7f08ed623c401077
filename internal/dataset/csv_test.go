package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSVSniffsDelimiter(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"comma", "A,B\n1,2\n"},
		{"semicolon", "A;B\n1;2\n"},
		{"tab", "A\tB\n1\t2\n"},
	}
	for _, tc := range cases {
		tbl, err := ReadCSV(strings.NewReader(tc.data), 0)
		if err != nil {
			t.Fatalf("%s: ReadCSV: %v", tc.name, err)
		}
		if len(tbl.Columns) != 2 || tbl.Columns[1] != "B" {
			t.Fatalf("%s: columns = %#v", tc.name, tbl.Columns)
		}
		if len(tbl.Rows) != 1 || tbl.Rows[0][1] != "2" {
			t.Fatalf("%s: rows = %#v", tc.name, tbl.Rows)
		}
	}
}

func TestReadCSVPadsRaggedRows(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("A,B,C\n1,2\n1,2,3\n"), 0)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(tbl.Rows[0]) != 3 || tbl.Rows[0][2] != "" {
		t.Fatalf("ragged row not padded: %#v", tbl.Rows[0])
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""), 0)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if !tbl.IsEmpty() || len(tbl.Columns) != 0 {
		t.Fatalf("empty input table = %#v", tbl)
	}
}

func TestReadCSVFileTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	if err := os.WriteFile(path, []byte("A\tB\nx\ty\n"), 0o644); err != nil {
		t.Fatalf("write tsv: %v", err)
	}
	tbl, err := ReadCSVFile(path, 0)
	if err != nil {
		t.Fatalf("ReadCSVFile: %v", err)
	}
	if tbl.Cell(0, "B") != "y" {
		t.Fatalf("tsv cell = %q, want y", tbl.Cell(0, "B"))
	}
}

func TestReadCSVBytesMatchesReader(t *testing.T) {
	data := []byte("TEST_TYPE,DCR_Freq_[Hz]\nDC Ripple,50\n")
	tbl, err := ReadCSVBytes(data, 0)
	if err != nil {
		t.Fatalf("ReadCSVBytes: %v", err)
	}
	if tbl.Cell(0, ColDCRFreq) != "50" {
		t.Fatalf("cell = %q, want 50", tbl.Cell(0, ColDCRFreq))
	}
}
