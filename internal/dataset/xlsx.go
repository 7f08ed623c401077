package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSXFile decodes a worksheet into a Table. If sheet is empty the first
// sheet in the workbook is used. A sheet without a header row yields an empty
// Table.
func ReadXLSXFile(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Empty(), nil
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Empty(), nil
	}
	return New(rows[0], rows[1:]), nil
}

// WriteXLSXFile exports a table to a single-sheet workbook, mirroring the
// on-screen layout with a 1-based "No." column.
func WriteXLSXFile(t *Table, path, sheet string) error {
	if sheet == "" {
		sheet = "Test Plan"
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := append([]string{"No."}, t.Columns...)
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for r, row := range t.Rows {
		cells := make([]interface{}, 0, len(row)+1)
		cells = append(cells, r+1)
		for _, v := range row {
			cells = append(cells, v)
		}
		addr, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("cell address: %w", err)
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
