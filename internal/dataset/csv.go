package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV decodes CSV data into a Table. If delim is 0 the delimiter is
// sniffed from the header line among ',', ';' and '\t'. Ragged rows are padded
// to the header width; an input without a header yields an empty Table.
func ReadCSV(r io.Reader, delim rune) (*Table, error) {
	br, delim, err := sniffDelimiter(r, delim)
	if err != nil {
		return nil, fmt.Errorf("sniff delimiter: %w", err)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Empty(), nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}
	return New(header, rows), nil
}

// ReadCSVBytes decodes an in-memory CSV payload, e.g. a cached fetch.
func ReadCSVBytes(data []byte, delim rune) (*Table, error) {
	return ReadCSV(bytes.NewReader(data), delim)
}

// ReadCSVFile decodes a CSV or TSV file from disk.
func ReadCSVFile(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	if delim == 0 && strings.HasSuffix(strings.ToLower(path), ".tsv") {
		delim = '\t'
	}
	return ReadCSV(f, delim)
}

// sniffDelimiter peeks at the first line and picks the candidate delimiter
// that occurs most often, returning a reader that replays the consumed bytes.
func sniffDelimiter(r io.Reader, delim rune) (io.Reader, rune, error) {
	if delim != 0 {
		return r, delim, nil
	}
	head := make([]byte, 4096)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, 0, err
	}
	head = head[:n]
	line := string(head)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best := ','
	bestCount := strings.Count(line, ",")
	for _, cand := range []rune{';', '\t'} {
		if c := strings.Count(line, string(cand)); c > bestCount {
			best = cand
			bestCount = c
		}
	}
	return io.MultiReader(bytes.NewReader(head), r), best, nil
}
