// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabload reads tables from CSV and Excel files.
//
// The first row of the input names the columns. A column whose
// non-empty cells all parse as numbers becomes a []float64 column,
// with empty cells read as NaN. Any other column becomes a []string
// column.
package tabload

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/xuri/excelize/v2"
)

// File reads the table in path. Files ending in .xlsx or .xlsm are
// read as Excel workbooks from the named sheet, or the first sheet
// if sheet is "". Anything else is read as CSV. The path "-" reads
// CSV from standard input.
func File(path, sheet string) (*table.Table, error) {
	if path == "-" {
		return CSV(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *table.Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		t, err = XLSX(f, sheet)
	default:
		t, err = CSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// CSV reads a table from CSV data.
func CSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRecords(records)
}

// XLSX reads a table from a sheet of an Excel workbook. If sheet is
// "", it reads the first sheet.
func XLSX(r io.Reader, sheet string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return fromRecords(rows)
}

func fromRecords(records [][]string) (*table.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := records[0], records[1:]

	seen := make(map[string]bool)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("column %d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}

	tab := new(table.Builder)
	for j, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				cells[i] = strings.TrimSpace(row[j])
			}
		}
		if xs, ok := parseFloats(cells); ok {
			tab.Add(strings.TrimSpace(name), xs)
		} else {
			tab.Add(strings.TrimSpace(name), cells)
		}
	}
	return tab.Done(), nil
}

// parseFloats parses every cell as a number. It fails if any
// non-empty cell is not a number or if all cells are empty. Cells
// such as "inf" and "NaN" parse as their float64 values; it is up to
// the consumer whether to accept them.
func parseFloats(cells []string) ([]float64, bool) {
	xs := make([]float64, len(cells))
	found := false
	for i, c := range cells {
		if c == "" {
			xs[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		xs[i] = x
		found = true
	}
	return xs, found
}
