// Package sheetimport turns raw spreadsheet grids into typed hockey records.
//
// A grid's first row holds the headers. Headers are matched against fixed
// synonym tables so sheets written in English or French, in any column
// order, resolve to the same logical fields.
package sheetimport

import "strings"

// Grid is one fetched range: header row first, then data rows. Rows may be ragged.
type Grid [][]string

func (g Grid) Header() []string {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

func (g Grid) DataRows() [][]string {
	if len(g) < 2 {
		return nil
	}
	return g[1:]
}

// HasData reports whether the grid carries at least one row below the header.
func (g Grid) HasData() bool {
	return len(g) >= 2
}

// cell returns the trimmed value at idx, or "" when the column is unmapped or the row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
