package table

import "strings"

// headerRows bounds the region scanned for column headers.
const headerRows = 2

// ColumnByHeader returns the zero-based index of the first column, scanning
// the first two rows in row-then-column order, whose normalized text equals
// or contains the normalized query. Returns -1 when the query is empty or
// nothing matches.
func (m Matrix) ColumnByHeader(query string) int {
	target := Normalize(query)
	if target == "" {
		return -1
	}
	limit := len(m)
	if limit > headerRows {
		limit = headerRows
	}
	for r := 0; r < limit; r++ {
		for c, v := range m[r] {
			got := Normalize(v)
			if got == target || strings.Contains(got, target) {
				return c
			}
		}
	}
	return -1
}

// RowByLabel returns the zero-based index of the first row whose first
// column's normalized text equals or contains the normalized label, or -1.
func (m Matrix) RowByLabel(label string) int {
	target := Normalize(label)
	for r, row := range m {
		if len(row) == 0 {
			continue
		}
		got := Normalize(row[0])
		if got == target || strings.Contains(got, target) {
			return r
		}
	}
	return -1
}

// Lookup describes one resolved cell.
type Lookup struct {
	Value string
	Row   int
	Col   int
}

// Resolve locates the cell for label under the column matching year. When no
// year is supplied or no header matches, the second column stands in: the
// first data column after a label column is assumed to be the most recent
// period. The lookup fails when either resolution comes up empty, when the
// fallback needs more columns than exist, or when the resolved cell holds
// only whitespace.
func (m Matrix) Resolve(label, year string) (Lookup, bool) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return Lookup{}, false
	}
	col := -1
	if strings.TrimSpace(year) != "" {
		col = m.ColumnByHeader(year)
	}
	if col < 0 && m.Cols() >= 2 {
		col = 1
	}
	row := m.RowByLabel(label)
	if row < 0 || col < 0 || col >= len(m[row]) {
		return Lookup{}, false
	}
	value := strings.TrimSpace(m[row][col])
	if value == "" {
		return Lookup{}, false
	}
	return Lookup{Value: value, Row: row, Col: col}, true
}
