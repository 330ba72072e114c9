// Package table rebuilds dense cell grids from detected table elements and
// resolves target cells by header and row-label heuristics.
package table

import "github.com/quantfold/statext/internal/layout"

// Matrix is the reconstructed 2D grid of cell text for one detected table.
// Every position not covered by an explicit cell holds the empty string.
type Matrix [][]string

// Rows returns the number of rows in the matrix.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns in the matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Build converts a TABLE element's direct CELL children into a dense grid
// sized by the maximum 1-based row and column indices observed. Merged cells
// surface only at their top-left position; the covered positions stay empty.
// Cells with out-of-range indices are skipped rather than failing the table,
// since upstream detection artifacts are occasionally imperfect. A table
// with no cells yields an empty matrix.
func Build(tbl layout.Element, ix *layout.Index) Matrix {
	var cells []layout.Element
	for _, rel := range tbl.Relationships {
		if rel.Type != layout.RelChild {
			continue
		}
		for _, id := range rel.IDs {
			if child, ok := ix.Lookup(id); ok && child.Kind == layout.KindCell {
				cells = append(cells, child)
			}
		}
	}

	maxRow, maxCol := 0, 0
	for _, c := range cells {
		if c.RowIndex > maxRow {
			maxRow = c.RowIndex
		}
		if c.ColumnIndex > maxCol {
			maxCol = c.ColumnIndex
		}
	}

	m := make(Matrix, maxRow)
	for i := range m {
		m[i] = make([]string, maxCol)
	}
	for _, c := range cells {
		r, col := c.RowIndex-1, c.ColumnIndex-1
		if r < 0 || col < 0 || r >= maxRow || col >= maxCol {
			continue
		}
		if text := ix.Text(c); text != "" {
			m[r][col] = text
		}
	}
	return m
}
