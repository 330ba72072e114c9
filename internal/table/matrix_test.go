package table

import (
	"testing"

	"github.com/quantfold/statext/internal/layout"
)

// cell builds a CELL element with a single WORD child carrying text.
func cell(id string, row, col int, text string) []layout.Element {
	c := layout.Element{ID: id, Kind: layout.KindCell, RowIndex: row, ColumnIndex: col}
	if text == "" {
		return []layout.Element{c}
	}
	wordID := id + "-w"
	c.Relationships = []layout.Relationship{{Type: layout.RelChild, IDs: []string{wordID}}}
	return []layout.Element{c, {ID: wordID, Kind: layout.KindWord, Text: text}}
}

func tableOf(cellIDs ...string) layout.Element {
	return layout.Element{ID: "tbl", Kind: layout.KindTable, Relationships: []layout.Relationship{
		{Type: layout.RelChild, IDs: cellIDs},
	}}
}

func TestBuild_Shape(t *testing.T) {
	els := []layout.Element{tableOf("c11", "c12", "c21", "c23")}
	els = append(els, cell("c11", 1, 1, "Label")...)
	els = append(els, cell("c12", 1, 2, "2024")...)
	els = append(els, cell("c21", 2, 1, "Revenue")...)
	els = append(els, cell("c23", 2, 3, "120")...)
	ix, err := layout.NewIndex(els)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	m := Build(els[0], ix)
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape: %dx%d", m.Rows(), m.Cols())
	}
	// Uncovered positions hold the empty string, never a missing entry
	if m[0][2] != "" || m[1][1] != "" {
		t.Fatalf("expected empty fill, got %v", m)
	}
	if m[1][2] != "120" {
		t.Fatalf("got %q", m[1][2])
	}
}

func TestBuild_EmptyTable(t *testing.T) {
	els := []layout.Element{{ID: "tbl", Kind: layout.KindTable}}
	ix, err := layout.NewIndex(els)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	m := Build(els[0], ix)
	if m.Rows() != 0 || m.Cols() != 0 {
		t.Fatalf("expected empty matrix, got %dx%d", m.Rows(), m.Cols())
	}
}

func TestBuild_SkipsMalformedIndices(t *testing.T) {
	els := []layout.Element{tableOf("good", "bad")}
	els = append(els, cell("good", 1, 2, "ok")...)
	els = append(els, cell("bad", 0, 1, "dropped")...) // zero row index
	ix, err := layout.NewIndex(els)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	m := Build(els[0], ix)
	if m.Rows() != 1 || m.Cols() != 2 {
		t.Fatalf("shape: %dx%d", m.Rows(), m.Cols())
	}
	if m[0][0] != "" || m[0][1] != "ok" {
		t.Fatalf("got %v", m)
	}
}

func TestBuild_IgnoresNonCellChildren(t *testing.T) {
	els := []layout.Element{tableOf("c11", "l1")}
	els = append(els, cell("c11", 1, 1, "only")...)
	els = append(els, layout.Element{ID: "l1", Kind: layout.KindLine, RowIndex: 9, ColumnIndex: 9})
	ix, err := layout.NewIndex(els)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	m := Build(els[0], ix)
	if m.Rows() != 1 || m.Cols() != 1 {
		t.Fatalf("shape: %dx%d", m.Rows(), m.Cols())
	}
}

func TestBuild_MergedCellTopLeftOnly(t *testing.T) {
	// The merged region's secondary position carries no cell of its own; it
	// stays empty rather than replicating the text.
	els := []layout.Element{tableOf("c11", "c21", "c22")}
	els = append(els, cell("c11", 1, 1, "Total equity")...)
	els = append(els, cell("c21", 2, 1, "Revenue")...)
	els = append(els, cell("c22", 2, 2, "120")...)
	ix, err := layout.NewIndex(els)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	m := Build(els[0], ix)
	if m[0][1] != "" {
		t.Fatalf("expected empty secondary position, got %q", m[0][1])
	}
}
