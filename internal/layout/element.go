// Package layout models the flat element graph returned by document
// analysis and rebuilds text and structure from it.
package layout

// Kind identifies what a detected layout element represents. The analysis
// service may emit kinds beyond the ones named here; they are carried
// through verbatim and ignored by the reconstruction code.
type Kind string

const (
	KindPage             Kind = "PAGE"
	KindTable            Kind = "TABLE"
	KindCell             Kind = "CELL"
	KindLine             Kind = "LINE"
	KindWord             Kind = "WORD"
	KindSelectionElement Kind = "SELECTION_ELEMENT"
)

// RelationshipType classifies a typed link between elements.
type RelationshipType string

const (
	// RelChild expresses structural containment.
	RelChild RelationshipType = "CHILD"
	// RelMergedCell groups cells folded into a merged region.
	RelMergedCell RelationshipType = "MERGED_CELL"
)

// Relationship is a directed link from one element to others by identifier.
type Relationship struct {
	Type RelationshipType `json:"type"`
	IDs  []string         `json:"ids"`
}

// Element is one detected layout unit. Which fields are meaningful depends
// on Kind: Text is set only on WORD elements, RowIndex and ColumnIndex
// (1-based) only on CELL elements, and Page is absent (zero) on elements the
// service did not place on a page. Elements are produced once by the
// analysis call and never mutated here.
type Element struct {
	ID            string         `json:"id"`
	Kind          Kind           `json:"kind"`
	Page          int            `json:"page,omitempty"`
	Text          string         `json:"text,omitempty"`
	RowIndex      int            `json:"rowIndex,omitempty"`
	ColumnIndex   int            `json:"columnIndex,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty"`
}
