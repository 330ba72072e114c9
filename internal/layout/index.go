package layout

import "errors"

// ErrNoBlocks indicates the analysis call produced an empty element
// collection. The CLI prints this reason verbatim.
var ErrNoBlocks = errors.New("No blocks returned")

// Index provides random-access lookup over one element collection. It is
// built once per analysis result and discarded with the run.
type Index struct {
	byID     map[string]Element
	children map[string][]string
}

// NewIndex builds the id-to-element map and per-element child lists. Targets
// of both CHILD and MERGED_CELL relationships land in the same child list;
// callers that need the distinction walk Relationships directly.
func NewIndex(els []Element) (*Index, error) {
	if len(els) == 0 {
		return nil, ErrNoBlocks
	}
	ix := &Index{
		byID:     make(map[string]Element, len(els)),
		children: make(map[string][]string),
	}
	for _, el := range els {
		ix.byID[el.ID] = el
		var ids []string
		for _, rel := range el.Relationships {
			if rel.Type == RelChild || rel.Type == RelMergedCell {
				ids = append(ids, rel.IDs...)
			}
		}
		if len(ids) > 0 {
			ix.children[el.ID] = ids
		}
	}
	return ix, nil
}

// Lookup returns the element with the given identifier.
func (ix *Index) Lookup(id string) (Element, bool) {
	el, ok := ix.byID[id]
	return el, ok
}

// ChildIDs returns the ordered child identifiers recorded for id, or nil.
func (ix *Index) ChildIDs(id string) []string {
	return ix.children[id]
}
