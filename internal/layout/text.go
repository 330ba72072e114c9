package layout

import "strings"

// Text reconstructs the human-readable text of el. A WORD returns its raw
// text verbatim. Composite elements walk their immediate CHILD relationships
// only (MERGED_CELL targets carry no text of their own) and join the
// non-empty WORD fragments with single spaces, trimming the result.
// SELECTION_ELEMENT children are recognized but contribute nothing: checkbox
// state is not part of textual content for this use case.
func (ix *Index) Text(el Element) string {
	if el.Kind == KindWord {
		return el.Text
	}
	var frags []string
	for _, rel := range el.Relationships {
		if rel.Type != RelChild {
			continue
		}
		for _, id := range rel.IDs {
			child, ok := ix.Lookup(id)
			if !ok {
				continue
			}
			if child.Kind == KindWord && child.Text != "" {
				frags = append(frags, child.Text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(frags, " "))
}
