package layout

import (
	"sort"
	"strings"
)

// PageContains reports whether any LINE, CELL, or TABLE element on the given
// page reconstructs to text containing phrase, case-insensitively. Elements
// are visited in collection order, so the first match is deterministic
// across runs.
func PageContains(els []Element, ix *Index, page int, phrase string) bool {
	needle := strings.ToLower(phrase)
	for _, el := range els {
		if el.Page != page {
			continue
		}
		switch el.Kind {
		case KindLine, KindCell, KindTable:
			if strings.Contains(strings.ToLower(ix.Text(el)), needle) {
				return true
			}
		}
	}
	return false
}

// Pages returns the distinct page numbers present in els, ascending.
// Elements without a page number are skipped.
func Pages(els []Element) []int {
	seen := make(map[int]bool)
	var pages []int
	for _, el := range els {
		if el.Page > 0 && !seen[el.Page] {
			seen[el.Page] = true
			pages = append(pages, el.Page)
		}
	}
	sort.Ints(pages)
	return pages
}

// TablesOnPage returns the TABLE elements on page in collection order.
func TablesOnPage(els []Element, page int) []Element {
	var tables []Element
	for _, el := range els {
		if el.Kind == KindTable && el.Page == page {
			tables = append(tables, el)
		}
	}
	return tables
}
