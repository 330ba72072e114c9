package table

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds s into the form used for header and label comparison:
// NFKC first, so non-breaking spaces and ligatures from scanned statements
// compare equal to their plain ASCII forms, then trimmed and lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
