// Package analyze is the boundary to the optical document analysis service.
package analyze

import (
	"context"

	"github.com/quantfold/statext/internal/layout"
)

// Analyzer is the minimal interface core logic needs from the analysis
// service: one blocking call that turns document bytes into the flat element
// collection. Implementations may call the remote service or replay a saved
// response from disk.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, doc []byte) ([]layout.Element, error)
}
