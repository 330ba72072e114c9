// Package statement locates the Revenue figure in the profit-or-loss table
// of one analyzed document.
package statement

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/quantfold/statext/internal/layout"
	"github.com/quantfold/statext/internal/table"
)

// TargetPhrase anchors the page search to the statement of interest.
const TargetPhrase = "STATEMENT OF PROFIT OR LOSS"

// DefaultLabel is the row label resolved when none is configured.
const DefaultLabel = "Revenue"

// Stage-specific failure reasons, printed verbatim by the CLI so a caller
// can tell which stage came up empty.
var (
	ErrNoBlocks      = layout.ErrNoBlocks
	ErrPageNotFound  = errors.New("Could not find page containing 'STATEMENT OF PROFIT OR LOSS'")
	ErrNoTables      = errors.New("No tables found on target page")
	ErrValueNotFound = errors.New("Revenue not found in tables on target page")
)

// IsResolutionMiss reports whether err is a normal negative result rather
// than an input or service failure. Misses map to exit code 2.
func IsResolutionMiss(err error) bool {
	return errors.Is(err, ErrNoBlocks) ||
		errors.Is(err, ErrPageNotFound) ||
		errors.Is(err, ErrNoTables) ||
		errors.Is(err, ErrValueNotFound)
}

// Extractor runs the single-pass resolution over one element collection.
type Extractor struct {
	// Label overrides the row label matched in the first column. Empty means
	// DefaultLabel. The exhausted reason keeps its fixed wording either way.
	Label string
}

// Result carries the resolved value and where it came from.
type Result struct {
	Value string
	Page  int
	Rows  int
	Cols  int
}

// Diagnostic renders the context line printed alongside the value.
func (r Result) Diagnostic() string {
	return fmt.Sprintf("page=%d, table_extracted_rows=%d cols=%d", r.Page, r.Rows, r.Cols)
}

// Extract scans pages in ascending order for the anchor phrase, then tries
// each table on the matching page in its natural order until one yields a
// value. Tables are never retried or revisited; the first hit wins.
func (e *Extractor) Extract(els []layout.Element, targetYear string) (Result, error) {
	ix, err := layout.NewIndex(els)
	if err != nil {
		return Result{}, err
	}
	label := e.Label
	if label == "" {
		label = DefaultLabel
	}

	targetPage := 0
	for _, page := range layout.Pages(els) {
		if layout.PageContains(els, ix, page, TargetPhrase) {
			targetPage = page
			break
		}
	}
	if targetPage == 0 {
		return Result{}, ErrPageNotFound
	}
	log.Debug().Int("page", targetPage).Msg("anchor phrase located")

	tables := layout.TablesOnPage(els, targetPage)
	if len(tables) == 0 {
		return Result{}, ErrNoTables
	}

	for i, tbl := range tables {
		m := table.Build(tbl, ix)
		if m.Rows() == 0 || m.Cols() == 0 {
			log.Debug().Int("table", i).Msg("no usable cells, skipping table")
			continue
		}
		lk, ok := m.Resolve(label, targetYear)
		if !ok {
			log.Debug().Int("table", i).Int("rows", m.Rows()).Int("cols", m.Cols()).
				Msg("label or column not resolved, trying next table")
			continue
		}
		return Result{Value: lk.Value, Page: targetPage, Rows: m.Rows(), Cols: m.Cols()}, nil
	}
	return Result{}, ErrValueNotFound
}
