package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quantfold/statext/internal/analyze"
	"github.com/quantfold/statext/internal/layout"
	"github.com/quantfold/statext/internal/table"
)

// debugblocks dumps the pages, tables, and reconstructed matrices of a saved
// AnalyzeDocument JSON response.
func main() {
	path := os.Getenv("BLOCKS_FILE")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: debugblocks blocks.json")
		os.Exit(1)
	}
	prov := &analyze.FileProvider{Path: path}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	els, err := prov.AnalyzeDocument(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "err:", err)
		os.Exit(1)
	}
	ix, err := layout.NewIndex(els)
	if err != nil {
		fmt.Fprintln(os.Stderr, "err:", err)
		os.Exit(1)
	}
	for _, page := range layout.Pages(els) {
		fmt.Printf("page %d:\n", page)
		for i, tbl := range layout.TablesOnPage(els, page) {
			m := table.Build(tbl, ix)
			fmt.Printf("  table %d: %dx%d\n", i+1, m.Rows(), m.Cols())
			for _, row := range m {
				fmt.Printf("    %q\n", row)
			}
		}
	}
}
