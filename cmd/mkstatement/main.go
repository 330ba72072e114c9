package main

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// mkstatement writes a small synthetic profit-or-loss statement PDF for
// exercising the extractor against the live analysis service.
func main() {
	out := "statement.pdf"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "STATEMENT OF PROFIT OR LOSS", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	header := []string{"", "2023", "2024"}
	rows := [][]string{
		{"Revenue", "100,000", "120,000"},
		{"Cost of sales", "(40,000)", "(52,000)"},
		{"Gross profit", "60,000", "68,000"},
	}
	widths := []float64{70, 45, 45}

	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range header {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		for i, c := range row {
			align := "L"
			if i > 0 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 8, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(out); err != nil {
		fmt.Fprintln(os.Stderr, "write pdf:", err)
		os.Exit(1)
	}
	fmt.Println("wrote", out)
}
