package report

import (
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin   = 15.0 // mm
	pdfFont     = "Helvetica"
	pdfRowH     = 5.0
	pdfWideCols = 8 // tables wider than this switch the page to landscape
)

// WritePDF lays tables out one after another on A4 pages under title.
// Cells share the usable width evenly; text is translated to the core
// fonts' cp1252 encoding.
func WritePDF(w io.Writer, title string, tables ...Table) error {
	if len(tables) == 0 {
		return ErrNoTables
	}
	orientation := "P"
	for _, t := range tables {
		if len(t.Header) > pdfWideCols {
			orientation = "L"
		}
	}

	pdf := fpdf.New(orientation, "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetCreator("surveyor", true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pageW, _ := pdf.GetPageSize()
	usable := pageW - 2*pdfMargin

	for _, t := range tables {
		pdf.Ln(3)
		if t.Title != "" {
			pdf.SetFont(pdfFont, "B", 11)
			pdf.CellFormat(0, 6, tr(t.Title), "", 1, "L", false, 0, "")
		}
		pdf.SetFont(pdfFont, "", 9)
		for _, n := range t.Notes {
			pdf.CellFormat(0, pdfRowH, tr(n), "", 1, "L", false, 0, "")
		}
		if len(t.Header) == 0 {
			continue
		}

		cw := usable / float64(len(t.Header))
		pdf.SetFont(pdfFont, "B", 8)
		pdf.SetFillColor(220, 220, 220)
		for _, h := range t.Header {
			pdf.CellFormat(cw, pdfRowH+1, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(pdfFont, "", 8)
		for _, row := range t.Rows {
			for i := range t.Header {
				var cell string
				if i < len(row) {
					cell = row[i]
				}
				pdf.CellFormat(cw, pdfRowH, tr(cell), "1", 0, "R", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	return pdf.Output(w)
}
