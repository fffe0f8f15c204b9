package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// DocumentRenderer writes reports as PDF documents.
type DocumentRenderer struct{}

func (DocumentRenderer) ContentType() string { return "application/pdf" }

func (DocumentRenderer) Extension() string { return "pdf" }

func (DocumentRenderer) Render(w io.Writer, t Table) error {
	orientation := "P"
	if len(t.Headers) > 5 {
		orientation = "L"
	}
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	// Core fonts are cp1252; translate accented labels
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	widths := columnWidths(t, usable)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range t.Headers {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(usable, 8, tr(t.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(usable, 6, tr(t.Subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(3)
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	writeRow := func(values []string, style string) {
		if pdf.GetY()+6 > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		pdf.SetFont("Helvetica", style, 8)
		for i := range t.Headers {
			v := ""
			if i < len(values) {
				v = values[i]
			}
			align := "L"
			if t.Numeric[i] {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	for _, r := range t.Rows {
		writeRow(r, "")
	}
	if len(t.Footer) > 0 {
		writeRow(t.Footer, "B")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

// columnWidths gives amount columns a fixed width and shares the rest evenly.
func columnWidths(t Table, usable float64) []float64 {
	const amountWidth = 28.0
	widths := make([]float64, len(t.Headers))
	textCols := 0
	remaining := usable
	for i := range t.Headers {
		if t.Numeric[i] {
			widths[i] = amountWidth
			remaining -= amountWidth
		} else {
			textCols++
		}
	}
	for i := range widths {
		if widths[i] == 0 && textCols > 0 {
			widths[i] = remaining / float64(textCols)
		}
	}
	return widths
}
