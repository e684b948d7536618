package export

import (
	"context"
	"fmt"
	"token-balance-reporter/core/model"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfRowHeight = 6.0
	pdfFontSize  = 6.0
)

// PDFWriter renders the table on landscape A4 pages, header repeated per page.
type PDFWriter struct {
	Path  string
	Title string
}

func (w *PDFWriter) Write(ctx context.Context, table *model.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeAtomic(w.Path, func(tmp string) error {
		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.SetMargins(10, 10, 10)
		pdf.SetAutoPageBreak(false, 10)

		pageW, pageH := pdf.GetPageSize()
		left, top, right, bottom := pdf.GetMargins()
		colW := (pageW - left - right) / float64(max(len(table.Headers), 1))

		title := w.Title
		if title == "" {
			title = "Token balances"
		}

		header := func() {
			pdf.SetFont("Helvetica", "B", pdfFontSize)
			for _, h := range table.Headers {
				pdf.CellFormat(colW, pdfRowHeight, h, "1", 0, "C", false, 0, "")
			}
			pdf.Ln(pdfRowHeight)
			pdf.SetFont("Helvetica", "", pdfFontSize)
		}

		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
		header()
		for _, row := range table.Rows {
			if pdf.GetY()+pdfRowHeight > pageH-bottom {
				pdf.AddPage()
				pdf.SetY(top)
				header()
			}
			for j := range table.Headers {
				var v string
				if j < len(row) {
					v = row[j]
				}
				pdf.CellFormat(colW, pdfRowHeight, v, "1", 0, "R", false, 0, "")
			}
			pdf.Ln(pdfRowHeight)
		}

		if err := pdf.Error(); err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		if err := pdf.OutputFileAndClose(tmp); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		return nil
	})
}
