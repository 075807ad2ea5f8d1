package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/lookbook"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(lb lookbook.Lookbook) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Aurora Lookbook", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Aurora Lookbook")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Ref %s — %s", lb.Reference, lb.CreatedAt.Format("Jan 2, 2006")))
	pdf.Ln(6)

	if lb.Guest.Name != "" || lb.Guest.Email != "" {
		pdf.Cell(0, 6, strings.TrimSpace(fmt.Sprintf("Curated for %s %s", lb.Guest.Name, lb.Guest.Email)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(110, 7, "Piece")
	pdf.Cell(30, 7, "Price")
	pdf.Cell(50, 7, "Shipping")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range lb.Items {
		pdf.Cell(110, 6, trim(it.Title, 60))
		pdf.Cell(30, 6, fmt.Sprintf("$%.0f", it.Price))
		promise := it.ShippingPromise
		if promise == "" {
			promise = "Made to order"
		}
		pdf.Cell(50, 6, promise)
		pdf.Ln(6)
	}

	if lb.Note != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, trim(lb.Note, 400), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, "Aurora • Lab-grown fine jewelry")
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s", time.Now().UTC().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("lookbook pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
