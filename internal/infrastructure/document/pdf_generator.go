package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// ErrEmptyDocument is returned for a proposal without line items.
var ErrEmptyDocument = errors.New("proposal document has no line items")

const (
	pageMargin     = 18.0
	contentBottom  = 265.0
	rowHeight      = 12.0
	validityPeriod = 14 * 24 * time.Hour
)

// PDFGenerator renders proposals as A4 PDFs under a directory.
type PDFGenerator struct {
	dir string
	now func() time.Time
}

var _ interfaces.IDocumentGenerator = (*PDFGenerator)(nil)

func NewPDFGenerator(dir string) *PDFGenerator {
	return &PDFGenerator{dir: dir, now: time.Now}
}

// Generate writes proposal-<id>-<unixnano>.pdf and returns its path.
func (g *PDFGenerator) Generate(ctx context.Context, doc entities.ProposalDocument) (string, error) {
	if len(doc.Items) == 0 {
		return "", ErrEmptyDocument
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("create documents dir: %w", err)
	}

	issued := g.now()
	pdf := render(doc, issued)
	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("render proposal: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(g.dir, fmt.Sprintf("proposal-%s-%d.pdf", doc.ProposalID, issued.UnixNano()))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write proposal pdf: %w", err)
	}
	zap.L().Info("[document][pdf] proposal rendered",
		zap.String("proposal_id", doc.ProposalID), zap.String("path", path), zap.Int("items", len(doc.Items)))
	return path, nil
}

func render(doc entities.ProposalDocument, issued time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFooterFunc(func() { footer(pdf) })
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	// header band
	pdf.SetFillColor(46, 196, 182)
	pdf.Rect(0, 0, pageW, 4, "F")
	pdf.SetFillColor(13, 27, 42)
	pdf.Rect(0, 4, pageW, 45, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(pageMargin, 24, "BizTech")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(148, 163, 184)
	pdf.Text(pageMargin, 34, "Agency Management Portal")
	pdf.SetXY(0, 16)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(pageW-pageMargin, 6, "PROPOSAL", "", 1, "R", false, 0, "")
	pdf.SetX(0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(46, 196, 182)
	pdf.CellFormat(pageW-pageMargin, 8, "#"+doc.ProposalID, "", 1, "R", false, 0, "")

	// prepared-for block and dates
	y := 60.0
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(pageMargin, y, 92, 32, "F")
	pdf.SetFillColor(46, 196, 182)
	pdf.Rect(pageMargin, y, 1.5, 32, "F")
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.Text(pageMargin+6, y+8, "PREPARED FOR")
	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(pageMargin+6, y+17, doc.ClientLabel)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.Text(pageMargin+6, y+25, "Valued Client")

	details := [][2]string{
		{"Date Issued:", issued.Format("2006-01-02")},
		{"Valid Until:", issued.Add(validityPeriod).Format("2006-01-02")},
		{"Project Type:", "Digital Services"},
	}
	for i, d := range details {
		rowY := y + 8 + float64(i)*9
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 116, 139)
		pdf.Text(122, rowY, d[0])
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(30, 41, 59)
		pdf.Text(155, rowY, d[1])
	}

	// line items
	y += 44
	y = tableHeader(pdf, y, pageW)
	pdf.SetFont("Helvetica", "", 10)
	for _, it := range doc.Items {
		if y+rowHeight > contentBottom {
			pdf.AddPage()
			y = tableHeader(pdf, pageMargin, pageW)
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetTextColor(30, 41, 59)
		pdf.SetXY(pageMargin+4, y)
		pdf.CellFormat(pageW-2*pageMargin-44, rowHeight, pdf.UnicodeTranslatorFromDescriptor("")(it.Description), "", 0, "L", false, 0, "")
		pdf.CellFormat(36, rowHeight, money(it.Price), "", 0, "R", false, 0, "")
		pdf.SetDrawColor(226, 232, 240)
		pdf.SetLineWidth(0.2)
		pdf.Line(pageMargin, y+rowHeight, pageW-pageMargin, y+rowHeight)
		y += rowHeight
	}

	// totals
	y += 8
	if y+40 > contentBottom {
		pdf.AddPage()
		y = pageMargin
	}
	boxX := pageW - pageMargin - 85
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.Text(boxX+5, y, "Subtotal")
	pdf.Text(boxX+5, y+7, "Tax (0%)")
	pdf.SetTextColor(30, 41, 59)
	pdf.SetXY(boxX, y-4)
	pdf.CellFormat(80, 5, money(doc.TotalAmount), "", 2, "R", false, 0, "")
	pdf.SetXY(boxX, y+3)
	pdf.CellFormat(80, 5, money(0), "", 2, "R", false, 0, "")

	y += 14
	pdf.SetFillColor(13, 27, 42)
	pdf.Rect(boxX, y, 85, 16, "F")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(boxX+6, y+10, "Total Estimate")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(46, 196, 182)
	pdf.SetXY(boxX, y+3)
	pdf.CellFormat(80, 10, money(doc.TotalAmount), "", 2, "R", false, 0, "")

	// terms
	y += 30
	if y+30 > contentBottom {
		pdf.AddPage()
		y = pageMargin
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(13, 27, 42)
	pdf.Text(pageMargin, y, "Terms & Conditions")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	for i, term := range []string{
		"1. Payment Terms: 50% upfront deposit required to commence work.",
		"2. Validity: This proposal is valid for 14 days from the date of issue.",
		"3. Delivery: Final assets transferred upon full payment completion.",
	} {
		pdf.Text(pageMargin, y+8+float64(i)*5.5, term)
	}
	return pdf
}

func tableHeader(pdf *fpdf.Fpdf, y, pageW float64) float64 {
	pdf.SetFillColor(241, 245, 249)
	pdf.Rect(pageMargin, y, pageW-2*pageMargin, 11, "F")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.Text(pageMargin+4, y+7, "DESCRIPTION")
	pdf.SetXY(pageW-pageMargin-40, y+3)
	pdf.CellFormat(36, 5, "AMOUNT", "", 0, "R", false, 0, "")
	return y + 11
}

func footer(pdf *fpdf.Fpdf) {
	pageW, pageH := pdf.GetPageSize()
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(0, pageH-15, pageW, 15, "F")
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetXY(0, pageH-10)
	pdf.CellFormat(pageW, 4, fmt.Sprintf("services@biztech.ae  -  www.biztech.ae  -  page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
