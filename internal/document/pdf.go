package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/archimart/quote-api/internal/config"
	"github.com/archimart/quote-api/internal/quote"
)

// Terms is the single payment term printed on every quote document.
const Terms = "Balance is due in full on the installation completion day."

// Renderer produces the customer-facing quote PDF. The clock is injectable so
// the issue date is stable in tests.
type Renderer struct {
	Company config.Company
	Now     func() time.Time
}

// NewRenderer builds a renderer stamped with the company identity.
func NewRenderer(company config.Company) *Renderer {
	return &Renderer{Company: company, Now: time.Now}
}

// Render lays out the quote as a single-page A4 PDF.
func (r *Renderer) Render(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quote "+q.QuoteNumber, true)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	pdf.SetCreationDate(now())

	// Header: document title left, company identity right.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(95, 10, "QUOTE", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(95, 5, tr(r.Company.Name), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(95, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 4, tr("ABN "+r.Company.ABN), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 4, tr(r.Company.Phone), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 5, tr("Quote no: "+q.QuoteNumber), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, tr("Date: "+now().Format("02 Jan 2006")), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	r.kvRow(pdf, tr, "Project", q.ProjectName)
	r.kvRow(pdf, tr, "Client", q.ClientName)
	r.kvRow(pdf, tr, "Site address", q.SiteAddress)
	pdf.Ln(3)

	r.sectionTitle(pdf, "Configuration")
	configLine := q.ConfigurationLabel
	if q.OptionSummary != quote.Unavailable {
		configLine += "  (" + q.OptionSummary + ")"
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(configLine), "", "L", false)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Measurements: %.2f m × %.2f m = %.2f m²",
		q.Dimensions.Length, q.Dimensions.Width, q.Dimensions.Area)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	r.sectionTitle(pdf, "Pricing")
	if q.UnitRate > 0 {
		r.lineRow(pdf, tr,
			fmt.Sprintf("%s, %.2f m² @ %s/m²", q.ConfigurationLabel, q.Dimensions.Area, FormatCents(q.UnitRate)),
			FormatCents(q.BaseSubtotal))
	}
	for _, line := range q.AddonLines {
		r.lineRow(pdf, tr,
			fmt.Sprintf("%s, %g %s @ %s", line.Label, line.Quantity, line.UnitLabel, FormatCents(line.UnitPrice)),
			FormatCents(line.Subtotal))
	}
	for _, line := range q.CustomLines {
		r.lineRow(pdf, tr, line.Name, FormatCents(line.Amount))
	}
	pdf.Ln(2)

	r.totalRow(pdf, tr, "Total", FormatCents(q.Total), false)
	dealLabel := "Deal price (no rounding)"
	if q.RoundingApplied {
		dealLabel = "Deal price (rounded down to $100)"
	}
	r.totalRow(pdf, tr, dealLabel, money(q.DealPrice, q.RoundingApplied), true)
	r.totalRow(pdf, tr, "Deposit (50%)", money(q.Deposit, q.RoundingApplied), false)
	r.totalRow(pdf, tr, "Balance on completion", money(q.Balance, q.RoundingApplied), false)
	depositPaid := "No"
	if q.DepositPaid {
		depositPaid = "Yes"
	}
	r.totalRow(pdf, tr, "Deposit paid", depositPaid, false)
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6, "Terms", "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(Terms), "", "L", true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
}

func (r *Renderer) kvRow(pdf *gofpdf.Fpdf, tr func(string) string, key, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 5, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(value), "", 1, "L", false, 0, "")
}

func (r *Renderer) lineRow(pdf *gofpdf.Fpdf, tr func(string) string, label, amount string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(150, 5, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(amount), "", 1, "R", false, 0, "")
}

func (r *Renderer) totalRow(pdf *gofpdf.Fpdf, tr func(string) string, label, amount string, emphasize bool) {
	style := ""
	if emphasize {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(150, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(amount), "", 1, "R", false, 0, "")
}
