package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archimart/quote-api/internal/config"
	"github.com/archimart/quote-api/internal/document"
	"github.com/archimart/quote-api/internal/quote"
)

func testCompany() config.Company {
	return config.Company{
		Name:  "ARCHIMART PTY LTD",
		ABN:   "65 675 558 353",
		Phone: "0432 336 299",
	}
}

func fullQuote(t *testing.T) quote.Quote {
	t.Helper()
	snap := quote.NewSnapshot()
	snap.ProjectName = "Burwood East Pergola"
	snap.ClientName = "J. Smith"
	snap.SiteAddress = "12 Example St, Burwood East VIC"
	snap.Length = "8.00"
	snap.Width = "5.00"
	snap.ProductID = "ALU_PC"
	snap.Shape = "Straight"
	snap.Color = "Clear"
	snap.AddonQuantities = map[string]string{"post_concrete": "4", "rear_beam_raise": "1.5"}
	snap.CustomLines[0] = quote.CustomLineEntry{Name: "Old pergola removal", Amount: "450"}

	q, err := quote.Compute(quote.Normalize(snap), "ACHM-Q-20260830-123")
	require.NoError(t, err)
	return q
}

func TestRenderProducesPDF(t *testing.T) {
	r := document.NewRenderer(testCompany())
	r.Now = func() time.Time { return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC) }

	data, err := r.Render(fullQuote(t))
	require.NoError(t, err)
	require.Greater(t, len(data), 500)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderHandlesUnavailableFields(t *testing.T) {
	snap := quote.NewSnapshot()
	snap.Length = "4.00"
	snap.Width = "3.00"
	snap.ProductID = "TIMBER_HOLLOW"

	q, err := quote.Compute(quote.Normalize(snap), "ACHM-Q-20260830-456")
	require.NoError(t, err)

	r := document.NewRenderer(testCompany())
	data, err := r.Render(q)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderDeterministicWithFixedClock(t *testing.T) {
	r := document.NewRenderer(testCompany())
	r.Now = func() time.Time { return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC) }

	q := fullQuote(t)
	first, err := r.Render(q)
	require.NoError(t, err)
	second, err := r.Render(q)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
