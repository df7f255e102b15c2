package quote

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/archimart/quote-api/internal/catalog"
)

// Money is a monetary value in minor units (cents).
type Money = int64

// ErrInvalidNumericState signals a non-finite or out-of-range value reached
// the engine. The normalizer makes this structurally impossible; the engine
// still refuses to emit NaN, Infinity, or overflowed cents into a document.
var ErrInvalidNumericState = errors.New("invalid numeric state")

// Upper bounds on normalized magnitudes. Nothing that describes a real
// installation exceeds these, and anything beyond them would overflow the
// integer cent arithmetic below.
const (
	maxDimensionMetres = 10_000
	maxAddonQuantity   = 1_000_000
	maxCustomAmount    = 1_000_000_000
)

// Unavailable is the sentinel rendered for empty text fields so the document
// renderer needs no conditional logic.
const Unavailable = "—"

// Dimensions is the validated size breakdown in metres / square metres.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Area   float64 `json:"area"`
}

// AddonLine is one priced add-on included in the quote.
type AddonLine struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	UnitLabel string  `json:"unitLabel"`
	Quantity  float64 `json:"quantity"`
	UnitPrice Money   `json:"unitPrice"`
	Subtotal  Money   `json:"subtotal"`
}

// CustomQuoteLine is one included manual line item.
type CustomQuoteLine struct {
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
}

// Quote is the fully itemized pricing result. All monetary fields are cents.
type Quote struct {
	QuoteNumber string `json:"quoteNumber"`

	ProjectName string `json:"projectName"`
	ClientName  string `json:"clientName"`
	SiteAddress string `json:"siteAddress"`

	Dimensions         Dimensions `json:"dimensions"`
	ProductID          string     `json:"productId"`
	ConfigurationLabel string     `json:"configurationLabel"`
	OptionSummary      string     `json:"optionSummary"`

	UnitRate       Money             `json:"unitRate"`
	BaseSubtotal   Money             `json:"baseSubtotal"`
	AddonLines     []AddonLine       `json:"addonLines"`
	AddonsSubtotal Money             `json:"addonsSubtotal"`
	CustomLines    []CustomQuoteLine `json:"customLines"`
	CustomSubtotal Money             `json:"customSubtotal"`
	Total          Money             `json:"total"`

	RoundingApplied bool  `json:"roundingApplied"`
	DealPrice       Money `json:"dealPrice"`
	Deposit         Money `json:"deposit"`
	Balance         Money `json:"balance"`

	DepositPaid bool `json:"depositPaid"`
}

// Compute derives a quote from normalized input. It is pure and deterministic:
// identical input produces an identical quote. All arithmetic happens in
// integer minor units so rounding rules are exact.
func Compute(in NormalizedInput, quoteNumber string) (Quote, error) {
	if err := checkNumericState(in); err != nil {
		return Quote{}, err
	}

	l100 := hundredths(in.Length)
	w100 := hundredths(in.Width)
	if l100 < 0 {
		l100 = 0
	}
	if w100 < 0 {
		w100 = 0
	}
	// area in hundredths of a m², rounded at the hundredths digit.
	area100 := (l100*w100 + 50) / 100

	q := Quote{
		QuoteNumber: quoteNumber,
		ProjectName: textOrUnavailable(in.ProjectName),
		ClientName:  textOrUnavailable(in.ClientName),
		SiteAddress: textOrUnavailable(in.SiteAddress),
		Dimensions: Dimensions{
			Length: float64(l100) / 100,
			Width:  float64(w100) / 100,
			Area:   float64(area100) / 100,
		},
		ConfigurationLabel: Unavailable,
		OptionSummary:      Unavailable,
		AddonLines:         []AddonLine{},
		CustomLines:        []CustomQuoteLine{},
		DepositPaid:        in.DepositPaid,
	}

	cfg, selected := catalog.ConfigByID(in.ProductID)
	if selected {
		q.ProductID = cfg.ID
		q.ConfigurationLabel = cfg.Label
		q.OptionSummary = optionSummary(cfg.Category, in.Shape, in.Color)
		q.UnitRate = cfg.UnitRate * 100
		q.BaseSubtotal = area100 * cfg.UnitRate
	}

	// Add-ons apply only to the selected configuration's category. Stale
	// quantities for other categories are excluded even if present.
	if selected {
		for _, addon := range catalog.AddonsFor(cfg.Category) {
			qty := in.AddonQty[addon.ID]
			qty100 := hundredths(qty)
			if qty100 <= 0 {
				continue
			}
			line := AddonLine{
				ID:        addon.ID,
				Label:     addon.Label,
				UnitLabel: addon.UnitLabel,
				Quantity:  float64(qty100) / 100,
				UnitPrice: addon.UnitPrice * 100,
				Subtotal:  qty100 * addon.UnitPrice,
			}
			q.AddonLines = append(q.AddonLines, line)
			q.AddonsSubtotal += line.Subtotal
		}
	}

	for _, line := range in.CustomLines {
		amount := hundredths(line.Amount)
		if amount <= 0 {
			continue
		}
		q.CustomLines = append(q.CustomLines, CustomQuoteLine{Name: line.Name, Amount: amount})
		q.CustomSubtotal += amount
	}

	q.Total = q.BaseSubtotal + q.AddonsSubtotal + q.CustomSubtotal
	q.RoundingApplied = area100 >= 100

	if q.RoundingApplied {
		// Round down to the nearest whole hundred dollars, then drop the
		// deposit to a whole dollar. Small jobs skip both so they are not
		// discounted to zero.
		q.DealPrice = q.Total / 10000 * 10000
		q.Deposit = q.DealPrice / 2 / 100 * 100
	} else {
		q.DealPrice = q.Total
		q.Deposit = (q.DealPrice + q.DealPrice%2) / 2
	}
	q.Balance = q.DealPrice - q.Deposit

	return q, nil
}

func checkNumericState(in NormalizedInput) error {
	if !within(in.Length, maxDimensionMetres) || !within(in.Width, maxDimensionMetres) {
		return fmt.Errorf("%w: dimensions", ErrInvalidNumericState)
	}
	for id, qty := range in.AddonQty {
		if !within(qty, maxAddonQuantity) {
			return fmt.Errorf("%w: add-on %s quantity", ErrInvalidNumericState, id)
		}
	}
	for _, line := range in.CustomLines {
		if !within(line.Amount, maxCustomAmount) {
			return fmt.Errorf("%w: custom line %q amount", ErrInvalidNumericState, line.Name)
		}
	}
	return nil
}

func within(v float64, bound float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v <= bound
}

// hundredths converts a two-decimal float to an exact integer count of
// hundredths.
func hundredths(v float64) int64 {
	return int64(math.Round(v * 100))
}

func textOrUnavailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unavailable
	}
	return s
}

func optionSummary(c catalog.Category, shape, color string) string {
	var parts []string
	if c == catalog.CategoryPCRoof {
		if shape != "" {
			parts = append(parts, "Awning shape: "+shape)
		}
		if color != "" {
			parts = append(parts, "PC colour: "+color)
		}
	} else if c.IsDeck() && color != "" {
		parts = append(parts, "Decking colour: "+color)
	}
	if len(parts) == 0 {
		return Unavailable
	}
	return strings.Join(parts, " | ")
}
