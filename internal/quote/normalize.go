package quote

import (
	"math"
	"strconv"
	"strings"

	"github.com/archimart/quote-api/internal/catalog"
)

// CustomLine is a validated manual line item.
type CustomLine struct {
	Name   string
	Amount float64
}

// NormalizedInput is the strictly typed counterpart of InputSnapshot. All
// numeric fields are non-negative and rounded to two decimals; integer-kind
// add-on quantities are whole numbers.
type NormalizedInput struct {
	ProjectName string
	ClientName  string
	SiteAddress string

	Length float64
	Width  float64

	ProductID string
	Color     string
	Shape     string

	AddonQty    map[string]float64
	CustomLines []CustomLine

	DepositPaid bool
}

// Normalize converts a raw snapshot into validated numeric values. Malformed
// numeric text never fails: it normalizes to zero, which excludes the field
// from the quote.
func Normalize(snap InputSnapshot) NormalizedInput {
	in := NormalizedInput{
		ProjectName: snap.ProjectName,
		ClientName:  snap.ClientName,
		SiteAddress: snap.SiteAddress,
		Length:      parseDecimal(snap.Length),
		Width:       parseDecimal(snap.Width),
		AddonQty:    map[string]float64{},
		DepositPaid: snap.DepositPaid,
	}

	cfg, ok := catalog.ConfigByID(snap.ProductID)
	if ok {
		in.ProductID = cfg.ID
		in.Color = matchColor(cfg.Category, snap.Color)
		in.Shape = matchShape(cfg.Category, snap.Shape)
	}

	for id, raw := range snap.AddonQuantities {
		addon, ok := catalog.AddonByID(id)
		if !ok {
			continue
		}
		qty := normalizeQuantity(addon.Kind, raw)
		if qty > 0 {
			in.AddonQty[id] = qty
		}
	}

	for _, entry := range snap.CustomLines {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		amount, finite := parseFinite(entry.Amount)
		if !finite || amount <= 0 {
			continue
		}
		in.CustomLines = append(in.CustomLines, CustomLine{Name: name, Amount: round2(amount)})
	}

	return in
}

// normalizeQuantity applies the per-kind rules: integer kinds truncate toward
// zero, decimal kinds round to two decimals. Negative quantities become zero.
func normalizeQuantity(kind catalog.QuantityKind, raw string) float64 {
	v, finite := parseFinite(raw)
	if !finite || v <= 0 {
		return 0
	}
	if kind == catalog.QuantityInteger {
		return math.Trunc(v)
	}
	return round2(v)
}

func matchColor(c catalog.Category, id string) string {
	for _, opt := range catalog.ColorsFor(c) {
		if opt.ID == id {
			return id
		}
	}
	return ""
}

func matchShape(c catalog.Category, id string) string {
	for _, opt := range catalog.ShapesFor(c) {
		if opt.ID == id {
			return id
		}
	}
	return ""
}

// parseDecimal parses a dimension or amount field: unparsable or non-finite
// input becomes 0, negatives are clamped to 0, and the result is rounded to
// two decimals.
func parseDecimal(raw string) float64 {
	v, finite := parseFinite(raw)
	if !finite || v <= 0 {
		return 0
	}
	return round2(v)
}

func parseFinite(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// round2 rounds to the nearest hundredth, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
