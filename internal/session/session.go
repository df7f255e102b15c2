package session

import (
	"fmt"
	"time"

	"github.com/archimart/quote-api/internal/quote"
)

// Session is one quoting session: an immutable quote number plus the mutable
// input snapshot. Nothing outlives the session.
type Session struct {
	ID          string              `json:"id"`
	QuoteNumber string              `json:"quoteNumber"`
	CreatedAt   time.Time           `json:"createdAt"`
	ExpiresAt   time.Time           `json:"expiresAt"`
	Snapshot    quote.InputSnapshot `json:"snapshot"`
}

// quoteNumberPrefix matches the numbering scheme quotes have always used.
const quoteNumberPrefix = "ACHM-Q"

// NewQuoteNumber builds a quote number of the form ACHM-Q-YYYYMMDD-NNN where
// NNN is a random three-digit suffix. Generated once per session and never
// regenerated.
func NewQuoteNumber(now time.Time, intn func(int) int) string {
	return fmt.Sprintf("%s-%s-%03d", quoteNumberPrefix, now.Format("20060102"), 100+intn(900))
}
