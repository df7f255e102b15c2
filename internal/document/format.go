package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/archimart/quote-api/internal/quote"
)

const (
	defaultFileStem = "ArchiMart_Quote"
	maxFileStemLen  = 48
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Filename derives the download filename from the project name and quote
// number. Unsafe characters collapse to underscores and the project stem is
// capped so header values stay sane.
func Filename(projectName, quoteNumber string) string {
	stem := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(projectName), "_")
	if len(stem) > maxFileStemLen {
		stem = stem[:maxFileStemLen]
	}
	if stem == "" {
		stem = defaultFileStem
	}
	return fmt.Sprintf("%s_%s.pdf", stem, quoteNumber)
}

// FormatCents renders cents as a dollar amount with two decimals, e.g. $1,234.56.
func FormatCents(v quote.Money) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(v/100), v%100)
}

// FormatWholeDollars renders cents as a whole dollar amount, e.g. $1,234.
// Callers use it for hundred-rounded figures that carry no cents.
func FormatWholeDollars(v quote.Money) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + groupThousands(v/100)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// money picks the rendering that matches the quote's rounding mode for the
// deal price block.
func money(v quote.Money, whole bool) string {
	if whole {
		return FormatWholeDollars(v)
	}
	return FormatCents(v)
}
