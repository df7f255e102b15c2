package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archimart/quote-api/internal/document"
)

func TestFilename(t *testing.T) {
	cases := []struct {
		name    string
		project string
		expect  string
	}{
		{"plain name", "Burwood_Deck", "Burwood_Deck_ACHM-Q-20260830-123.pdf"},
		{"unsafe characters replaced", "Smith & Co / Stage 2", "Smith___Co___Stage_2_ACHM-Q-20260830-123.pdf"},
		{"empty falls back", "", "ArchiMart_Quote_ACHM-Q-20260830-123.pdf"},
		{"whitespace falls back", "   ", "ArchiMart_Quote_ACHM-Q-20260830-123.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, document.Filename(tc.project, "ACHM-Q-20260830-123"))
		})
	}

	t.Run("long names truncated", func(t *testing.T) {
		long := strings.Repeat("a", 60)
		got := document.Filename(long, "ACHM-Q-20260830-123")
		require.Equal(t, strings.Repeat("a", 48)+"_ACHM-Q-20260830-123.pdf", got)
	})
}

func TestFormatCents(t *testing.T) {
	require.Equal(t, "$0.00", document.FormatCents(0))
	require.Equal(t, "$1.20", document.FormatCents(120))
	require.Equal(t, "$65.25", document.FormatCents(6525))
	require.Equal(t, "$11,375.00", document.FormatCents(1137500))
	require.Equal(t, "$1,234,567.89", document.FormatCents(123456789))
}

func TestFormatWholeDollars(t *testing.T) {
	require.Equal(t, "$0", document.FormatWholeDollars(0))
	require.Equal(t, "$280", document.FormatWholeDollars(28000))
	require.Equal(t, "$11,300", document.FormatWholeDollars(1130000))
}
