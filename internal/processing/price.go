// Package processing contains the pure text transformations applied to
// upstream listings: price and currency extraction plus title cleanup.
package processing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonPrice = regexp.MustCompile(`[^0-9.,]`)
	firstNum = regexp.MustCompile(`\d+(\.\d+)?`)
)

// currencySymbols is matched by substring containment, so the multi-rune
// symbols have to come before the plain "$" they contain.
var currencySymbols = []string{"CA$", "A$", "$", "€", "£", "¥", "₹"}

var currencyCodes = map[string]string{
	"$":   "USD",
	"€":   "EUR",
	"£":   "GBP",
	"¥":   "JPY",
	"₹":   "INR",
	"CA$": "CAD",
	"A$":  "AUD",
}

// ExtractPrice parses a free-form price string into a number. Every rune
// that is not a digit, comma, or dot is dropped, commas become dots, and the
// first numeric run is parsed. Thousands separators are therefore read as
// decimal points ("$1,234.56" yields 1.234); this matches the historical
// behavior contract and must not be "fixed" silently.
func ExtractPrice(text string) float64 {
	cleaned := nonPrice.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	match := firstNum.FindString(cleaned)
	if match == "" {
		return 0
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}

// ExtractCurrency returns the first known currency symbol contained in the
// text, or the empty string when none is present.
func ExtractCurrency(text string) string {
	for _, symbol := range currencySymbols {
		if strings.Contains(text, symbol) {
			return symbol
		}
	}
	return ""
}

// CurrencyCode maps a currency symbol to its ISO-4217 code. Unknown or empty
// symbols map to USD.
func CurrencyCode(symbol string) string {
	if code, ok := currencyCodes[symbol]; ok {
		return code
	}
	return "USD"
}
