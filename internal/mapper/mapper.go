// Package mapper translates SerpApi response payloads into normalized
// product records. Each retailer maps onto one of a closed set of engines;
// every engine knows both how to build its request parameters and how to
// read its response shape.
package mapper

import (
	"strconv"
	"strings"

	"github.com/RiteshTiwari1/price-comparison-tool/internal/models"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/processing"
)

// maxPerCall bounds how many entries of an upstream response are examined.
const maxPerCall = 10

// Engine identifies one SerpApi response shape.
type Engine string

const (
	AmazonSearch   Engine = "amazon_search"
	WalmartSearch  Engine = "walmart_search"
	GoogleShopping Engine = "google_shopping"
)

var engineByWebsite = map[string]Engine{
	"amazon":  AmazonSearch,
	"walmart": WalmartSearch,
	"bestbuy": GoogleShopping,
	"target":  GoogleShopping,
	"newegg":  GoogleShopping,
}

// Retailers served by Google Shopping without a per-source filter.
var unfiltered = map[string]struct{}{
	"bestbuy": {},
	"target":  {},
}

// ForWebsite resolves the engine for a retailer. Retailers without an
// explicit mapping are queried through Google Shopping.
func ForWebsite(website string) Engine {
	if e, ok := engineByWebsite[strings.ToLower(website)]; ok {
		return e
	}
	return GoogleShopping
}

// Params builds the SerpApi request parameters for one retailer query.
// An empty website produces the generic Google Shopping query with no site
// restriction.
func (e Engine) Params(website, country, query string) map[string]string {
	params := map[string]string{"engine": string(e)}

	switch e {
	case AmazonSearch:
		params["q"] = query
		params["amazon_domain"] = "amazon." + countryDomain(country)
	case WalmartSearch:
		params["query"] = query
	default:
		site := strings.ToLower(website)
		q := query
		if site != "" {
			if _, ok := unfiltered[site]; !ok {
				q += " site:" + site + ".com"
			}
		}
		params["q"] = q
		params["google_domain"] = "google." + countryDomain(country)
	}

	return params
}

// Map translates one upstream payload into product records for a retailer.
func (e Engine) Map(payload map[string]any, website string) []models.Product {
	switch e {
	case AmazonSearch:
		return mapAmazon(payload, website)
	case WalmartSearch:
		return mapWalmart(payload, website)
	default:
		return mapGoogleShopping(payload, website)
	}
}

func countryDomain(country string) string {
	cc := strings.ToLower(country)
	if cc == "us" {
		return "com"
	}
	return cc
}

// results pulls the named entry list out of a payload, capped at maxPerCall.
// Entries that are not objects are dropped.
func results(payload map[string]any, key string) []map[string]any {
	raw, ok := payload[key].([]any)
	if !ok {
		return nil
	}
	if len(raw) > maxPerCall {
		raw = raw[:maxPerCall]
	}

	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func dedupeKey(title string, price float64) string {
	return title + "|" + strconv.FormatFloat(price, 'f', -1, 64)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

// priceAndCurrency handles the three upstream price encodings: a bare
// number, a display string, or an object carrying a value and an explicit
// currency.
func priceAndCurrency(v any) (float64, string) {
	switch p := v.(type) {
	case float64:
		return p, ""
	case string:
		return processing.ExtractPrice(p), ""
	case map[string]any:
		price := asFloat(p["value"])
		if price == 0 {
			price = processing.ExtractPrice(asString(p["raw"]))
		}
		return price, asString(p["currency"])
	default:
		return 0, ""
	}
}

// extractedPrice reads a price field that is expected to be a display
// string but may arrive as a bare number.
func extractedPrice(v any) float64 {
	switch p := v.(type) {
	case string:
		return processing.ExtractPrice(p)
	case float64:
		return p
	default:
		return 0
	}
}

// stringCurrency resolves the currency code carried by a display-string
// price, defaulting to USD.
func stringCurrency(v any) string {
	if raw, ok := v.(string); ok {
		if symbol := processing.ExtractCurrency(raw); symbol != "" {
			return processing.CurrencyCode(symbol)
		}
	}
	return "USD"
}
