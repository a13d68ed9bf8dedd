package mapper

import (
	"strings"

	"github.com/RiteshTiwari1/price-comparison-tool/internal/models"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/processing"
)

// mapGoogleShopping reads the google_shopping shape. Unless the retailer is
// one of the unfiltered ones, entries reported for a different source are
// skipped, since the site-restricted query is only a hint to the upstream.
func mapGoogleShopping(payload map[string]any, website string) []models.Product {
	seen := make(map[string]struct{})
	site := strings.ToLower(website)
	_, keepAllSources := unfiltered[site]

	var products []models.Product
	for _, item := range results(payload, "shopping_results") {
		title := asString(item["title"])
		if title == "" {
			continue
		}

		source := asString(item["source"])
		if !keepAllSources && source != "" && !strings.Contains(strings.ToLower(source), site) {
			continue
		}

		price := extractedPrice(item["price"])
		key := dedupeKey(title, price)
		if source != "" {
			key += "|" + source
		} else {
			key += "|" + website
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		reported := website
		if source != "" {
			reported = source
		}

		products = append(products, models.Product{
			Link:        asString(item["link"]),
			Price:       price,
			Currency:    stringCurrency(item["price"]),
			ProductName: processing.CleanProductName(title),
			Website:     reported,
			ImageURL:    asString(item["thumbnail"]),
			Rating:      asFloat(item["rating"]),
			Reviews:     asInt(item["reviews"]),
			// Google Shopping only surfaces purchasable offers.
			Availability: "In Stock",
		})
	}

	return products
}

// MapGeneric reads the fallback generic shopping query, which has no
// retailer restriction. The reported source becomes the website, with a
// generic label when the upstream omits it.
func MapGeneric(payload map[string]any) []models.Product {
	var products []models.Product
	for _, item := range results(payload, "shopping_results") {
		title := asString(item["title"])
		if title == "" {
			continue
		}

		website := asString(item["source"])
		if website == "" {
			website = "Google Shopping"
		}

		products = append(products, models.Product{
			Link:         asString(item["link"]),
			Price:        extractedPrice(item["price"]),
			Currency:     stringCurrency(item["price"]),
			ProductName:  processing.CleanProductName(title),
			Website:      website,
			ImageURL:     asString(item["thumbnail"]),
			Rating:       asFloat(item["rating"]),
			Reviews:      asInt(item["reviews"]),
			Availability: "In Stock",
		})
	}

	return products
}
