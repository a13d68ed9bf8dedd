package mapper

import (
	"github.com/RiteshTiwari1/price-comparison-tool/internal/models"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/processing"
)

// mapAmazon reads the amazon_search shape: shopping_results first, falling
// back to organic_results when the shopping list produced nothing.
func mapAmazon(payload map[string]any, website string) []models.Product {
	seen := make(map[string]struct{})
	var products []models.Product

	for _, item := range results(payload, "shopping_results") {
		title := asString(item["title"])
		if title == "" {
			continue
		}

		price, currency := priceAndCurrency(item["price"])
		key := dedupeKey(title, price)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if currency == "" {
			currency = "USD"
		}
		availability := asString(item["availability"])
		if availability == "" {
			availability = "In Stock"
		}

		products = append(products, models.Product{
			Link:         asString(item["link"]),
			Price:        price,
			Currency:     currency,
			ProductName:  processing.CleanProductName(title),
			Website:      website,
			ImageURL:     asString(item["thumbnail"]),
			Rating:       asFloat(item["rating"]),
			Reviews:      asInt(item["reviews"]),
			Availability: availability,
		})
	}

	if len(products) > 0 {
		return products
	}

	// Organic hits carry no offer metadata, so currency, rating, and
	// reviews are fixed.
	for _, item := range results(payload, "organic_results") {
		title := asString(item["title"])
		if title == "" {
			continue
		}

		price, _ := priceAndCurrency(item["price"])
		key := dedupeKey(title, price)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		products = append(products, models.Product{
			Link:         asString(item["link"]),
			Price:        price,
			Currency:     "USD",
			ProductName:  processing.CleanProductName(title),
			Website:      website,
			ImageURL:     asString(item["thumbnail"]),
			Availability: "In Stock",
		})
	}

	return products
}
