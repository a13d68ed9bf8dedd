package mapper

import (
	"github.com/RiteshTiwari1/price-comparison-tool/internal/models"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/processing"
)

// mapWalmart reads the walmart_search shape: organic_results with offer
// details nested under primary_offer.
func mapWalmart(payload map[string]any, website string) []models.Product {
	seen := make(map[string]struct{})
	var products []models.Product

	for _, item := range results(payload, "organic_results") {
		title := asString(item["title"])
		if title == "" {
			continue
		}

		var price float64
		var currency string
		if offer, ok := item["primary_offer"].(map[string]any); ok {
			price = asFloat(offer["offer_price"])
			currency = asString(offer["currency"])
		}
		if price == 0 {
			price, _ = priceAndCurrency(item["price"])
		}
		if currency == "" {
			currency = "USD"
		}

		key := dedupeKey(title, price)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		link := asString(item["product_page_url"])
		if link == "" {
			link = asString(item["link"])
		}
		availability := asString(item["availability_status"])
		if availability == "" {
			availability = "In Stock"
		}

		products = append(products, models.Product{
			Link:         link,
			Price:        price,
			Currency:     currency,
			ProductName:  processing.CleanProductName(title),
			Website:      website,
			ImageURL:     asString(item["thumbnail"]),
			Rating:       asFloat(item["rating"]),
			Reviews:      asInt(item["reviews_count"]),
			Availability: availability,
		})
	}

	return products
}
