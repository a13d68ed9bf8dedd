// Package dedupe removes duplicate product records from an aggregated
// result set.
package dedupe

import (
	"strconv"

	"github.com/RiteshTiwari1/price-comparison-tool/internal/models"
)

// Products returns the records with duplicates removed. Two records are
// duplicates when name, price, and website all match exactly; the first
// occurrence wins and the surviving order is first-seen order.
func Products(items []models.Product) []models.Product {
	seen := make(map[string]struct{}, len(items))
	out := make([]models.Product, 0, len(items))

	for _, p := range items {
		k := Key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}

	return out
}

// Key builds the composite deduplication key for a record.
func Key(p models.Product) string {
	return p.ProductName + "|" + strconv.FormatFloat(p.Price, 'f', -1, 64) + "|" + p.Website
}
