package mapper_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RiteshTiwari1/price-comparison-tool/internal/mapper"
)

func payload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestForWebsite(t *testing.T) {
	tests := []struct {
		website string
		want    mapper.Engine
	}{
		{website: "amazon", want: mapper.AmazonSearch},
		{website: "Amazon", want: mapper.AmazonSearch},
		{website: "walmart", want: mapper.WalmartSearch},
		{website: "bestbuy", want: mapper.GoogleShopping},
		{website: "target", want: mapper.GoogleShopping},
		{website: "newegg", want: mapper.GoogleShopping},
		{website: "flipkart", want: mapper.GoogleShopping},
		{website: "johnlewis", want: mapper.GoogleShopping},
	}

	for _, tt := range tests {
		t.Run(tt.website, func(t *testing.T) {
			require.Equal(t, tt.want, mapper.ForWebsite(tt.website))
		})
	}
}

func TestParamsAmazon(t *testing.T) {
	params := mapper.AmazonSearch.Params("amazon", "US", "phone")
	require.Equal(t, map[string]string{
		"engine":        "amazon_search",
		"q":             "phone",
		"amazon_domain": "amazon.com",
	}, params)

	params = mapper.AmazonSearch.Params("amazon", "IN", "phone")
	require.Equal(t, "amazon.in", params["amazon_domain"])
}

func TestParamsWalmart(t *testing.T) {
	params := mapper.WalmartSearch.Params("walmart", "US", "phone")
	require.Equal(t, map[string]string{
		"engine": "walmart_search",
		"query":  "phone",
	}, params)
}

func TestParamsGoogleShopping(t *testing.T) {
	params := mapper.GoogleShopping.Params("newegg", "US", "phone")
	require.Equal(t, map[string]string{
		"engine":        "google_shopping",
		"q":             "phone site:newegg.com",
		"google_domain": "google.com",
	}, params)

	// bestbuy and target skip the site restriction.
	params = mapper.GoogleShopping.Params("bestbuy", "US", "phone")
	require.Equal(t, "phone", params["q"])
	params = mapper.GoogleShopping.Params("target", "DE", "phone")
	require.Equal(t, "phone", params["q"])
	require.Equal(t, "google.de", params["google_domain"])
}

func TestParamsGeneric(t *testing.T) {
	params := mapper.GoogleShopping.Params("", "US", "phone")
	require.Equal(t, map[string]string{
		"engine":        "google_shopping",
		"q":             "phone",
		"google_domain": "google.com",
	}, params)
}

func TestMapGeneric(t *testing.T) {
	got := mapper.MapGeneric(payload(t, `{
		"shopping_results": [
			{"title": "Phone X", "price": "$599.99", "link": "https://a", "source": "Acme Store"},
			{"title": "Phone Y", "price": "CA$49.99"},
			{"price": "$10.00"}
		]
	}`))

	require.Len(t, got, 2)

	require.Equal(t, "Acme Store", got[0].Website)
	require.Equal(t, 599.99, got[0].Price)
	require.Equal(t, "USD", got[0].Currency)
	require.Equal(t, "In Stock", got[0].Availability)

	require.Equal(t, "Google Shopping", got[1].Website)
	require.Equal(t, 49.99, got[1].Price)
	require.Equal(t, "CAD", got[1].Currency)
}

func TestMapGenericCapsAtTen(t *testing.T) {
	items := make([]map[string]any, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, map[string]any{
			"title": "Item " + string(rune('A'+i)),
			"price": "$10.00",
		})
	}
	got := mapper.MapGeneric(map[string]any{"shopping_results": toAnySlice(items)})
	require.Len(t, got, 10)
}

func toAnySlice(items []map[string]any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
