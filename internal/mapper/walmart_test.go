package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RiteshTiwari1/price-comparison-tool/internal/mapper"
)

func TestMapWalmartPrimaryOffer(t *testing.T) {
	got := mapper.WalmartSearch.Map(payload(t, `{
		"organic_results": [
			{
				"title": "Phone X",
				"primary_offer": {"offer_price": 499.99, "currency": "USD"},
				"product_page_url": "https://walmart.com/x",
				"link": "https://other",
				"thumbnail": "https://img/x.jpg",
				"rating": 4.1,
				"reviews_count": 320,
				"availability_status": "Limited Stock"
			}
		]
	}`), "walmart")

	require.Len(t, got, 1)
	require.Equal(t, 499.99, got[0].Price)
	require.Equal(t, "USD", got[0].Currency)
	require.Equal(t, "https://walmart.com/x", got[0].Link)
	require.Equal(t, 320, got[0].Reviews)
	require.Equal(t, "Limited Stock", got[0].Availability)
	require.Equal(t, "walmart", got[0].Website)
}

func TestMapWalmartPriceFallbacks(t *testing.T) {
	got := mapper.WalmartSearch.Map(payload(t, `{
		"organic_results": [
			{"title": "String Price", "price": "$29.99", "link": "https://a"},
			{"title": "Numeric Price", "price": 15},
			{"title": "No Price"}
		]
	}`), "walmart")

	require.Len(t, got, 3)

	require.Equal(t, 29.99, got[0].Price)
	require.Equal(t, "USD", got[0].Currency)
	require.Equal(t, "https://a", got[0].Link)
	require.Equal(t, "In Stock", got[0].Availability)

	require.Equal(t, 15.0, got[1].Price)
	require.Zero(t, got[2].Price)
}

func TestMapWalmartDedupesAndSkipsTitleless(t *testing.T) {
	got := mapper.WalmartSearch.Map(payload(t, `{
		"organic_results": [
			{"title": "Phone X", "primary_offer": {"offer_price": 10}},
			{"title": "Phone X", "primary_offer": {"offer_price": 10}},
			{"primary_offer": {"offer_price": 5}}
		]
	}`), "walmart")

	require.Len(t, got, 1)
}

func TestMapWalmartIgnoresShoppingResults(t *testing.T) {
	got := mapper.WalmartSearch.Map(payload(t, `{
		"shopping_results": [{"title": "Phone X", "price": 10}]
	}`), "walmart")

	require.Empty(t, got)
}
