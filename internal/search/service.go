// Package search aggregates product listings across the retailers
// configured for a country.
package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/RiteshTiwari1/price-comparison-tool/internal/config"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/countries"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/dedupe"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/mapper"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/models"
)

// Fetcher executes one upstream query and returns the decoded payload.
type Fetcher interface {
	Fetch(ctx context.Context, params map[string]string) (map[string]any, error)
}

// Service fans a query out across a country's retailers, sequentially, and
// normalizes the combined result.
type Service struct {
	cfg      *config.API
	log      *slog.Logger
	upstream Fetcher
}

// New builds a search service.
func New(cfg *config.API, upstream Fetcher, log *slog.Logger) *Service {
	return &Service{cfg: cfg, log: log, upstream: upstream}
}

// Search resolves the country to its retailer list, queries each retailer in
// order until the result threshold is reached, and returns the deduplicated
// list sorted by ascending price. It never returns an error: upstream and
// parse failures degrade to partial or empty results.
func (s *Service) Search(ctx context.Context, query, country string) []models.Product {
	if s.cfg.SerpAPIKey == "" {
		s.log.Error("search rejected: SERPAPI_API_KEY is not configured")
		return []models.Product{models.MissingKeyResult()}
	}

	log := s.log.With(
		slog.String("search_id", uuid.NewString()),
		slog.String("query", query),
		slog.String("country", country),
	)

	websites := countries.WebsitesFor(country)
	if len(websites) == 0 {
		log.Warn("no retailers configured for country")
		return []models.Product{}
	}

	var all []models.Product
	// Retailers are queried one at a time on purpose: it keeps upstream
	// load flat and lets the threshold cut the fan-out short.
	for _, website := range websites {
		found, err := s.fetchWebsite(ctx, website, country, query)
		if err != nil {
			log.Warn("retailer query failed, continuing",
				slog.String("website", website),
				slog.Any("err", err),
			)
			continue
		}

		log.Info("retailer query done",
			slog.String("website", website),
			slog.Int("results", len(found)),
		)
		all = append(all, found...)

		if len(all) >= s.cfg.ResultThreshold {
			log.Info("result threshold reached, stopping fan-out",
				slog.Int("results", len(all)),
			)
			break
		}
	}

	if len(all) == 0 {
		all = s.fetchGeneric(ctx, log, country, query)
	}

	unique := dedupe.Products(all)
	sortByPrice(unique)

	log.Info("search finished",
		slog.Int("raw", len(all)),
		slog.Int("unique", len(unique)),
	)
	return unique
}

func (s *Service) fetchWebsite(ctx context.Context, website, country, query string) ([]models.Product, error) {
	engine := mapper.ForWebsite(website)
	payload, err := s.upstream.Fetch(ctx, engine.Params(website, country, query))
	if err != nil {
		return nil, err
	}
	return engine.Map(payload, website), nil
}

// fetchGeneric issues the catch-all shopping query used when every retailer
// came back empty.
func (s *Service) fetchGeneric(ctx context.Context, log *slog.Logger, country, query string) []models.Product {
	log.Info("no retailer results, falling back to generic query")

	payload, err := s.upstream.Fetch(ctx, mapper.GoogleShopping.Params("", country, query))
	if err != nil {
		log.Warn("generic fallback query failed", slog.Any("err", err))
		return nil
	}

	found := mapper.MapGeneric(payload)
	log.Info("generic fallback query done", slog.Int("results", len(found)))
	return found
}

// sortByPrice orders records by ascending price in place, keeping the
// relative order of equal prices.
func sortByPrice(items []models.Product) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Price < items[j].Price
	})
}
