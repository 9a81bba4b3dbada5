package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	"github.com/tnsurya7/newtons-labs/internal/cache"
	"github.com/tnsurya7/newtons-labs/internal/catalog"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/repositories"
)

const maxSearchResults = 10

type SearchService interface {
	Search(ctx context.Context, query string) (*models.SearchResponse, error)
}

type searchService struct {
	repo      repositories.CatalogRepository // nil when no database is configured
	fallback  *catalog.Catalog
	cache     cache.Cache // nil when no redis is configured
	searchTTL time.Duration
}

func NewSearchService(repo repositories.CatalogRepository, fallback *catalog.Catalog, searchCache cache.Cache, searchTTL time.Duration) SearchService {
	return &searchService{
		repo:      repo,
		fallback:  fallback,
		cache:     searchCache,
		searchTTL: searchTTL,
	}
}

// Search matches tests and packages by substring. Queries under two
// characters return an empty result set rather than the whole catalog. Total
// reports the full match count even though the list is capped.
func (s *searchService) Search(ctx context.Context, query string) (*models.SearchResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	q := strings.ToLower(strings.TrimSpace(query))

	if len(q) < 2 {
		return &models.SearchResponse{Results: []models.SearchResult{}, Total: 0}, nil
	}

	cacheKey := "search:" + q

	if s.cache != nil {
		var cached models.SearchResponse
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warn("Search cache lookup failed", slog.String("error", err.Error()))
		} else if found {
			return &cached, nil
		}
	}

	results, err := s.match(ctx, q)
	if err != nil {
		return nil, err
	}

	sortResults(results, q)

	total := len(results)
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	response := &models.SearchResponse{Results: results, Total: total}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, response, s.searchTTL); err != nil {
			logger.Warn("Search cache store failed", slog.String("error", err.Error()))
		}
	}

	return response, nil
}

func (s *searchService) match(ctx context.Context, q string) ([]models.SearchResult, error) {

	if s.repo == nil {
		return s.fallback.Search(q), nil
	}

	tests, err := s.repo.SearchTests(ctx, q)
	if err != nil {
		return nil, err
	}

	packages, err := s.repo.SearchPackages(ctx, q)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(tests)+len(packages))

	for _, t := range tests {
		results = append(results, models.SearchResult{
			ID:            t.ID,
			Name:          t.Name,
			Type:          models.ServiceTypeTest,
			Price:         t.Price,
			OriginalPrice: t.OriginalPrice,
			Discount:      t.Discount,
			Details:       fmt.Sprintf("%d parameters · report in %s", t.Parameters, t.ReportTime),
			Category:      t.Category,
		})
	}

	for _, p := range packages {
		results = append(results, models.SearchResult{
			ID:            p.ID,
			Name:          p.Name,
			Type:          models.ServiceTypePackage,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Discount:      p.Discount,
			Details:       fmt.Sprintf("%d tests included", p.TestsCount),
			Popular:       p.Popular,
		})
	}

	return results, nil
}

// sortResults puts name-prefix matches ahead of everything else, then sorts
// alphabetically within each group.
func sortResults(results []models.SearchResult, q string) {
	sort.SliceStable(results, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(results[i].Name), q)
		pj := strings.HasPrefix(strings.ToLower(results[j].Name), q)
		if pi != pj {
			return pi
		}
		return results[i].Name < results[j].Name
	})
}
