package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tnsurya7/newtons-labs/internal/catalog"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/services/mocks"
)

// memoryCache is a minimal in-process stand-in for the redis cache.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func fallbackCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

func TestSearch(t *testing.T) {

	t.Run("Queries under two characters return nothing", func(t *testing.T) {

		// Arrange
		svc := NewSearchService(nil, fallbackCatalog(t), nil, time.Minute)

		// Act
		resp, err := svc.Search(context.Background(), " c ")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.Zero(t, resp.Total)
	})

	t.Run("Fallback catalog serves search without a database", func(t *testing.T) {

		// Arrange
		svc := NewSearchService(nil, fallbackCatalog(t), nil, time.Minute)

		// Act
		resp, err := svc.Search(context.Background(), "thyroid")

		// Assert
		require.NoError(t, err)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, "Thyroid Profile (T3 T4 TSH)", resp.Results[0].Name)
	})

	t.Run("Name-prefix matches rank first", func(t *testing.T) {

		// Arrange
		repo := new(mocks.CatalogRepository)
		repo.On("SearchTests", mock.Anything, "vita").Return([]models.Test{
			{ID: "t-multi", Name: "Multivitamin Panel", Price: 700},
			{ID: "t-vitd", Name: "Vitamin D (25-OH)", Price: 899},
		}, nil).Once()
		repo.On("SearchPackages", mock.Anything, "vita").Return(nil, nil).Once()

		svc := NewSearchService(repo, nil, nil, time.Minute)

		// Act
		resp, err := svc.Search(context.Background(), "Vita")

		// Assert
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "Vitamin D (25-OH)", resp.Results[0].Name)
		assert.Equal(t, "Multivitamin Panel", resp.Results[1].Name)
		repo.AssertExpectations(t)
	})

	t.Run("Results cap at ten but total reports all matches", func(t *testing.T) {

		// Arrange
		var tests []models.Test
		for _, name := range []string{
			"Blood Test A", "Blood Test B", "Blood Test C", "Blood Test D",
			"Blood Test E", "Blood Test F", "Blood Test G", "Blood Test H",
			"Blood Test I", "Blood Test J", "Blood Test K", "Blood Test L",
		} {
			tests = append(tests, models.Test{ID: name, Name: name, Price: 100})
		}

		repo := new(mocks.CatalogRepository)
		repo.On("SearchTests", mock.Anything, "blood").Return(tests, nil).Once()
		repo.On("SearchPackages", mock.Anything, "blood").Return(nil, nil).Once()

		svc := NewSearchService(repo, nil, nil, time.Minute)

		// Act
		resp, err := svc.Search(context.Background(), "blood")

		// Assert
		require.NoError(t, err)
		assert.Len(t, resp.Results, 10)
		assert.Equal(t, 12, resp.Total)
	})

	t.Run("Cache hit skips the repository", func(t *testing.T) {

		// Arrange
		repo := new(mocks.CatalogRepository)
		repo.On("SearchTests", mock.Anything, "cbc").Return([]models.Test{
			{ID: "test-cbc", Name: "Complete Blood Count (CBC)", Price: 299},
		}, nil).Once()
		repo.On("SearchPackages", mock.Anything, "cbc").Return(nil, nil).Once()

		c := newMemoryCache()
		svc := NewSearchService(repo, nil, c, time.Minute)

		// Act: second call must come from cache
		first, err := svc.Search(context.Background(), "cbc")
		require.NoError(t, err)
		second, err := svc.Search(context.Background(), "CBC")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "SearchTests", 1)
	})
}
