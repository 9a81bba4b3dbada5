// Package catalog embeds a curated snapshot of the most booked tests and
// health packages. It backs search when no database is configured and is the
// source for the storefront's featured sections.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tnsurya7/newtons-labs/internal/models"
)

//go:embed catalog.json
var catalogJSON []byte

type entry struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      float64 `json:"discount"`
	Parameters    int     `json:"parameters,omitempty"`
	ReportTime    string  `json:"reportTime,omitempty"`
	TestsCount    int     `json:"testsCount,omitempty"`
	Popular       bool    `json:"popular,omitempty"`
	Category      string  `json:"category,omitempty"`
	Description   string  `json:"description,omitempty"`
}

type Catalog struct {
	Tests    []entry `json:"tests"`
	Packages []entry `json:"packages"`
}

func Load() (*Catalog, error) {

	var c Catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	return &c, nil
}

// Search does a case-insensitive substring match over name, category and
// description, mirroring the database-backed search.
func (c *Catalog) Search(query string) []models.SearchResult {

	q := strings.ToLower(query)
	var results []models.SearchResult

	for _, t := range c.Tests {
		if matches(&t, q) {
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
	}

	for _, p := range c.Packages {
		if matches(&p, q) {
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
	}

	return results
}

func matches(e *entry, q string) bool {
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Category), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}
