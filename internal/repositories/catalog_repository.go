package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/utils"
)

type CatalogRepository interface {
	SearchTests(ctx context.Context, query string) ([]models.Test, error)
	SearchPackages(ctx context.Context, query string) ([]models.Package, error)
}

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) SearchTests(ctx context.Context, query string) ([]models.Test, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stmt := `SELECT id, name, price, original_price, discount, parameters, report_time, fasting_required,
                COALESCE(description, ''), COALESCE(category, ''), status, created_at, updated_at
             FROM tests
             WHERE status = 'active'
               AND (name ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`

	rows, err := r.db.QueryContext(dbCtx, stmt, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search tests: %w", err)
	}
	defer rows.Close()

	var tests []models.Test

	for rows.Next() {
		var t models.Test
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Price, &t.OriginalPrice, &t.Discount,
			&t.Parameters, &t.ReportTime, &t.FastingRequired,
			&t.Description, &t.Category, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test: %w", err)
		}
		tests = append(tests, t)
	}

	return tests, rows.Err()
}

func (r *catalogRepository) SearchPackages(ctx context.Context, query string) ([]models.Package, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stmt := `SELECT id, name, price, original_price, discount, tests_count, popular,
                COALESCE(description, ''), status, created_at, updated_at
             FROM packages
             WHERE status = 'active'
               AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`

	rows, err := r.db.QueryContext(dbCtx, stmt, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search packages: %w", err)
	}
	defer rows.Close()

	var packages []models.Package

	for rows.Next() {
		var p models.Package
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Discount,
			&p.TestsCount, &p.Popular, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, p)
	}

	return packages, rows.Err()
}
