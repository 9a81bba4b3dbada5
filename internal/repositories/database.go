package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	_ "github.com/lib/pq"
	"github.com/tnsurya7/newtons-labs/internal/config"
	"github.com/tnsurya7/newtons-labs/internal/utils"
)

// Repository bundles the sql-backed stores behind a single connection pool.
type Repository struct {
	DB       *sql.DB
	Booking  BookingRepository
	Activity ActivityRepository
	Catalog  CatalogRepository
	User     UserRepository
}

func NewRepository(cfg *config.Database) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := utils.WithDBTimeout(context.Background())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{
		DB:       db,
		Booking:  NewBookingRepository(db),
		Activity: NewActivityRepository(db),
		Catalog:  NewCatalogRepository(db),
		User:     NewUserRepository(db),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
