package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/utils"
)

type ActivityRepository interface {
	LogActivity(ctx context.Context, entry *models.ActivityLog) error
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) LogActivity(ctx context.Context, entry *models.ActivityLog) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO activity_logs (user_id, action, description, metadata, created_at)
              VALUES ($1, $2, $3, $4, NOW())`

	_, err := r.db.ExecContext(dbCtx, query, entry.UserID, entry.Action, entry.Description, entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}

	return nil
}
