package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/utils"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	CreateBookingItems(ctx context.Context, bookingID uuid.UUID, items []models.BookingItem) error
	GetBookingByBookingID(ctx context.Context, bookingID string) (*models.BookingWithItems, error)
}

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO bookings (id, booking_id, user_id, user_name, user_email, user_phone, user_address,
                subtotal, discount_amount, tax_amount, total_amount, status, payment_status, payment_method,
                created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
              RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(dbCtx, query,
		booking.ID,
		booking.BookingID,
		booking.UserID,
		booking.UserName,
		booking.UserEmail,
		booking.UserPhone,
		booking.UserAddress,
		booking.Subtotal,
		booking.DiscountAmount,
		booking.TaxAmount,
		booking.TotalAmount,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// CreateBookingItems inserts the lines one by one; the first failure aborts
// the rest. The caller treats item persistence as best-effort.
func (r *bookingRepository) CreateBookingItems(ctx context.Context, bookingID uuid.UUID, items []models.BookingItem) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO booking_items (id, booking_id, service_type, service_id, service_name,
                quantity, price, original_price, discount, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`

	for _, item := range items {
		_, err := r.db.ExecContext(dbCtx, query,
			uuid.New(),
			bookingID,
			item.ServiceType,
			item.ServiceID,
			item.ServiceName,
			item.Quantity,
			item.Price,
			item.OriginalPrice,
			item.Discount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert booking item %s: %w", item.ServiceID, err)
		}
	}

	return nil
}

func (r *bookingRepository) GetBookingByBookingID(ctx context.Context, bookingID string) (*models.BookingWithItems, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, booking_id, user_id, user_name, user_email, user_phone, user_address,
                subtotal, discount_amount, tax_amount, total_amount, status, payment_status, payment_method,
                created_at, updated_at
              FROM bookings
              WHERE booking_id = $1`

	var booking models.Booking

	err := r.db.QueryRowContext(dbCtx, query, bookingID).Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.UserID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.UserPhone,
		&booking.UserAddress,
		&booking.Subtotal,
		&booking.DiscountAmount,
		&booking.TaxAmount,
		&booking.TotalAmount,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentMethod,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}

	items, err := r.getBookingItems(dbCtx, booking.ID)
	if err != nil {
		return nil, err
	}

	return &models.BookingWithItems{Booking: booking, Items: items}, nil
}

func (r *bookingRepository) getBookingItems(ctx context.Context, bookingID uuid.UUID) ([]models.BookingItem, error) {

	query := `SELECT id, booking_id, service_type, service_id, service_name, quantity, price, original_price, discount, created_at
              FROM booking_items
              WHERE booking_id = $1
              ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking items: %w", err)
	}
	defer rows.Close()

	var items []models.BookingItem

	for rows.Next() {
		var item models.BookingItem
		if err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.ServiceType,
			&item.ServiceID,
			&item.ServiceName,
			&item.Quantity,
			&item.Price,
			&item.OriginalPrice,
			&item.Discount,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
