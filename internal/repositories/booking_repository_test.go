package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnsurya7/newtons-labs/internal/models"
)

func newBookingRepoMock(t *testing.T) (BookingRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBookingRepository(db), mock
}

func TestCreateBooking(t *testing.T) {

	t.Run("Successful insert fills timestamps", func(t *testing.T) {

		// Arrange
		repo, mock := newBookingRepoMock(t)

		booking := &models.Booking{
			ID:            uuid.New(),
			BookingID:     "BK-MB3K9F2A-7QPZ",
			UserName:      "Priya Sharma",
			UserEmail:     "priya@example.com",
			UserPhone:     "9876543210",
			Subtotal:      800,
			TotalAmount:   800,
			Status:        models.BookingStatusPending,
			PaymentStatus: models.PaymentStatusPaid,
			PaymentMethod: "online",
		}

		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
			WithArgs(
				booking.ID, booking.BookingID, nil, booking.UserName, booking.UserEmail,
				booking.UserPhone, "", 800.0, 0.0, 0.0, 800.0,
				string(models.BookingStatusPending), string(models.PaymentStatusPaid), "online",
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateBooking(context.Background(), booking)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, now, booking.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure is reported", func(t *testing.T) {

		// Arrange
		repo, mock := newBookingRepoMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
			WillReturnError(sql.ErrConnDone)

		// Act
		err := repo.CreateBooking(context.Background(), &models.Booking{ID: uuid.New()})

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateBookingItems(t *testing.T) {

	t.Run("Each line becomes one insert", func(t *testing.T) {

		// Arrange
		repo, mock := newBookingRepoMock(t)
		bookingID := uuid.New()

		items := []models.BookingItem{
			{ServiceType: models.ServiceTypeTest, ServiceID: "test-cbc", ServiceName: "Complete Blood Count", Quantity: 1, Price: 500, OriginalPrice: 600},
			{ServiceType: models.ServiceTypeTest, ServiceID: "test-lipid", ServiceName: "Lipid Profile", Quantity: 1, Price: 300, OriginalPrice: 300},
		}

		for range items {
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_items")).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		// Act
		err := repo.CreateBookingItems(context.Background(), bookingID, items)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("First failing line aborts the rest", func(t *testing.T) {

		// Arrange
		repo, mock := newBookingRepoMock(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_items")).
			WillReturnError(sql.ErrConnDone)

		items := []models.BookingItem{
			{ServiceID: "test-cbc", ServiceName: "Complete Blood Count"},
			{ServiceID: "test-lipid", ServiceName: "Lipid Profile"},
		}

		// Act
		err := repo.CreateBookingItems(context.Background(), uuid.New(), items)

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetBookingByBookingID(t *testing.T) {

	headerColumns := []string{
		"id", "booking_id", "user_id", "user_name", "user_email", "user_phone", "user_address",
		"subtotal", "discount_amount", "tax_amount", "total_amount", "status", "payment_status",
		"payment_method", "created_at", "updated_at",
	}

	itemColumns := []string{
		"id", "booking_id", "service_type", "service_id", "service_name",
		"quantity", "price", "original_price", "discount", "created_at",
	}

	t.Run("Header and items are composed", func(t *testing.T) {

		// Arrange
		repo, mock := newBookingRepoMock(t)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
			WithArgs("BK-MB3K9F2A-7QPZ").
			WillReturnRows(sqlmock.NewRows(headerColumns).AddRow(
				id, "BK-MB3K9F2A-7QPZ", nil, "Priya Sharma", "priya@example.com", "9876543210", "",
				800.0, 100.0, 0.0, 800.0, "pending", "paid", "online", now, now,
			))

		mock.ExpectQuery(regexp.QuoteMeta("FROM booking_items")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(
				uuid.New(), id, "test", "test-cbc", "Complete Blood Count", 1, 500.0, 600.0, 0.0, now,
			))

		// Act
		booking, err := repo.GetBookingByBookingID(context.Background(), "BK-MB3K9F2A-7QPZ")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "BK-MB3K9F2A-7QPZ", booking.BookingID)
		require.Len(t, booking.Items, 1)
		assert.Equal(t, "Complete Blood Count", booking.Items[0].ServiceName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Header with no item rows yields an empty item list", func(t *testing.T) {

		// Arrange
		repo, mock := newBookingRepoMock(t)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
			WithArgs("BK-HEADERONLY-0001").
			WillReturnRows(sqlmock.NewRows(headerColumns).AddRow(
				id, "BK-HEADERONLY-0001", nil, "Priya Sharma", "priya@example.com", "9876543210", "",
				800.0, 0.0, 0.0, 800.0, "pending", "paid", "online", now, now,
			))

		mock.ExpectQuery(regexp.QuoteMeta("FROM booking_items")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(itemColumns))

		// Act
		booking, err := repo.GetBookingByBookingID(context.Background(), "BK-HEADERONLY-0001")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, booking.Items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown reference returns ErrNoRows", func(t *testing.T) {

		// Arrange
		repo, mock := newBookingRepoMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
			WithArgs("BK-NOPE-0000").
			WillReturnRows(sqlmock.NewRows(headerColumns))

		// Act
		booking, err := repo.GetBookingByBookingID(context.Background(), "BK-NOPE-0000")

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, booking)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
