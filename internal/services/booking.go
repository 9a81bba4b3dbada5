package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	apperrors "github.com/tnsurya7/newtons-labs/internal/errors"
	"github.com/tnsurya7/newtons-labs/internal/metrics"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/repositories"
	"github.com/tnsurya7/newtons-labs/internal/utils"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*models.BookingWithItems, error)
}

// bookingService runs checkout as a linear pipeline: price, persist the
// header, persist the items, re-read the composed booking, then notify and
// audit off the request path. Only the header insert can fail the request;
// everything after it is best-effort, so a booking may exist with zero items.
type bookingService struct {
	repo     repositories.BookingRepository  // nil when no database is configured
	activity repositories.ActivityRepository // nil when no database is configured
	notifier NotificationDispatcher
}

func NewBookingService(repo repositories.BookingRepository, activity repositories.ActivityRepository, notifier NotificationDispatcher) BookingService {
	return &bookingService{repo: repo, activity: activity, notifier: notifier}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	if req.User == nil || len(req.Items) == 0 {
		return nil, apperrors.ValidationError("Missing required booking information")
	}

	if s.repo == nil {
		return s.createMockBooking(logger, req), nil
	}

	totals := ComputeTotals(req.Items)

	phone := req.Phone
	if phone == "" {
		phone = req.User.Phone
	}

	booking := &models.Booking{
		ID:             uuid.New(),
		BookingID:      utils.GenerateBookingID(),
		UserID:         req.User.ID,
		UserName:       req.User.Name,
		UserEmail:      req.User.Email,
		UserPhone:      phone,
		UserAddress:    req.Address,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		TaxAmount:      totals.TaxAmount,
		TotalAmount:    totals.TotalAmount,
		Status:         models.BookingStatusPending,
		PaymentStatus:  models.PaymentStatusPaid,
		PaymentMethod:  "online",
	}

	logger = logger.With(slog.String("bookingId", booking.BookingID))

	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		logger.Error("Failed to persist booking", slog.String("error", err.Error()))
		return nil, apperrors.DatabaseError("Failed to create booking").WithError(err)
	}

	// Item lines are best-effort: a failure here leaves a header-only
	// booking, surfaced in the logs but not to the customer.
	if err := s.repo.CreateBookingItems(ctx, booking.ID, buildBookingItems(booking.ID, req.Items)); err != nil {
		logger.Warn("Failed to persist booking items", slog.String("error", err.Error()))
	}

	// Notifications need the composed booking; if the re-read fails they are
	// skipped rather than sent half-empty. Either way checkout succeeds.
	if complete, err := s.repo.GetBookingByBookingID(ctx, booking.BookingID); err != nil {
		logger.Warn("Failed to re-read booking after insert, skipping notification", slog.String("error", err.Error()))
	} else {
		notifyCtx := context.WithoutCancel(ctx)
		go func() {
			result := s.notifier.DispatchBookingEmails(notifyCtx, complete)
			logger.Info("Booking notification dispatched",
				slog.Bool("success", result.Success),
				slog.String("userMode", result.UserEmail.Mode),
				slog.String("adminMode", result.AdminEmail.Mode))
		}()
	}

	s.logBookingCreated(ctx, logger, booking, len(req.Items))

	metrics.BookingsCreatedTotal.WithLabelValues("persisted").Inc()
	logger.Info("Booking created", slog.Float64("totalAmount", booking.TotalAmount), slog.Int("items", len(req.Items)))

	return &models.CreateBookingResponse{
		Success: true,
		Booking: models.BookingSummary{
			ID:          booking.ID.String(),
			BookingID:   booking.BookingID,
			TotalAmount: booking.TotalAmount,
		},
	}, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*models.BookingWithItems, error) {

	if s.repo == nil {
		return nil, apperrors.NotFoundError("Booking not found")
	}

	booking, err := s.repo.GetBookingByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Booking not found")
		}
		return nil, apperrors.DatabaseError("Failed to fetch booking").WithError(err)
	}

	return booking, nil
}

// createMockBooking services checkout when nothing is persisted: the customer
// still gets a reference and totals, clearly marked as a test booking.
func (s *bookingService) createMockBooking(logger *slog.Logger, req *models.CreateBookingRequest) *models.CreateBookingResponse {

	totals := ComputeTotals(req.Items)
	mockID := utils.GenerateMockBookingID()

	metrics.BookingsCreatedTotal.WithLabelValues("mock").Inc()
	logger.Info("Mock booking created, database not configured",
		slog.String("bookingId", mockID),
		slog.Float64("totalAmount", totals.TotalAmount))

	return &models.CreateBookingResponse{
		Success: true,
		Booking: models.BookingSummary{
			ID:          mockID,
			BookingID:   mockID,
			TotalAmount: totals.TotalAmount,
		},
		Message: "Database not configured. This is a mock booking for testing.",
	}
}

func buildBookingItems(bookingID uuid.UUID, items []models.CartItem) []models.BookingItem {

	bookingItems := make([]models.BookingItem, 0, len(items))

	for _, item := range items {
		originalPrice := item.Price
		if item.OriginalPrice != nil {
			originalPrice = *item.OriginalPrice
		}

		bookingItems = append(bookingItems, models.BookingItem{
			BookingID:     bookingID,
			ServiceType:   item.Type,
			ServiceID:     item.ID,
			ServiceName:   item.Name,
			Quantity:      1,
			Price:         item.Price,
			OriginalPrice: originalPrice,
			Discount:      item.Discount,
		})
	}

	return bookingItems
}

func (s *bookingService) logBookingCreated(ctx context.Context, logger *slog.Logger, booking *models.Booking, itemCount int) {

	if s.activity == nil {
		return
	}

	metadata, err := json.Marshal(map[string]any{
		"booking_id":   booking.BookingID,
		"total_amount": booking.TotalAmount,
		"items_count":  itemCount,
	})
	if err != nil {
		return
	}

	entry := &models.ActivityLog{
		UserID:      booking.UserID,
		Action:      "booking_created",
		Description: "Booking " + booking.BookingID + " created",
		Metadata:    metadata,
	}

	if err := s.activity.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to write activity log", slog.String("error", err.Error()))
	}
}
