// Package mocks holds testify mocks for the service and repository interfaces
// used across handler and service tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/tnsurya7/newtons-labs/internal/cart"
	"github.com/tnsurya7/newtons-labs/internal/models"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) Send(ctx context.Context, msg *models.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type NotificationDispatcher struct {
	mock.Mock
}

func (m *NotificationDispatcher) DispatchBookingEmails(ctx context.Context, booking *models.BookingWithItems) models.DispatchResult {
	args := m.Called(ctx, booking)
	return args.Get(0).(models.DispatchResult)
}

func (m *NotificationDispatcher) DispatchConsultationEmails(ctx context.Context, consultation *models.ConsultationConfirmation) models.DispatchResult {
	args := m.Called(ctx, consultation)
	return args.Get(0).(models.DispatchResult)
}

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *BookingRepository) CreateBookingItems(ctx context.Context, bookingID uuid.UUID, items []models.BookingItem) error {
	args := m.Called(ctx, bookingID, items)
	return args.Error(0)
}

func (m *BookingRepository) GetBookingByBookingID(ctx context.Context, bookingID string) (*models.BookingWithItems, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingWithItems), args.Error(1)
}

type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) LogActivity(ctx context.Context, entry *models.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) SearchTests(ctx context.Context, query string) ([]models.Test, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Test), args.Error(1)
}

func (m *CatalogRepository) SearchPackages(ctx context.Context, query string) ([]models.Package, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Package), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type BookingService struct {
	mock.Mock
}

func (m *BookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreateBookingResponse), args.Error(1)
}

func (m *BookingService) GetBooking(ctx context.Context, bookingID string) (*models.BookingWithItems, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingWithItems), args.Error(1)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(cart.Snapshot), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, userID uuid.UUID, item models.CartItem) (cart.Snapshot, error) {
	args := m.Called(ctx, userID, item)
	return args.Get(0).(cart.Snapshot), args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) (cart.Snapshot, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(cart.Snapshot), args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(cart.Snapshot), args.Error(1)
}

type SearchService struct {
	mock.Mock
}

func (m *SearchService) Search(ctx context.Context, query string) (*models.SearchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResponse), args.Error(1)
}

type VisitService struct {
	mock.Mock
}

func (m *VisitService) BookHomeVisit(ctx context.Context, req *models.HomeVisitRequest) (*models.HomeVisitConfirmation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomeVisitConfirmation), args.Error(1)
}

func (m *VisitService) BookConsultation(ctx context.Context, req *models.ConsultationRequest) (*models.ConsultationConfirmation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConsultationConfirmation), args.Error(1)
}

func (m *VisitService) RequestCallback(ctx context.Context, req *models.CallbackRequest) (*models.CallbackTicket, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CallbackTicket), args.Error(1)
}

type UserService struct {
	mock.Mock
}

func (m *UserService) RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserService) LoginUser(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResponse), args.Error(1)
}
