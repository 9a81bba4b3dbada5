package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceTypeTest      ServiceType = "test"
	ServiceTypePackage   ServiceType = "package"
	ServiceTypeHomeVisit ServiceType = "home-visit"
	ServiceTypeConsult   ServiceType = "consultation"
)

type BookingStatus string

type PaymentStatus string

const (
	BookingStatusPending         BookingStatus = "pending"
	BookingStatusConfirmed       BookingStatus = "confirmed"
	BookingStatusSampleCollected BookingStatus = "sample_collected"
	BookingStatusProcessing      BookingStatus = "processing"
	BookingStatusCompleted       BookingStatus = "completed"
	BookingStatusCancelled       BookingStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// CartItem is one selected test or package. The cart keeps no uniqueness on
// ID: adding the same test twice yields two entries. Price is the already
// discounted amount; OriginalPrice, when present, is only used to report the
// discount.
type CartItem struct {
	ID            string      `json:"id" validate:"required"`
	Name          string      `json:"name" validate:"required"`
	Price         float64     `json:"price" validate:"gte=0"`
	Type          ServiceType `json:"type" validate:"required,oneof=test package"`
	OriginalPrice *float64    `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Discount      float64     `json:"discount,omitempty"`
}

type BookingUser struct {
	ID    *uuid.UUID `json:"id,omitempty"`
	Name  string     `json:"name" validate:"required"`
	Email string     `json:"email" validate:"required,email"`
	Phone string     `json:"phone"`
}

type CreateBookingRequest struct {
	User    *BookingUser `json:"user" validate:"required"`
	Items   []CartItem   `json:"items" validate:"required,min=1,dive"`
	Address string       `json:"address"`
	Phone   string       `json:"phone"`
}

type Booking struct {
	ID             uuid.UUID     `json:"id"`
	BookingID      string        `json:"booking_id"`
	UserID         *uuid.UUID    `json:"user_id,omitempty"`
	UserName       string        `json:"user_name"`
	UserEmail      string        `json:"user_email"`
	UserPhone      string        `json:"user_phone"`
	UserAddress    string        `json:"user_address"`
	Subtotal       float64       `json:"subtotal"`
	DiscountAmount float64       `json:"discount_amount"`
	TaxAmount      float64       `json:"tax_amount"`
	TotalAmount    float64       `json:"total_amount"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	PaymentMethod  string        `json:"payment_method"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type BookingItem struct {
	ID            uuid.UUID   `json:"id"`
	BookingID     uuid.UUID   `json:"booking_id"`
	ServiceType   ServiceType `json:"service_type"`
	ServiceID     string      `json:"service_id"`
	ServiceName   string      `json:"service_name"`
	Quantity      int         `json:"quantity"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"original_price"`
	Discount      float64     `json:"discount"`
	CreatedAt     time.Time   `json:"created_at"`
}

type BookingWithItems struct {
	Booking
	Items []BookingItem `json:"items"`
}

// ActivityLog is an append-only audit record. Writes are best-effort and
// never block or fail a request.
type ActivityLog struct {
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	Action      string          `json:"action"`
	Description string          `json:"description"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// BookingSummary is the wire shape returned by checkout. ID is a string
// because mock-mode bookings carry a synthetic identifier, not a uuid.
type BookingSummary struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	TotalAmount float64 `json:"total_amount"`
}

type CreateBookingResponse struct {
	Success bool           `json:"success"`
	Booking BookingSummary `json:"booking"`
	Message string         `json:"message,omitempty"`
}
