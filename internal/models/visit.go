package models

import "time"

type HomeVisitRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

type HomeVisitConfirmation struct {
	BookingID        string    `json:"bookingId"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	EstimatedArrival string    `json:"estimatedArrival"`
	BookedAt         time.Time `json:"bookedAt"`
}

type ConsultationRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ConsultationConfirmation struct {
	ConsultationID string    `json:"consultationId"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	BookedAt       time.Time `json:"bookedAt"`
}

type CallbackRequest struct {
	Phone string `json:"phone" validate:"required"`
	Name  string `json:"name,omitempty"`
}

type CallbackTicket struct {
	TicketID          string    `json:"ticketId"`
	Phone             string    `json:"phone"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	EstimatedCallTime string    `json:"estimatedCallTime"`
	QueuePosition     int       `json:"queuePosition"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Location struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Pincode  string   `json:"pincode"`
	Phone    string   `json:"phone"`
	Distance string   `json:"distance"`
	Timings  string   `json:"timings"`
	Services []string `json:"services"`
}
