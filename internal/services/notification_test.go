package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tnsurya7/newtons-labs/internal/config"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/services/mocks"
)

func dispatcherConfig() *config.SendGrid {
	return &config.SendGrid{
		AdminEmail:    "admin@newtonslabs.com",
		AdminPanelURL: "https://admin.newtonslabs.com",
	}
}

func dispatchBooking() *models.BookingWithItems {
	return &models.BookingWithItems{
		Booking: models.Booking{
			BookingID:   "BK-MB3K9F2A-7QPZ",
			UserName:    "Priya Sharma",
			UserEmail:   "priya@example.com",
			UserPhone:   "9876543210",
			TotalAmount: 800,
		},
		Items: []models.BookingItem{
			{ServiceName: "Complete Blood Count", ServiceType: models.ServiceTypeTest, Price: 500},
		},
	}
}

func TestDispatchBookingEmails(t *testing.T) {

	t.Run("Both legs sent", func(t *testing.T) {

		// Arrange
		emailSvc := new(mocks.EmailService)
		emailSvc.On("Send", mock.Anything, mock.MatchedBy(func(m *models.EmailMessage) bool {
			return m.To == "priya@example.com"
		})).Return(nil).Once()
		emailSvc.On("Send", mock.Anything, mock.MatchedBy(func(m *models.EmailMessage) bool {
			return m.To == "admin@newtonslabs.com"
		})).Return(nil).Once()

		d := NewNotificationDispatcher(emailSvc, dispatcherConfig())

		// Act
		result := d.DispatchBookingEmails(context.Background(), dispatchBooking())

		// Assert
		assert.True(t, result.Success)
		assert.True(t, result.UserEmail.Success)
		assert.True(t, result.AdminEmail.Success)
		assert.Equal(t, models.EmailModeSent, result.UserEmail.Mode)
		emailSvc.AssertExpectations(t)
	})

	t.Run("One failed leg still counts as success", func(t *testing.T) {

		// Arrange
		emailSvc := new(mocks.EmailService)
		emailSvc.On("Send", mock.Anything, mock.MatchedBy(func(m *models.EmailMessage) bool {
			return m.To == "priya@example.com"
		})).Return(errors.New("mailbox unavailable")).Once()
		emailSvc.On("Send", mock.Anything, mock.MatchedBy(func(m *models.EmailMessage) bool {
			return m.To == "admin@newtonslabs.com"
		})).Return(nil).Once()

		d := NewNotificationDispatcher(emailSvc, dispatcherConfig())

		// Act
		result := d.DispatchBookingEmails(context.Background(), dispatchBooking())

		// Assert
		assert.True(t, result.Success)
		assert.False(t, result.UserEmail.Success)
		assert.Equal(t, "mailbox unavailable", result.UserEmail.Error)
		assert.True(t, result.AdminEmail.Success)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Both legs failed", func(t *testing.T) {

		// Arrange
		emailSvc := new(mocks.EmailService)
		emailSvc.On("Send", mock.Anything, mock.Anything).Return(errors.New("transport down")).Twice()

		d := NewNotificationDispatcher(emailSvc, dispatcherConfig())

		// Act
		result := d.DispatchBookingEmails(context.Background(), dispatchBooking())

		// Assert
		assert.False(t, result.Success)
		emailSvc.AssertExpectations(t)
	})

	t.Run("No transport configured logs instead of sending", func(t *testing.T) {

		// Arrange
		d := NewNotificationDispatcher(nil, dispatcherConfig())

		// Act
		result := d.DispatchBookingEmails(context.Background(), dispatchBooking())

		// Assert
		assert.True(t, result.Success)
		assert.Equal(t, models.EmailModeLogged, result.UserEmail.Mode)
		assert.Equal(t, models.EmailModeLogged, result.AdminEmail.Mode)
	})
}

func TestDispatchConsultationEmails(t *testing.T) {

	// Arrange
	emailSvc := new(mocks.EmailService)
	emailSvc.On("Send", mock.Anything, mock.MatchedBy(func(m *models.EmailMessage) bool {
		return m.To == "ravi@example.com"
	})).Return(nil).Once()
	emailSvc.On("Send", mock.Anything, mock.MatchedBy(func(m *models.EmailMessage) bool {
		return m.To == "admin@newtonslabs.com"
	})).Return(nil).Once()

	d := NewNotificationDispatcher(emailSvc, dispatcherConfig())

	// Act
	result := d.DispatchConsultationEmails(context.Background(), &models.ConsultationConfirmation{
		ConsultationID: "CONS1712345678901",
		Name:           "Ravi",
		Phone:          "9876543210",
		Email:          "ravi@example.com",
		Message:        "Need advice on thyroid tests",
	})

	// Assert
	assert.True(t, result.Success)
	emailSvc.AssertExpectations(t)
}
