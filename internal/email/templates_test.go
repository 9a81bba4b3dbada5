package email

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnsurya7/newtons-labs/internal/models"
)

func sampleBooking() *models.BookingWithItems {
	return &models.BookingWithItems{
		Booking: models.Booking{
			ID:          uuid.New(),
			BookingID:   "BK-MB3K9F2A-7QPZ",
			UserName:    "Priya Sharma",
			UserEmail:   "priya@example.com",
			UserPhone:   "9876543210",
			UserAddress: "12, Gandhi Street, Chennai",
			Subtotal:    800,
			TotalAmount: 800,
		},
		Items: []models.BookingItem{
			{ServiceName: "Complete Blood Count", ServiceType: models.ServiceTypeTest, Price: 500},
			{ServiceName: "Lipid Profile", ServiceType: models.ServiceTypeTest, Price: 300},
		},
	}
}

func TestBookingConfirmation(t *testing.T) {

	// Act
	msg, err := BookingConfirmation(sampleBooking())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", msg.To)
	assert.Contains(t, msg.Subject, "BK-MB3K9F2A-7QPZ")
	assert.Contains(t, msg.HTMLContent, "Complete Blood Count")
	assert.Contains(t, msg.HTMLContent, "Gandhi Street")
	assert.Contains(t, msg.HTMLContent, "₹800.00")
}

func TestAdminBookingAlert(t *testing.T) {

	// Act
	msg, err := AdminBookingAlert(sampleBooking(), "admin@newtonslabs.com", "https://admin.newtonslabs.com")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "admin@newtonslabs.com", msg.To)
	assert.Contains(t, msg.HTMLContent, "https://admin.newtonslabs.com/bookings/BK-MB3K9F2A-7QPZ")
	assert.Contains(t, msg.HTMLContent, "priya@example.com")
}

func TestConsultationTemplatesEscapeUserContent(t *testing.T) {

	// Arrange
	c := &models.ConsultationConfirmation{
		ConsultationID: "CONS1712345678901",
		Name:           "Ravi",
		Phone:          "9876543210",
		Email:          "ravi@example.com",
		Message:        `I have <b>high</b> cholesterol & "borderline" sugar`,
	}

	// Act
	userMsg, err := ConsultationConfirmation(c)
	require.NoError(t, err)
	adminMsg, err := AdminConsultationAlert(c, "admin@newtonslabs.com")
	require.NoError(t, err)

	// Assert: html/template escapes markup that survived sanitization
	assert.NotContains(t, userMsg.HTMLContent, "<b>high</b>")
	assert.Contains(t, userMsg.HTMLContent, "&lt;b&gt;high&lt;/b&gt;")
	assert.Contains(t, adminMsg.Subject, "CONS1712345678901")
}
