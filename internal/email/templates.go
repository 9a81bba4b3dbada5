// Package email renders the transactional messages sent around bookings and
// consultations. Templates are parsed once at init and rendering never does
// I/O, so a render failure is a programming error surfaced to the dispatcher.
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/tnsurya7/newtons-labs/internal/models"
)

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("₹%.2f", v) },
}

var bookingConfirmationTmpl = template.Must(template.New("bookingConfirmation").Funcs(funcs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #1a73e8; color: #ffffff; padding: 24px; text-align: center;">
    <h1 style="margin: 0;">Newton's Labs</h1>
    <p style="margin: 8px 0 0;">Booking Confirmed</p>
  </div>
  <div style="padding: 24px;">
    <p>Dear {{.UserName}},</p>
    <p>Thank you for booking with us. Your booking <strong>{{.BookingID}}</strong> has been confirmed.</p>
    <table style="width: 100%; border-collapse: collapse;">
      <tr style="background: #f5f5f5;">
        <th style="text-align: left; padding: 8px;">Test / Package</th>
        <th style="text-align: right; padding: 8px;">Price</th>
      </tr>
      {{range .Items}}
      <tr>
        <td style="padding: 8px; border-bottom: 1px solid #eeeeee;">{{.ServiceName}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #eeeeee; text-align: right;">{{money .Price}}</td>
      </tr>
      {{end}}
      <tr>
        <td style="padding: 8px;"><strong>Total Paid</strong></td>
        <td style="padding: 8px; text-align: right;"><strong>{{money .TotalAmount}}</strong></td>
      </tr>
    </table>
    {{if .UserAddress}}<p><strong>Sample collection address:</strong> {{.UserAddress}}</p>{{end}}
    <p>Our team will contact you on {{.UserPhone}} to schedule the sample collection.</p>
    <p>Reports are typically available within 24-48 hours of sample collection.</p>
  </div>
  <div style="background: #f5f5f5; padding: 16px; text-align: center; color: #777777; font-size: 12px;">
    Newton's Labs · NABL accredited diagnostics · This is an automated message, please do not reply.
  </div>
</div>
`))

var adminBookingAlertTmpl = template.Must(template.New("adminBookingAlert").Funcs(funcs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New booking received</h2>
  <p><strong>{{.Booking.BookingID}}</strong> · {{money .Booking.TotalAmount}} ({{len .Booking.Items}} item(s))</p>
  <ul>
    <li>Customer: {{.Booking.UserName}}</li>
    <li>Email: {{.Booking.UserEmail}}</li>
    <li>Phone: {{.Booking.UserPhone}}</li>
    {{if .Booking.UserAddress}}<li>Address: {{.Booking.UserAddress}}</li>{{end}}
  </ul>
  <table style="width: 100%; border-collapse: collapse;">
    {{range .Booking.Items}}
    <tr>
      <td style="padding: 4px; border-bottom: 1px solid #eeeeee;">{{.ServiceName}}</td>
      <td style="padding: 4px; border-bottom: 1px solid #eeeeee;">{{.ServiceType}}</td>
      <td style="padding: 4px; border-bottom: 1px solid #eeeeee; text-align: right;">{{money .Price}}</td>
    </tr>
    {{end}}
  </table>
  <p><a href="{{.AdminPanelURL}}/bookings/{{.Booking.BookingID}}">Open in admin panel</a></p>
</div>
`))

var consultationConfirmationTmpl = template.Must(template.New("consultationConfirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #1a73e8; color: #ffffff; padding: 24px; text-align: center;">
    <h1 style="margin: 0;">Newton's Labs</h1>
    <p style="margin: 8px 0 0;">Consultation Request Received</p>
  </div>
  <div style="padding: 24px;">
    <p>Dear {{.Name}},</p>
    <p>We have received your consultation request <strong>{{.ConsultationID}}</strong>.</p>
    <p>One of our health advisors will call you on {{.Phone}} within 24 hours.</p>
    <p><strong>Your message:</strong></p>
    <blockquote style="border-left: 3px solid #1a73e8; margin: 0; padding: 8px 16px; color: #555555;">{{.Message}}</blockquote>
  </div>
  <div style="background: #f5f5f5; padding: 16px; text-align: center; color: #777777; font-size: 12px;">
    Newton's Labs · This is an automated message, please do not reply.
  </div>
</div>
`))

var adminConsultationAlertTmpl = template.Must(template.New("adminConsultationAlert").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New consultation request</h2>
  <p><strong>{{.ConsultationID}}</strong></p>
  <ul>
    <li>Name: {{.Name}}</li>
    <li>Phone: {{.Phone}}</li>
    <li>Email: {{.Email}}</li>
  </ul>
  <p><strong>Message:</strong></p>
  <p>{{.Message}}</p>
</div>
`))

type adminBookingData struct {
	Booking       *models.BookingWithItems
	AdminPanelURL string
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// BookingConfirmation builds the customer-facing confirmation message.
func BookingConfirmation(booking *models.BookingWithItems) (*models.EmailMessage, error) {

	html, err := render(bookingConfirmationTmpl, booking)
	if err != nil {
		return nil, err
	}

	return &models.EmailMessage{
		To:          booking.UserEmail,
		Subject:     fmt.Sprintf("Booking Confirmed - %s | Newton's Labs", booking.BookingID),
		Content:     fmt.Sprintf("Your booking %s is confirmed. Total paid: %.2f.", booking.BookingID, booking.TotalAmount),
		HTMLContent: html,
	}, nil
}

// AdminBookingAlert builds the internal notification for a new booking.
func AdminBookingAlert(booking *models.BookingWithItems, adminEmail string, adminPanelURL string) (*models.EmailMessage, error) {

	html, err := render(adminBookingAlertTmpl, adminBookingData{Booking: booking, AdminPanelURL: adminPanelURL})
	if err != nil {
		return nil, err
	}

	return &models.EmailMessage{
		To:          adminEmail,
		Subject:     fmt.Sprintf("New Booking: %s (%.2f)", booking.BookingID, booking.TotalAmount),
		Content:     fmt.Sprintf("New booking %s from %s (%s).", booking.BookingID, booking.UserName, booking.UserEmail),
		HTMLContent: html,
	}, nil
}

// ConsultationConfirmation builds the customer-facing acknowledgement.
func ConsultationConfirmation(c *models.ConsultationConfirmation) (*models.EmailMessage, error) {

	html, err := render(consultationConfirmationTmpl, c)
	if err != nil {
		return nil, err
	}

	return &models.EmailMessage{
		To:          c.Email,
		Subject:     fmt.Sprintf("Consultation Request Received - %s | Newton's Labs", c.ConsultationID),
		Content:     fmt.Sprintf("We received your consultation request %s and will call you within 24 hours.", c.ConsultationID),
		HTMLContent: html,
	}, nil
}

// AdminConsultationAlert builds the internal notification for a consultation.
func AdminConsultationAlert(c *models.ConsultationConfirmation, adminEmail string) (*models.EmailMessage, error) {

	html, err := render(adminConsultationAlertTmpl, c)
	if err != nil {
		return nil, err
	}

	return &models.EmailMessage{
		To:          adminEmail,
		Subject:     fmt.Sprintf("New Consultation Request: %s", c.ConsultationID),
		Content:     fmt.Sprintf("New consultation request %s from %s (%s).", c.ConsultationID, c.Name, c.Phone),
		HTMLContent: html,
	}, nil
}
