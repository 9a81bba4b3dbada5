package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	"github.com/tnsurya7/newtons-labs/internal/config"
	"github.com/tnsurya7/newtons-labs/internal/email"
	"github.com/tnsurya7/newtons-labs/internal/metrics"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/pkg/sendgrid"
)

// NotificationDispatcher sends the customer and admin messages for an event in
// parallel. The two legs are independent: one failing never aborts the other,
// and the aggregate is success when at least one leg went through.
type NotificationDispatcher interface {
	DispatchBookingEmails(ctx context.Context, booking *models.BookingWithItems) models.DispatchResult
	DispatchConsultationEmails(ctx context.Context, consultation *models.ConsultationConfirmation) models.DispatchResult
}

type notificationDispatcher struct {
	email         sendgrid.EmailService // nil when no mail transport is configured
	adminEmail    string
	adminPanelURL string
}

func NewNotificationDispatcher(emailService sendgrid.EmailService, cfg *config.SendGrid) NotificationDispatcher {
	return &notificationDispatcher{
		email:         emailService,
		adminEmail:    cfg.AdminEmail,
		adminPanelURL: cfg.AdminPanelURL,
	}
}

func (d *notificationDispatcher) DispatchBookingEmails(ctx context.Context, booking *models.BookingWithItems) models.DispatchResult {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("bookingId", booking.BookingID))

	return d.dispatchPair(ctx, logger,
		func() (*models.EmailMessage, error) { return email.BookingConfirmation(booking) },
		func() (*models.EmailMessage, error) {
			return email.AdminBookingAlert(booking, d.adminEmail, d.adminPanelURL)
		},
	)
}

func (d *notificationDispatcher) DispatchConsultationEmails(ctx context.Context, consultation *models.ConsultationConfirmation) models.DispatchResult {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("consultationId", consultation.ConsultationID))

	return d.dispatchPair(ctx, logger,
		func() (*models.EmailMessage, error) { return email.ConsultationConfirmation(consultation) },
		func() (*models.EmailMessage, error) { return email.AdminConsultationAlert(consultation, d.adminEmail) },
	)
}

func (d *notificationDispatcher) dispatchPair(ctx context.Context, logger *slog.Logger, userMsg, adminMsg func() (*models.EmailMessage, error)) models.DispatchResult {

	var result models.DispatchResult

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		result.UserEmail = d.send(ctx, logger, "user", userMsg)
	}()

	go func() {
		defer wg.Done()
		result.AdminEmail = d.send(ctx, logger, "admin", adminMsg)
	}()

	wg.Wait()

	result.Success = result.UserEmail.Success || result.AdminEmail.Success

	if !result.Success {
		logger.Error("Both notification emails failed",
			slog.String("userError", result.UserEmail.Error),
			slog.String("adminError", result.AdminEmail.Error))
	}

	return result
}

func (d *notificationDispatcher) send(ctx context.Context, logger *slog.Logger, recipient string, build func() (*models.EmailMessage, error)) models.EmailResult {

	msg, err := build()
	if err != nil {
		logger.Error("Failed to render notification email", slog.String("recipient", recipient), slog.String("error", err.Error()))
		metrics.BookingEmailsTotal.WithLabelValues(recipient, "render_error").Inc()
		return models.EmailResult{Success: false, Mode: models.EmailModeSent, Error: err.Error()}
	}

	if d.email == nil {
		logger.Info("Mail transport not configured, logging email instead",
			slog.String("recipient", recipient),
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject))
		metrics.BookingEmailsTotal.WithLabelValues(recipient, "logged").Inc()
		return models.EmailResult{Success: true, Mode: models.EmailModeLogged}
	}

	if err := d.email.Send(ctx, msg); err != nil {
		logger.Warn("Failed to send notification email", slog.String("recipient", recipient), slog.String("error", err.Error()))
		metrics.BookingEmailsTotal.WithLabelValues(recipient, "error").Inc()
		return models.EmailResult{Success: false, Mode: models.EmailModeSent, Error: err.Error()}
	}

	logger.Info("Notification email sent", slog.String("recipient", recipient), slog.String("to", msg.To))
	metrics.BookingEmailsTotal.WithLabelValues(recipient, "sent").Inc()

	return models.EmailResult{Success: true, Mode: models.EmailModeSent}
}
