package services

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	apperrors "github.com/tnsurya7/newtons-labs/internal/errors"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/utils"
)

// indianMobile matches the last ten digits of the input: a valid Indian
// mobile number starts with 6-9.
var indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips everything but digits and keeps the last ten, so
// "+91 98765 43210" and "9876543210" are the same number.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

func validatePhone(raw string) (string, error) {
	phone := NormalizePhone(raw)
	if !indianMobile.MatchString(phone) {
		return "", apperrors.ValidationError("Invalid phone number")
	}
	return phone, nil
}

type VisitService interface {
	BookHomeVisit(ctx context.Context, req *models.HomeVisitRequest) (*models.HomeVisitConfirmation, error)
	BookConsultation(ctx context.Context, req *models.ConsultationRequest) (*models.ConsultationConfirmation, error)
	RequestCallback(ctx context.Context, req *models.CallbackRequest) (*models.CallbackTicket, error)
}

type visitService struct {
	notifier  NotificationDispatcher
	sanitizer *bluemonday.Policy
}

func NewVisitService(notifier NotificationDispatcher) VisitService {
	return &visitService{
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *visitService) BookHomeVisit(ctx context.Context, req *models.HomeVisitRequest) (*models.HomeVisitConfirmation, error) {

	phone, err := validatePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	confirmation := &models.HomeVisitConfirmation{
		BookingID:        utils.GenerateReference("HV"),
		Name:             strings.TrimSpace(req.Name),
		Phone:            phone,
		Address:          strings.TrimSpace(req.Address),
		Date:             req.Date,
		Time:             req.Time,
		Status:           "confirmed",
		EstimatedArrival: "Will be confirmed via call",
		BookedAt:         time.Now().UTC(),
	}

	if confirmation.Date == "" {
		confirmation.Date = "Will be confirmed"
	}
	if confirmation.Time == "" {
		confirmation.Time = "Will be confirmed"
	}

	middleware.LoggerFromContext(ctx).Info("Home visit booked",
		slog.String("bookingId", confirmation.BookingID),
		slog.String("phone", phone))

	return confirmation, nil
}

func (s *visitService) BookConsultation(ctx context.Context, req *models.ConsultationRequest) (*models.ConsultationConfirmation, error) {

	phone, err := validatePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	confirmation := &models.ConsultationConfirmation{
		ConsultationID: utils.GenerateReference("CONS"),
		Name:           strings.TrimSpace(req.Name),
		Phone:          phone,
		Email:          strings.TrimSpace(req.Email),
		Message:        s.sanitizer.Sanitize(strings.TrimSpace(req.Message)),
		Status:         "confirmed",
		BookedAt:       time.Now().UTC(),
	}

	logger := middleware.LoggerFromContext(ctx).With(slog.String("consultationId", confirmation.ConsultationID))
	logger.Info("Consultation booked")

	// Acknowledgement emails never block the response.
	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		result := s.notifier.DispatchConsultationEmails(notifyCtx, confirmation)
		logger.Info("Consultation notification dispatched", slog.Bool("success", result.Success))
	}()

	return confirmation, nil
}

func (s *visitService) RequestCallback(ctx context.Context, req *models.CallbackRequest) (*models.CallbackTicket, error) {

	phone, err := validatePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Customer"
	}

	ticket := &models.CallbackTicket{
		TicketID:          utils.GenerateReference("CB"),
		Phone:             phone,
		Name:              name,
		Status:            "queued",
		EstimatedCallTime: "15-30 minutes",
		QueuePosition:     rand.IntN(5) + 1,
		CreatedAt:         time.Now().UTC(),
	}

	middleware.LoggerFromContext(ctx).Info("Callback requested",
		slog.String("ticketId", ticket.TicketID),
		slog.Int("queuePosition", ticket.QueuePosition))

	return ticket, nil
}
