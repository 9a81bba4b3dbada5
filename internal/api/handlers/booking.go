package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	apperrors "github.com/tnsurya7/newtons-labs/internal/errors"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/services"
	"github.com/tnsurya7/newtons-labs/internal/utils"
	"github.com/tnsurya7/newtons-labs/internal/utils/response"
)

type BookingHandler struct {
	bookingService services.BookingService
	validate       *validator.Validate
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validate:       validator.New(),
	}
}

// CreateBooking godoc
//
//	@Summary		Create a booking
//	@Description	Runs checkout for the items in the request and confirms the booking
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.CreateBookingRequest	true	"Booking payload"
//	@Success		200		{object}	models.CreateBookingResponse
//	@Failure		400		{object}	response.APIResponse
//	@Failure		500		{object}	response.APIResponse
//	@Router			/api/v1/bookings [post]
func (h *BookingHandler) CreateBooking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateBookingRequest
		if !utils.ParseAndValidate(r, w, &req, h.validate) {
			return
		}

		resp, err := h.bookingService.CreateBooking(r.Context(), &req)
		if err != nil {
			logger.Error("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		// Checkout has its own wire shape: success and booking at the top
		// level, not wrapped in the data envelope.
		response.WriteJson(w, http.StatusOK, resp)
	}
}

// GetBooking godoc
//
//	@Summary		Fetch a booking by reference
//	@Tags			bookings
//	@Produce		json
//	@Param			bookingId	path		string	true	"Booking reference, e.g. BK-MB3K9F2A-7QPZ"
//	@Success		200			{object}	response.APIResponse{data=models.BookingWithItems}
//	@Failure		404			{object}	response.APIResponse
//	@Router			/api/v1/bookings/{bookingId} [get]
func (h *BookingHandler) GetBooking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		bookingID := r.PathValue("bookingId")
		if bookingID == "" {
			response.Error(w, apperrors.BadRequestError("Booking reference is required"))
			return
		}

		booking, err := h.bookingService.GetBooking(r.Context(), bookingID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, booking)
	}
}
