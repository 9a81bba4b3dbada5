package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/services"
	"github.com/tnsurya7/newtons-labs/internal/utils"
	"github.com/tnsurya7/newtons-labs/internal/utils/response"
)

type VisitHandler struct {
	visitService services.VisitService
	validate     *validator.Validate
}

func NewVisitHandler(visitService services.VisitService) *VisitHandler {
	return &VisitHandler{
		visitService: visitService,
		validate:     validator.New(),
	}
}

// BookHomeVisit godoc
//
//	@Summary	Book a home sample collection visit
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.HomeVisitRequest	true	"Home visit payload"
//	@Success	200		{object}	response.APIResponse{data=models.HomeVisitConfirmation}
//	@Failure	400		{object}	response.APIResponse
//	@Router		/api/v1/bookings/home-visit [post]
func (h *VisitHandler) BookHomeVisit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.HomeVisitRequest
		if !utils.ParseAndValidate(r, w, &req, h.validate) {
			return
		}

		confirmation, err := h.visitService.BookHomeVisit(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, confirmation)
	}
}

// BookConsultation godoc
//
//	@Summary	Request a doctor consultation
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.ConsultationRequest	true	"Consultation payload"
//	@Success	200		{object}	response.APIResponse{data=models.ConsultationConfirmation}
//	@Failure	400		{object}	response.APIResponse
//	@Router		/api/v1/bookings/consultation [post]
func (h *VisitHandler) BookConsultation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.ConsultationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validate) {
			return
		}

		confirmation, err := h.visitService.BookConsultation(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, confirmation)
	}
}

// RequestCallback godoc
//
//	@Summary	Ask support to call back
//	@Tags		support
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.CallbackRequest	true	"Callback payload"
//	@Success	200		{object}	response.APIResponse{data=models.CallbackTicket}
//	@Failure	400		{object}	response.APIResponse
//	@Router		/api/v1/support/callback [post]
func (h *VisitHandler) RequestCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CallbackRequest
		if !utils.ParseAndValidate(r, w, &req, h.validate) {
			return
		}

		ticket, err := h.visitService.RequestCallback(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, ticket)
	}
}
