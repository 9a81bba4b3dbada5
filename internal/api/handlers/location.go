package handlers

import (
	"net/http"

	"github.com/tnsurya7/newtons-labs/internal/services"
	"github.com/tnsurya7/newtons-labs/internal/utils/response"
)

type LocationHandler struct {
	provider services.LocationProvider
}

func NewLocationHandler(provider services.LocationProvider) *LocationHandler {
	return &LocationHandler{provider: provider}
}

// NearbyCentres godoc
//
//	@Summary	Collection centres near a pincode
//	@Tags		locations
//	@Produce	json
//	@Param		pincode	query		string	true	"Six digit pincode"
//	@Success	200		{object}	response.APIResponse{data=[]models.Location}
//	@Failure	400		{object}	response.APIResponse
//	@Router		/api/v1/locations/nearby [get]
func (h *LocationHandler) NearbyCentres() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		pincode := r.URL.Query().Get("pincode")

		centres, err := h.provider.NearbyCentres(r.Context(), pincode)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, centres)
	}
}
