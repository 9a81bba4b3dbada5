package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	"github.com/tnsurya7/newtons-labs/internal/services"
	"github.com/tnsurya7/newtons-labs/internal/utils/response"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search godoc
//
//	@Summary	Search tests and packages
//	@Tags		catalog
//	@Produce	json
//	@Param		q	query		string	true	"Search term, minimum two characters"
//	@Success	200	{object}	response.APIResponse{data=models.SearchResponse}
//	@Router		/api/v1/search [get]
func (h *SearchHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query().Get("q")

		result, err := h.searchService.Search(r.Context(), query)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Search failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
