package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	apperrors "github.com/tnsurya7/newtons-labs/internal/errors"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/services"
	"github.com/tnsurya7/newtons-labs/internal/utils"
	"github.com/tnsurya7/newtons-labs/internal/utils/response"
)

type CartHandler struct {
	cartService services.CartService
	validate    *validator.Validate
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

func claimsFromRequest(r *http.Request) (*models.Claims, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
	return claims, ok
}

// GetCart godoc
//
//	@Summary	Current cart contents
//	@Tags		cart
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.APIResponse{data=cart.Snapshot}
//	@Router		/api/v1/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := claimsFromRequest(r)
		if !ok {
			response.Error(w, apperrors.UnauthorizedError("Authentication required"))
			return
		}

		snapshot, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

// AddItem godoc
//
//	@Summary	Add a test or package to the cart
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		models.CartItem	true	"Cart line"
//	@Success	200		{object}	response.APIResponse{data=cart.Snapshot}
//	@Failure	400		{object}	response.APIResponse
//	@Router		/api/v1/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := claimsFromRequest(r)
		if !ok {
			response.Error(w, apperrors.UnauthorizedError("Authentication required"))
			return
		}

		var item models.CartItem
		if !utils.ParseAndValidate(r, w, &item, h.validate) {
			return
		}

		snapshot, err := h.cartService.AddItem(r.Context(), claims.UserID, item)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

// RemoveItem godoc
//
//	@Summary	Remove one line from the cart
//	@Tags		cart
//	@Produce	json
//	@Security	BearerAuth
//	@Param		itemId	path		string	true	"Item id"
//	@Success	200		{object}	response.APIResponse{data=cart.Snapshot}
//	@Router		/api/v1/cart/items/{itemId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := claimsFromRequest(r)
		if !ok {
			response.Error(w, apperrors.UnauthorizedError("Authentication required"))
			return
		}

		itemID := r.PathValue("itemId")
		if itemID == "" {
			response.Error(w, apperrors.BadRequestError("Item id is required"))
			return
		}

		snapshot, err := h.cartService.RemoveItem(r.Context(), claims.UserID, itemID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}

// ClearCart godoc
//
//	@Summary	Empty the cart
//	@Tags		cart
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.APIResponse{data=cart.Snapshot}
//	@Router		/api/v1/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := claimsFromRequest(r)
		if !ok {
			response.Error(w, apperrors.UnauthorizedError("Authentication required"))
			return
		}

		snapshot, err := h.cartService.ClearCart(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, snapshot)
	}
}
