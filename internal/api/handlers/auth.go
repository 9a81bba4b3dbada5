package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/services"
	"github.com/tnsurya7/newtons-labs/internal/utils"
	"github.com/tnsurya7/newtons-labs/internal/utils/response"
)

type AuthHandler struct {
	userService services.UserService
	validate    *validator.Validate
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// Register godoc
//
//	@Summary	Create an account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.RegisterRequest	true	"Registration payload"
//	@Success	201		{object}	response.APIResponse{data=models.User}
//	@Failure	400		{object}	response.APIResponse
//	@Failure	409		{object}	response.APIResponse
//	@Router		/api/v1/auth/register [post]
func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validate) {
			return
		}

		user, err := h.userService.RegisterUser(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//
//	@Summary	Log in with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.LoginRequest	true	"Login payload"
//	@Success	200		{object}	models.LoginResponse
//	@Failure	401		{object}	models.LoginResponse
//	@Failure	429		{object}	models.LoginResponse
//	@Router		/api/v1/auth/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validate) {
			return
		}

		resp, err := h.userService.LoginUser(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		// Login keeps its own wire shape so clients can read remaining
		// tries and retry-after without unwrapping an envelope.
		status := http.StatusOK
		if !resp.Success {
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			} else {
				status = http.StatusUnauthorized
			}
		}

		response.WriteJson(w, status, resp)
	}
}
