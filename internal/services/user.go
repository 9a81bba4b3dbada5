package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	"github.com/tnsurya7/newtons-labs/internal/config"
	apperrors "github.com/tnsurya7/newtons-labs/internal/errors"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/repositories"
	redisrepo "github.com/tnsurya7/newtons-labs/internal/repositories/redis"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type UserService interface {
	RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	LoginUser(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type userService struct {
	repo        repositories.UserRepository
	rateLimiter *redisrepo.RateLimiter // nil when redis is not configured
	jwtKey      []byte
}

func NewUserService(repo repositories.UserRepository, rateLimiter *redisrepo.RateLimiter, cfg *config.Security) UserService {
	return &userService{
		repo:        repo,
		rateLimiter: rateLimiter,
		jwtKey:      []byte(cfg.JWTKey),
	}
}

func (s *userService) RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	logger := middleware.LoggerFromContext(ctx)

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to check existing users").WithError(err)
	}
	if exists {
		return nil, apperrors.DuplicateEntryError("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hash),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, apperrors.DatabaseError("Failed to create user").WithError(err)
	}

	logger.Info("User registered", slog.String("userId", user.ID.String()))

	return user, nil
}

// LoginUser authenticates with a sliding-window attempt budget per email.
// Failed and successful attempts both consume budget; a successful login
// resets it.
func (s *userService) LoginUser(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	remaining := -1

	if s.rateLimiter != nil {
		attempt, err := s.rateLimiter.RegisterAttempt(ctx, req.Email)
		if err != nil {
			// Rate limiting is protective, not load-bearing: redis being
			// down must not lock everyone out.
			logger.Warn("Rate limiter unavailable, allowing attempt", slog.String("error", err.Error()))
		} else if !attempt.Allowed {
			return &models.LoginResponse{
				Success:    false,
				RetryAfter: int(attempt.RetryAfter.Seconds()),
				Message:    "Too many login attempts. Please try again later.",
			}, nil
		} else {
			remaining = int(attempt.RemainingTries)
		}
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invalidCredentials(remaining), nil
		}
		return nil, apperrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return invalidCredentials(remaining), nil
	}

	if s.rateLimiter != nil {
		if err := s.rateLimiter.ResetAttempts(ctx, req.Email); err != nil {
			logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apperrors.InternalError("Failed to issue token").WithError(err)
	}

	logger.Info("User logged in", slog.String("userId", user.ID.String()))

	return &models.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int(tokenTTL.Seconds()),
	}, nil
}

func invalidCredentials(remaining int) *models.LoginResponse {
	resp := &models.LoginResponse{
		Success: false,
		Message: "Invalid email or password",
	}
	if remaining >= 0 {
		resp.RemainingTries = remaining
	}
	return resp
}

func (s *userService) issueToken(user *models.User) (string, error) {

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.jwtKey)
}
