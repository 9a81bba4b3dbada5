package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnsurya7/newtons-labs/internal/models"
)

var testJWTKey = []byte("test-signing-key")

func signedToken(t *testing.T, key []byte, expiresAt time.Time) string {
	t.Helper()

	claims := &models.Claims{
		UserID: uuid.New(),
		Email:  "priya@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestAuthenticate(t *testing.T) {

	m := NewAuthMiddleware(testJWTKey)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(UserContextKey).(*models.Claims)
		require.True(t, ok)
		assert.Equal(t, "priya@example.com", claims.Email)
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Valid token reaches the handler with claims", func(t *testing.T) {

		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testJWTKey, time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		// Act
		m.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Missing header is unauthorized", func(t *testing.T) {

		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		rec := httptest.NewRecorder()

		// Act
		m.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong scheme is unauthorized", func(t *testing.T) {

		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		// Act
		m.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token signed with another key is rejected", func(t *testing.T) {

		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, []byte("other-key"), time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		// Act
		m.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {

		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testJWTKey, time.Now().Add(-time.Minute)))
		rec := httptest.NewRecorder()

		// Act
		m.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
