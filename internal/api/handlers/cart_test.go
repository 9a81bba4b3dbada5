package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	"github.com/tnsurya7/newtons-labs/internal/cart"
	"github.com/tnsurya7/newtons-labs/internal/models"
	"github.com/tnsurya7/newtons-labs/internal/services/mocks"
	"github.com/tnsurya7/newtons-labs/internal/utils/response"
)

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	claims := &models.Claims{UserID: userID}
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)

	return req.WithContext(ctx)
}

func TestAddItemHandler(t *testing.T) {

	userID := uuid.New()

	t.Run("Adds a line and returns the snapshot", func(t *testing.T) {

		// Arrange
		svc := new(mocks.CartService)
		svc.On("AddItem", mock.Anything, userID, mock.AnythingOfType("models.CartItem")).
			Return(cart.Snapshot{
				Items:      []models.CartItem{{ID: "test-cbc", Name: "Complete Blood Count", Price: 299, Type: models.ServiceTypeTest}},
				TotalItems: 1,
			}, nil).Once()

		handler := NewCartHandler(svc)

		body, _ := json.Marshal(map[string]any{
			"id": "test-cbc", "name": "Complete Blood Count", "price": 299, "type": "test",
		})

		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/cart/items", body, userID))

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		svc.AssertExpectations(t)
	})

	t.Run("Rejects an unauthenticated request", func(t *testing.T) {

		// Arrange
		svc := new(mocks.CartService)
		handler := NewCartHandler(svc)

		body, _ := json.Marshal(map[string]any{"id": "test-cbc", "name": "CBC", "price": 299, "type": "test"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects an item with an unknown type", func(t *testing.T) {

		// Arrange
		svc := new(mocks.CartService)
		handler := NewCartHandler(svc)

		body, _ := json.Marshal(map[string]any{"id": "x", "name": "X-Ray", "price": 500, "type": "scan"})
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/cart/items", body, userID))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveItemHandler(t *testing.T) {

	userID := uuid.New()

	t.Run("Removes by path value", func(t *testing.T) {

		// Arrange
		svc := new(mocks.CartService)
		svc.On("RemoveItem", mock.Anything, userID, "test-cbc").
			Return(cart.Snapshot{Items: []models.CartItem{}, TotalItems: 0}, nil).Once()

		handler := NewCartHandler(svc)

		mux := http.NewServeMux()
		mux.Handle("DELETE /api/v1/cart/items/{itemId}", handler.RemoveItem())

		rec := httptest.NewRecorder()

		// Act
		mux.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/v1/cart/items/test-cbc", nil, userID))

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestGetCartHandler(t *testing.T) {

	userID := uuid.New()

	t.Run("Snapshot keeps totalItems equal to line count", func(t *testing.T) {

		// Arrange
		svc := new(mocks.CartService)
		svc.On("GetCart", mock.Anything, userID).
			Return(cart.Snapshot{
				Items: []models.CartItem{
					{ID: "test-cbc", Name: "CBC", Price: 299, Type: models.ServiceTypeTest},
					{ID: "test-cbc", Name: "CBC", Price: 299, Type: models.ServiceTypeTest},
				},
				TotalItems: 2,
			}, nil).Once()

		handler := NewCartHandler(svc)
		rec := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/cart", nil, userID))

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool          `json:"success"`
			Data    cart.Snapshot `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Data.TotalItems)
		assert.Len(t, resp.Data.Items, resp.Data.TotalItems)
	})
}
