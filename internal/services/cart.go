package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	"github.com/tnsurya7/newtons-labs/internal/cart"
	"github.com/tnsurya7/newtons-labs/internal/models"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error)
	AddItem(ctx context.Context, userID uuid.UUID, item models.CartItem) (cart.Snapshot, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) (cart.Snapshot, error)
	ClearCart(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error)
}

// cartService keeps one store per user, created lazily. With a snapshot dir
// configured carts survive restarts; otherwise they are memory only.
type cartService struct {
	mu          sync.Mutex
	stores      map[uuid.UUID]*cart.Store
	snapshotDir string
}

func NewCartService(snapshotDir string) CartService {
	return &cartService{
		stores:      make(map[uuid.UUID]*cart.Store),
		snapshotDir: snapshotDir,
	}
}

func (s *cartService) storeFor(ctx context.Context, userID uuid.UUID) *cart.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[userID]; ok {
		return store
	}

	var persister cart.Persister
	if s.snapshotDir != "" {
		p, err := cart.NewFilePersister(s.snapshotDir, userID.String())
		if err != nil {
			middleware.LoggerFromContext(ctx).Warn("Cart persistence unavailable, falling back to memory",
				slog.String("error", err.Error()))
		} else {
			persister = p
		}
	}

	store := cart.NewStore(persister)
	s.stores[userID] = store

	return store
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error) {
	return s.storeFor(ctx, userID).Snapshot(), nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, item models.CartItem) (cart.Snapshot, error) {
	return s.storeFor(ctx, userID).AddItem(item), nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) (cart.Snapshot, error) {
	return s.storeFor(ctx, userID).RemoveItem(itemID), nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error) {
	return s.storeFor(ctx, userID).Clear(), nil
}
