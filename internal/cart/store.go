// Package cart holds the per-user selection of tests and packages between
// browsing and checkout. The store is an ordered list with no uniqueness on
// item ID: adding the same test twice yields two lines, and removing by ID
// drops only the first match. TotalItems is always len(Items); quantity is
// modelled by repetition, never by a count field.
package cart

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/tnsurya7/newtons-labs/internal/models"
)

type Snapshot struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
}

// Persister saves and restores a cart snapshot across restarts. A nil
// persister keeps the cart in memory only.
type Persister interface {
	Load() (*Snapshot, error)
	Save(snapshot *Snapshot) error
}

type Store struct {
	mu        sync.Mutex
	items     []models.CartItem
	persister Persister
}

func NewStore(persister Persister) *Store {

	s := &Store{persister: persister}

	if persister != nil {
		snapshot, err := persister.Load()
		if err != nil {
			slog.Warn("Failed to restore cart snapshot, starting empty", slog.String("error", err.Error()))
		} else if snapshot != nil {
			s.items = snapshot.Items
		}
	}

	return s
}

func (s *Store) AddItem(item models.CartItem) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	return s.snapshotAndPersist()
}

// RemoveItem drops the first line matching id. Removing an id that is not in
// the cart is a no-op.
func (s *Store) RemoveItem(id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}

	return s.snapshotAndPersist()
}

func (s *Store) Clear() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.snapshotAndPersist()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// callers hold s.mu
func (s *Store) snapshot() Snapshot {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return Snapshot{Items: items, TotalItems: len(items)}
}

func (s *Store) snapshotAndPersist() Snapshot {

	snapshot := s.snapshot()

	if s.persister != nil {
		if err := s.persister.Save(&snapshot); err != nil {
			slog.Warn("Failed to persist cart snapshot", slog.String("error", err.Error()))
		}
	}

	return snapshot
}

// FilePersister stores the snapshot as a JSON file, one file per cart.
type FilePersister struct {
	path string
}

func NewFilePersister(dir string, name string) (*FilePersister, error) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart snapshot dir: %w", err)
	}

	return &FilePersister{path: filepath.Join(dir, name+".json")}, nil
}

func (p *FilePersister) Load() (*Snapshot, error) {

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("corrupt cart snapshot %s: %w", p.path, err)
	}

	return &snapshot, nil
}

func (p *FilePersister) Save(snapshot *Snapshot) error {

	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return os.WriteFile(p.path, data, 0o644)
}
