package store

import (
	"context"
	"sync"

	"cadastro/internal/address/models"
	"cadastro/internal/sentinel"
)

// MemoryStore keeps addresses in memory for local runs and tests.
// Ids increment monotonically and are never reused within the store's
// lifetime. All methods return copies so callers cannot mutate stored rows.
type MemoryStore struct {
	mu        sync.RWMutex
	addresses map[int64]models.Address
	nextID    int64
}

// NewMemory creates an in-memory address store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		addresses: make(map[int64]models.Address),
		nextID:    1,
	}
}

// Create assigns the next id and stores the address.
func (s *MemoryStore) Create(_ context.Context, address *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	address.ID = s.nextID
	s.nextID++
	s.addresses[address.ID] = *address
	return nil
}

// FindByID retrieves a copy of the address with the given id.
func (s *MemoryStore) FindByID(_ context.Context, addressID int64) (*models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	address, ok := s.addresses[addressID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &address, nil
}

// List returns a page of addresses ordered by id.
func (s *MemoryStore) List(_ context.Context, offset, limit int64) ([]models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addresses := make([]models.Address, 0)
	var skipped int64
	// Ids are assigned sequentially, so an id scan yields id order.
	for id := int64(1); id < s.nextID && int64(len(addresses)) < limit; id++ {
		address, ok := s.addresses[id]
		if !ok {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

// Update overwrites the stored row with the given id.
func (s *MemoryStore) Update(_ context.Context, address *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[address.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.addresses[address.ID] = *address
	return nil
}

// Delete removes the address. Unlike the Postgres store there is no FK
// constraint here, so deleting an address that persons still reference is
// permitted and leaves their references dangling.
func (s *MemoryStore) Delete(_ context.Context, addressID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[addressID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.addresses, addressID)
	return nil
}

// Exists reports whether an address with the given id is stored. The
// person memory store uses it to mimic the database FK constraint.
func (s *MemoryStore) Exists(_ context.Context, addressID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.addresses[addressID]
	return ok, nil
}
