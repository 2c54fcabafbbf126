package store

import (
	"context"
	"fmt"
	"sync"

	"cadastro/internal/person/models"
	"cadastro/internal/sentinel"
)

// AddressLookup reports whether an address id resolves to a stored address.
// The memory store uses it to mimic the database constraints on create and
// update; address deletes stay unrestricted, matching the production FK
// direction (person references address, nothing references person).
type AddressLookup func(ctx context.Context, addressID int64) (bool, error)

// MemoryStore keeps persons in memory for local runs and tests.
// Ids increment monotonically and are never reused within the store's
// lifetime. All methods return copies so callers cannot mutate stored rows.
type MemoryStore struct {
	mu            sync.RWMutex
	persons       map[int64]models.Person
	nextID        int64
	addressExists AddressLookup
}

// NewMemory creates an in-memory person store. addressExists may be nil,
// in which case address references are not checked at all.
func NewMemory(addressExists AddressLookup) *MemoryStore {
	return &MemoryStore{
		persons:       make(map[int64]models.Person),
		nextID:        1,
		addressExists: addressExists,
	}
}

// Create assigns the next id and stores the person. A nil or dangling
// address reference fails the same way the database constraints would.
func (s *MemoryStore) Create(ctx context.Context, name string, addressID *int64) (*models.Person, error) {
	if addressID == nil {
		return nil, fmt.Errorf("create person: address_id is null: %w", sentinel.ErrForeignKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Check under the lock so a concurrent address delete cannot slip in
	// between the check and the insert.
	if err := s.checkAddress(ctx, *addressID); err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}
	person := models.Person{ID: s.nextID, Name: name, AddressID: *addressID}
	s.nextID++
	s.persons[person.ID] = person
	return &person, nil
}

// FindByID retrieves a copy of the person with the given id.
func (s *MemoryStore) FindByID(_ context.Context, personID int64) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	person, ok := s.persons[personID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &person, nil
}

// List returns a page of persons ordered by id.
func (s *MemoryStore) List(_ context.Context, offset, limit int64) ([]models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	persons := make([]models.Person, 0)
	var skipped int64
	// Ids are assigned sequentially, so an id scan yields id order.
	for id := int64(1); id < s.nextID && int64(len(persons)) < limit; id++ {
		person, ok := s.persons[id]
		if !ok {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		persons = append(persons, person)
	}
	return persons, nil
}

// Update overwrites the stored row with the given id, re-checking the
// address reference like the database FK would on a changed column.
func (s *MemoryStore) Update(ctx context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAddress(ctx, person.AddressID); err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	if _, ok := s.persons[person.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.persons[person.ID] = *person
	return nil
}

// Delete removes the person permanently.
func (s *MemoryStore) Delete(_ context.Context, personID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[personID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.persons, personID)
	return nil
}

func (s *MemoryStore) checkAddress(ctx context.Context, addressID int64) error {
	if s.addressExists == nil {
		return nil
	}
	exists, err := s.addressExists(ctx, addressID)
	if err != nil {
		return err
	}
	if !exists {
		return sentinel.ErrForeignKey
	}
	return nil
}
