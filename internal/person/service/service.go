// Package service owns the person CRUD operations plus the explicit
// person-to-address join. It is the only layer that talks to the person
// store and the sole owner of the "Person not found" translation.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	addressmodels "cadastro/internal/address/models"
	personmetrics "cadastro/internal/person/metrics"
	"cadastro/internal/person/models"
	"cadastro/internal/platform/tracing"
	"cadastro/internal/sentinel"
	dErrors "cadastro/pkg/domain-errors"
)

// PersonStore defines the persistence contract consumed by the service.
type PersonStore interface {
	// Create inserts a person and returns the stored row with its generated
	// id. addressID passes through untouched: nil triggers the store's
	// NOT NULL constraint, a dangling id its FK constraint.
	Create(ctx context.Context, name string, addressID *int64) (*models.Person, error)
	FindByID(ctx context.Context, personID int64) (*models.Person, error)
	List(ctx context.Context, offset, limit int64) ([]models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, personID int64) error
}

// AddressResolver looks up the address a person references. There is no
// hidden back-reference between the records; resolving the relationship is
// an explicit join performed here.
type AddressResolver interface {
	FindByID(ctx context.Context, addressID int64) (*addressmodels.Address, error)
}

// Service orchestrates person CRUD against the store. Every mutating
// operation commits immediately; there is no multi-call transaction.
type Service struct {
	store     PersonStore
	addresses AddressResolver
	logger    *slog.Logger
	metrics   *personmetrics.Metrics
	tracer    tracing.Tracer
}

// New constructs the person service.
func New(store PersonStore, addresses AddressResolver, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tracer == nil {
		cfg.tracer = tracing.NewNoop()
	}
	return &Service{
		store:     store,
		addresses: addresses,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		tracer:    cfg.tracer,
	}
}

// Create inserts a new person. The store assigns the id and enforces the
// address reference; a constraint failure surfaces as a persistence error.
func (s *Service) Create(ctx context.Context, cmd *CreatePersonCommand) (_ *models.Person, err error) {
	ctx, done := s.instrument(ctx, "create")
	defer func() { done(err) }()

	if err = cmd.Validate(); err != nil {
		return nil, err
	}

	person, err := s.store.Create(ctx, cmd.Name, cmd.AddressID)
	if err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to create person")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCreated()
	}
	s.logger.InfoContext(ctx, "person created", "person_id", person.ID)
	return person, nil
}

// Get returns the person with the given id.
func (s *Service) Get(ctx context.Context, personID int64) (_ *models.Person, err error) {
	ctx, done := s.instrument(ctx, "get")
	defer func() { done(err) }()

	person, err := s.store.FindByID(ctx, personID)
	if err != nil {
		err = wrapPersonErr(err, "failed to get person")
		return nil, err
	}
	return person, nil
}

// List returns a page of persons ordered by id.
func (s *Service) List(ctx context.Context, offset, limit int64) (_ []models.Person, err error) {
	ctx, done := s.instrument(ctx, "list")
	defer func() { done(err) }()

	persons, err := s.store.List(ctx, offset, limit)
	if err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to list persons")
		return nil, err
	}
	return persons, nil
}

// Update merges the fields present in the command onto the stored row and
// persists the result. An empty command returns the current row unchanged.
func (s *Service) Update(ctx context.Context, personID int64, cmd *UpdatePersonCommand) (_ *models.Person, err error) {
	ctx, done := s.instrument(ctx, "update")
	defer func() { done(err) }()

	if err = cmd.Validate(); err != nil {
		return nil, err
	}

	person, err := s.store.FindByID(ctx, personID)
	if err != nil {
		err = wrapPersonErr(err, "failed to get person")
		return nil, err
	}
	if cmd.IsEmpty() {
		return person, nil
	}

	cmd.ApplyTo(person)
	if err = s.store.Update(ctx, person); err != nil {
		err = wrapPersonErr(err, "failed to update person")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementUpdated()
	}
	s.logger.InfoContext(ctx, "person updated", "person_id", person.ID)
	return person, nil
}

// Delete removes the person permanently.
func (s *Service) Delete(ctx context.Context, personID int64) (err error) {
	ctx, done := s.instrument(ctx, "delete")
	defer func() { done(err) }()

	if err = s.store.Delete(ctx, personID); err != nil {
		err = wrapPersonErr(err, "failed to delete person")
		return err
	}

	if s.metrics != nil {
		s.metrics.IncrementDeleted()
	}
	s.logger.InfoContext(ctx, "person deleted", "person_id", personID)
	return nil
}

// ResolveAddress joins a person to the address it references. A missing
// person reports "Person not found"; a missing address (possible when the
// backing store does not restrict address deletes) reports
// "Address not found".
func (s *Service) ResolveAddress(ctx context.Context, personID int64) (_ *addressmodels.Address, err error) {
	ctx, done := s.instrument(ctx, "resolve_address")
	defer func() { done(err) }()

	person, err := s.store.FindByID(ctx, personID)
	if err != nil {
		err = wrapPersonErr(err, "failed to get person")
		return nil, err
	}

	address, err := s.addresses.FindByID(ctx, person.AddressID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			err = dErrors.New(dErrors.CodeNotFound, "Address not found")
			return nil, err
		}
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve address")
		return nil, err
	}
	return address, nil
}

// wrapPersonErr translates store sentinel errors to domain errors.
func wrapPersonErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Person not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

// instrument starts a span and a latency observation for one operation.
// The returned func must be called exactly once with the operation's error.
func (s *Service) instrument(ctx context.Context, operation string) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "person."+operation)
	start := time.Now()
	return ctx, func(err error) {
		if s.metrics != nil {
			s.metrics.ObserveOperation(operation, time.Since(start).Seconds())
		}
		span.End(err)
	}
}
