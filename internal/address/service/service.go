// Package service owns the address CRUD operations. It is the only layer
// that talks to the address store and the sole owner of the "Address not
// found" translation.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	addressmetrics "cadastro/internal/address/metrics"
	"cadastro/internal/address/models"
	"cadastro/internal/platform/tracing"
	"cadastro/internal/sentinel"
	dErrors "cadastro/pkg/domain-errors"
)

// AddressStore defines the persistence contract consumed by the service.
type AddressStore interface {
	Create(ctx context.Context, address *models.Address) error
	FindByID(ctx context.Context, addressID int64) (*models.Address, error)
	List(ctx context.Context, offset, limit int64) ([]models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, addressID int64) error
}

// Service orchestrates address CRUD against the store. Every mutating
// operation commits immediately; there is no multi-call transaction.
type Service struct {
	store   AddressStore
	logger  *slog.Logger
	metrics *addressmetrics.Metrics
	tracer  tracing.Tracer
}

// New constructs the address service.
func New(store AddressStore, opts ...Option) *Service {
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
		store:   store,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		tracer:  cfg.tracer,
	}
}

// Create inserts a new address. The store assigns the id.
func (s *Service) Create(ctx context.Context, cmd *CreateAddressCommand) (_ *models.Address, err error) {
	ctx, done := s.instrument(ctx, "create")
	defer func() { done(err) }()

	if err = cmd.Validate(); err != nil {
		return nil, err
	}

	address := &models.Address{
		Logradouro: cmd.Logradouro,
		Numero:     cmd.Numero,
		Estado:     cmd.Estado,
		Cidade:     cmd.Cidade,
		Bairro:     cmd.Bairro,
	}
	if err = s.store.Create(ctx, address); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to create address")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCreated()
	}
	s.logger.InfoContext(ctx, "address created", "address_id", address.ID)
	return address, nil
}

// Get returns the address with the given id.
func (s *Service) Get(ctx context.Context, addressID int64) (_ *models.Address, err error) {
	ctx, done := s.instrument(ctx, "get")
	defer func() { done(err) }()

	address, err := s.store.FindByID(ctx, addressID)
	if err != nil {
		err = wrapAddressErr(err, "failed to get address")
		return nil, err
	}
	return address, nil
}

// List returns a page of addresses ordered by id.
func (s *Service) List(ctx context.Context, offset, limit int64) (_ []models.Address, err error) {
	ctx, done := s.instrument(ctx, "list")
	defer func() { done(err) }()

	addresses, err := s.store.List(ctx, offset, limit)
	if err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to list addresses")
		return nil, err
	}
	return addresses, nil
}

// Update merges the fields present in the command onto the stored row and
// persists the result. An empty command returns the current row unchanged.
func (s *Service) Update(ctx context.Context, addressID int64, cmd *UpdateAddressCommand) (_ *models.Address, err error) {
	ctx, done := s.instrument(ctx, "update")
	defer func() { done(err) }()

	if err = cmd.Validate(); err != nil {
		return nil, err
	}

	address, err := s.store.FindByID(ctx, addressID)
	if err != nil {
		err = wrapAddressErr(err, "failed to get address")
		return nil, err
	}
	if cmd.IsEmpty() {
		return address, nil
	}

	cmd.ApplyTo(address)
	if err = s.store.Update(ctx, address); err != nil {
		err = wrapAddressErr(err, "failed to update address")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementUpdated()
	}
	s.logger.InfoContext(ctx, "address updated", "address_id", address.ID)
	return address, nil
}

// Delete removes the address permanently. Dependent persons are never
// cascaded; a database-level FK constraint may reject the delete, which
// propagates as a persistence failure.
func (s *Service) Delete(ctx context.Context, addressID int64) (err error) {
	ctx, done := s.instrument(ctx, "delete")
	defer func() { done(err) }()

	if err = s.store.Delete(ctx, addressID); err != nil {
		err = wrapAddressErr(err, "failed to delete address")
		return err
	}

	if s.metrics != nil {
		s.metrics.IncrementDeleted()
	}
	s.logger.InfoContext(ctx, "address deleted", "address_id", addressID)
	return nil
}

// wrapAddressErr translates store sentinel errors to domain errors.
func wrapAddressErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Address not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

// instrument starts a span and a latency observation for one operation.
// The returned func must be called exactly once with the operation's error.
func (s *Service) instrument(ctx context.Context, operation string) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "address."+operation)
	start := time.Now()
	return ctx, func(err error) {
		if s.metrics != nil {
			s.metrics.ObserveOperation(operation, time.Since(start).Seconds())
		}
		span.End(err)
	}
}
