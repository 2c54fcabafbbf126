// Package store persists addresses. PostgresStore is the production
// implementation; MemoryStore backs local runs and tests.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"cadastro/internal/address/models"
	"cadastro/internal/sentinel"
)

// Postgres error codes for referential-integrity failures.
const (
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// PostgresStore persists addresses in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed address store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts the address and fills in the generated id.
func (s *PostgresStore) Create(ctx context.Context, address *models.Address) error {
	if address == nil {
		return fmt.Errorf("address is required")
	}
	query := `
		INSERT INTO address (logradouro, numero, estado, cidade, bairro)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING address_id
	`
	err := s.db.QueryRowContext(ctx, query,
		address.Logradouro,
		address.Numero,
		address.Estado,
		address.Cidade,
		address.Bairro,
	).Scan(&address.ID)
	if err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return nil
}

// FindByID retrieves an address by its id.
func (s *PostgresStore) FindByID(ctx context.Context, addressID int64) (*models.Address, error) {
	query := `
		SELECT address_id, logradouro, numero, estado, cidade, bairro
		FROM address
		WHERE address_id = $1
	`
	address, err := scanAddress(s.db.QueryRowContext(ctx, query, addressID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find address by id: %w", err)
	}
	return address, nil
}

// List returns a page of addresses ordered by id.
func (s *PostgresStore) List(ctx context.Context, offset, limit int64) ([]models.Address, error) {
	query := `
		SELECT address_id, logradouro, numero, estado, cidade, bairro
		FROM address
		ORDER BY address_id
		OFFSET $1 LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("list addresses: %w", err)
		}
		addresses = append(addresses, *address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

// Update overwrites every stored column of the row with the given id.
// The field merge has already happened in the service.
func (s *PostgresStore) Update(ctx context.Context, address *models.Address) error {
	if address == nil {
		return fmt.Errorf("address is required")
	}
	query := `
		UPDATE address
		SET logradouro = $2, numero = $3, estado = $4, cidade = $5, bairro = $6
		WHERE address_id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		address.ID,
		address.Logradouro,
		address.Numero,
		address.Estado,
		address.Cidade,
		address.Bairro,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update address rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Delete removes the address. Dependent person rows are never cascaded; the
// FK constraint rejects the delete while any still reference this address.
func (s *PostgresStore) Delete(ctx context.Context, addressID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM address WHERE address_id = $1`, addressID)
	if err != nil {
		if isIntegrityViolation(err) {
			return fmt.Errorf("delete address: %w", sentinel.ErrForeignKey)
		}
		return fmt.Errorf("delete address: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete address rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type addressRow interface {
	Scan(dest ...any) error
}

func scanAddress(row addressRow) (*models.Address, error) {
	var address models.Address
	if err := row.Scan(
		&address.ID,
		&address.Logradouro,
		&address.Numero,
		&address.Estado,
		&address.Cidade,
		&address.Bairro,
	); err != nil {
		return nil, err
	}
	return &address, nil
}

func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation || pgErr.Code == pgNotNullViolation
	}
	return false
}
