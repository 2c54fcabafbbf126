// Package store persists persons. PostgresStore is the production
// implementation; MemoryStore backs local runs and tests.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"cadastro/internal/person/models"
	"cadastro/internal/sentinel"
)

// Postgres error codes for referential-integrity failures.
const (
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// PostgresStore persists persons in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed person store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts the person and returns the stored row. A nil addressID
// becomes a NULL insert, which the NOT NULL constraint rejects; a dangling
// id trips the FK constraint. Both map to sentinel.ErrForeignKey.
func (s *PostgresStore) Create(ctx context.Context, name string, addressID *int64) (*models.Person, error) {
	query := `
		INSERT INTO person (name, address_id)
		VALUES ($1, $2)
		RETURNING person_id
	`
	var personID int64
	if err := s.db.QueryRowContext(ctx, query, name, addressID).Scan(&personID); err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("create person: %w", sentinel.ErrForeignKey)
		}
		return nil, fmt.Errorf("create person: %w", err)
	}
	return &models.Person{ID: personID, Name: name, AddressID: *addressID}, nil
}

// FindByID retrieves a person by its id.
func (s *PostgresStore) FindByID(ctx context.Context, personID int64) (*models.Person, error) {
	query := `
		SELECT person_id, name, address_id
		FROM person
		WHERE person_id = $1
	`
	person, err := scanPerson(s.db.QueryRowContext(ctx, query, personID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find person by id: %w", err)
	}
	return person, nil
}

// List returns a page of persons ordered by id.
func (s *PostgresStore) List(ctx context.Context, offset, limit int64) ([]models.Person, error) {
	query := `
		SELECT person_id, name, address_id
		FROM person
		ORDER BY person_id
		OFFSET $1 LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	persons := make([]models.Person, 0)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("list persons: %w", err)
		}
		persons = append(persons, *person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return persons, nil
}

// Update overwrites every stored column of the row with the given id.
// The field merge has already happened in the service.
func (s *PostgresStore) Update(ctx context.Context, person *models.Person) error {
	if person == nil {
		return fmt.Errorf("person is required")
	}
	query := `
		UPDATE person
		SET name = $2, address_id = $3
		WHERE person_id = $1
	`
	res, err := s.db.ExecContext(ctx, query, person.ID, person.Name, person.AddressID)
	if err != nil {
		if isIntegrityViolation(err) {
			return fmt.Errorf("update person: %w", sentinel.ErrForeignKey)
		}
		return fmt.Errorf("update person: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update person rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Delete removes the person permanently. Nothing references person rows,
// so the delete never cascades or restricts.
func (s *PostgresStore) Delete(ctx context.Context, personID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM person WHERE person_id = $1`, personID)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete person rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type personRow interface {
	Scan(dest ...any) error
}

func scanPerson(row personRow) (*models.Person, error) {
	var person models.Person
	if err := row.Scan(&person.ID, &person.Name, &person.AddressID); err != nil {
		return nil, err
	}
	return &person, nil
}

func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation || pgErr.Code == pgNotNullViolation
	}
	return false
}
