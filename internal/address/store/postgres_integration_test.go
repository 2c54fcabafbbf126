//go:build integration

package store_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"cadastro/internal/address/models"
	"cadastro/internal/address/store"
	"cadastro/internal/platform/database"
	"cadastro/internal/sentinel"
)

// PostgresStoreSuite runs against a real database. Point TEST_DATABASE_URL
// at a disposable instance and run with -tags integration.
type PostgresStoreSuite struct {
	suite.Suite
	db    *sql.DB
	store *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	pool, err := database.New(database.Config{URL: os.Getenv("TEST_DATABASE_URL")})
	s.Require().NoError(err)
	s.db = pool.DB()
	s.Require().NoError(database.EnsureSchema(context.Background(), s.db))
	s.store = store.NewPostgres(s.db)
}

func (s *PostgresStoreSuite) SetupTest() {
	// Truncate in dependency order.
	_, err := s.db.ExecContext(context.Background(),
		`TRUNCATE person, address RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TearDownSuite() {
	s.db.Close()
}

func (s *PostgresStoreSuite) newAddress() *models.Address {
	return &models.Address{
		Logradouro: "Rua A",
		Numero:     10,
		Estado:     "SP",
		Cidade:     "São Paulo",
		Bairro:     "Centro",
	}
}

func (s *PostgresStoreSuite) TestCreateAssignsGeneratedID() {
	ctx := context.Background()

	address := s.newAddress()
	s.Require().NoError(s.store.Create(ctx, address))
	s.Equal(int64(1), address.ID)

	found, err := s.store.FindByID(ctx, address.ID)
	s.Require().NoError(err)
	s.Equal(address, found)
}

func (s *PostgresStoreSuite) TestUpdateUnknownRowReturnsNotFound() {
	address := s.newAddress()
	address.ID = 42

	err := s.store.Update(context.Background(), address)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDeleteRestrictedByDependentPerson() {
	ctx := context.Background()

	address := s.newAddress()
	s.Require().NoError(s.store.Create(ctx, address))
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO person (name, address_id) VALUES ($1, $2)`, "Ana", address.ID)
	s.Require().NoError(err)

	err = s.store.Delete(ctx, address.ID)
	s.ErrorIs(err, sentinel.ErrForeignKey)
}

func (s *PostgresStoreSuite) TestListPagesInIDOrder() {
	ctx := context.Background()

	for range 3 {
		s.Require().NoError(s.store.Create(ctx, s.newAddress()))
	}

	page, err := s.store.List(ctx, 1, 1)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(int64(2), page[0].ID)
}
