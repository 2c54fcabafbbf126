package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addressmodels "cadastro/internal/address/models"
	addressstore "cadastro/internal/address/store"
	personstore "cadastro/internal/person/store"
	dErrors "cadastro/pkg/domain-errors"
)

// fixture wires a person service over memory stores with the same
// address-exists hook main uses, plus a seeded address to reference.
type fixture struct {
	svc       *Service
	addresses *addressstore.MemoryStore
	addressID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	addresses := addressstore.NewMemory()
	address := &addressmodels.Address{
		Logradouro: "Rua A",
		Numero:     10,
		Estado:     "SP",
		Cidade:     "São Paulo",
		Bairro:     "Centro",
	}
	require.NoError(t, addresses.Create(context.Background(), address))

	persons := personstore.NewMemory(addresses.Exists)
	return &fixture{
		svc:       New(persons, addresses),
		addresses: addresses,
		addressID: address.ID,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func TestCreate_ResolvableReferenceSucceeds(t *testing.T) {
	f := newFixture(t)

	person, err := f.svc.Create(context.Background(), &CreatePersonCommand{
		Name:      "Ana",
		AddressID: intPtr(f.addressID),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), person.ID)
	assert.Equal(t, "Ana", person.Name)
	assert.Equal(t, f.addressID, person.AddressID)
}

func TestCreate_BlankNameFailsValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), &CreatePersonCommand{Name: "  "})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestCreate_DanglingReferenceIsPersistenceError(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), &CreatePersonCommand{
		Name:      "Ana",
		AddressID: intPtr(99),
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestCreate_MissingReferenceIsPersistenceError(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), &CreatePersonCommand{Name: "Ana"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestGet_UnknownReportsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.Equal(t, "Person not found", err.Error())
}

func TestUpdate_MergesOnlyPresentFields(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), &CreatePersonCommand{
		Name:      "Ana",
		AddressID: intPtr(f.addressID),
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), created.ID, &UpdatePersonCommand{
		Name: strPtr("Ana Maria"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, f.addressID, updated.AddressID)
}

func TestUpdate_EmptyPayloadIsNoOp(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), &CreatePersonCommand{
		Name:      "Ana",
		AddressID: intPtr(f.addressID),
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), created.ID, &UpdatePersonCommand{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestUpdate_BlankNameFailsValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), 1, &UpdatePersonCommand{Name: strPtr(" ")})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestUpdate_UnknownReportsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), 42, &UpdatePersonCommand{Name: strPtr("Ana")})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestDelete_ThenGetReportsNotFound(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), &CreatePersonCommand{
		Name:      "Ana",
		AddressID: intPtr(f.addressID),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), created.ID))

	_, err = f.svc.Get(context.Background(), created.ID)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	err = f.svc.Delete(context.Background(), created.ID)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestResolveAddress_JoinsPersonToAddress(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), &CreatePersonCommand{
		Name:      "Ana",
		AddressID: intPtr(f.addressID),
	})
	require.NoError(t, err)

	address, err := f.svc.ResolveAddress(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.addressID, address.ID)
	assert.Equal(t, "Rua A", address.Logradouro)
}

func TestResolveAddress_UnknownPersonReportsPersonNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ResolveAddress(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "Person not found", err.Error())
}

func TestResolveAddress_DanglingReferenceReportsAddressNotFound(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), &CreatePersonCommand{
		Name:      "Ana",
		AddressID: intPtr(f.addressID),
	})
	require.NoError(t, err)

	// The memory address store does not restrict deletes, so the person's
	// reference goes dangling.
	require.NoError(t, f.addresses.Delete(context.Background(), f.addressID))

	_, err = f.svc.ResolveAddress(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "Address not found", err.Error())
}

func TestList_ReturnsPage(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"Ana", "Bia", "Caio"} {
		_, err := f.svc.Create(context.Background(), &CreatePersonCommand{
			Name:      name,
			AddressID: intPtr(f.addressID),
		})
		require.NoError(t, err)
	}

	page, err := f.svc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Bia", page[0].Name)
}
