package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastro/internal/address/models"
	"cadastro/internal/sentinel"
)

func newAddress(street string) *models.Address {
	return &models.Address{
		Logradouro: street,
		Numero:     10,
		Estado:     "SP",
		Cidade:     "São Paulo",
		Bairro:     "Centro",
	}
}

func TestMemoryCreate_AssignsSequentialIDs(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	first := newAddress("Rua A")
	second := newAddress("Rua B")
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryCreate_IDsNeverReused(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	first := newAddress("Rua A")
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Delete(ctx, first.ID))

	second := newAddress("Rua B")
	require.NoError(t, store.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryFindByID_ReturnsCopy(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	address := newAddress("Rua A")
	require.NoError(t, store.Create(ctx, address))

	found, err := store.FindByID(ctx, address.ID)
	require.NoError(t, err)
	found.Logradouro = "mutated"

	again, err := store.FindByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rua A", again.Logradouro)
}

func TestMemoryFindByID_Unknown(t *testing.T) {
	store := NewMemory()

	_, err := store.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestMemoryUpdate_OverwritesRow(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	address := newAddress("Rua A")
	require.NoError(t, store.Create(ctx, address))

	address.Cidade = "Campinas"
	require.NoError(t, store.Update(ctx, address))

	found, err := store.FindByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Campinas", found.Cidade)
}

func TestMemoryUpdate_Unknown(t *testing.T) {
	store := NewMemory()

	err := store.Update(context.Background(), &models.Address{ID: 42})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestMemoryDelete_ThenFindReportsNotFound(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	address := newAddress("Rua A")
	require.NoError(t, store.Create(ctx, address))
	require.NoError(t, store.Delete(ctx, address.ID))

	_, err := store.FindByID(ctx, address.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, address.ID), sentinel.ErrNotFound)
}

func TestMemoryList_OffsetAndLimit(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	for _, street := range []string{"Rua A", "Rua B", "Rua C"} {
		require.NoError(t, store.Create(ctx, newAddress(street)))
	}

	page, err := store.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Rua B", page[0].Logradouro)

	all, err := store.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := store.List(ctx, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryExists(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	address := newAddress("Rua A")
	require.NoError(t, store.Create(ctx, address))

	exists, err := store.Exists(ctx, address.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, exists)
}
