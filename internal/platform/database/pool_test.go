package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyURLSelectsNoPool(t *testing.T) {
	pool, err := New(Config{})
	require.NoError(t, err)
	assert.Nil(t, pool)
}

// A nil pool is the in-memory mode; every method must stay callable on it
// so main can defer Close before deciding which stores to build.
func TestPool_NilReceiverIsSafe(t *testing.T) {
	var pool *Pool

	assert.NoError(t, pool.Close())
	assert.Error(t, pool.Health(context.Background()))
	assert.Equal(t, sql.DBStats{}, pool.Stats())
}
