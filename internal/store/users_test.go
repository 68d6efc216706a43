package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserStore(db)
	ctx := context.Background()

	created, err := users.Create(ctx, "alice@example.com", "$2a$10$fakehash")
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, "alice@example.com", created.Email)

	fetched, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "$2a$10$fakehash", fetched.HashedPassword)
}

func TestUserStoreGetUnknown(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserStore(db)

	_, err := users.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserStore(db)
	ctx := context.Background()

	_, err := users.Create(ctx, "alice@example.com", "hash-one")
	require.NoError(t, err)

	_, err = users.Create(ctx, "alice@example.com", "hash-two")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The failed insert must not leave a second row behind.
	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 1, count)
}
