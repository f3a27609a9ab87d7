package storage_test

import (
	"context"
	"testing"

	"medcare-booking/internal/infrastructure/storage"

	"github.com/stretchr/testify/require"
)

// runKVContract exercises the behaviour every backend must share
func runKVContract(t *testing.T, kv storage.KVStore) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "medcare_users")
	require.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "medcare_users", []byte(`[{"id":"1"}]`)))
	got, err := kv.Get(ctx, "medcare_users")
	require.NoError(t, err)
	require.Equal(t, `[{"id":"1"}]`, string(got))

	// last write wins
	require.NoError(t, kv.Set(ctx, "medcare_users", []byte(`[]`)))
	got, err = kv.Get(ctx, "medcare_users")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(got))

	require.NoError(t, kv.Delete(ctx, "medcare_users"))
	_, err = kv.Get(ctx, "medcare_users")
	require.ErrorIs(t, err, storage.ErrKeyNotFound)

	// deleting an absent key is fine
	require.NoError(t, kv.Delete(ctx, "medcare_users"))
}
