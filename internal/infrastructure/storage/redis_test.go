package storage_test

import (
	"context"
	"testing"

	"medcare-booking/internal/infrastructure/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *storage.RedisStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return mr, storage.NewRedisStore(client)
}

func TestRedisStore_Contract(t *testing.T) {
	_, kv := setupTestRedis(t)
	runKVContract(t, kv)
}

func TestRedisStore_WritesPlainStringWithoutTTL(t *testing.T) {
	mr, kv := setupTestRedis(t)

	require.NoError(t, kv.Set(context.Background(), "medcare_appointments", []byte(`[]`)))

	val, err := mr.Get("medcare_appointments")
	require.NoError(t, err)
	require.Equal(t, `[]`, val)
	require.Zero(t, mr.TTL("medcare_appointments"))
}

func TestRedisStore_ServerError(t *testing.T) {
	mr, kv := setupTestRedis(t)
	mr.SetError("LOADING server is starting")

	_, err := kv.Get(context.Background(), "medcare_users")
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrKeyNotFound)
}
