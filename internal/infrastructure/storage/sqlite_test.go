package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"medcare-booking/internal/infrastructure/storage"

	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_Contract(t *testing.T) {
	kv, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "medcare.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	runKVContract(t, kv)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "medcare.db")
	ctx := context.Background()

	kv, err := storage.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "medcare_medical_records", []byte(`[{"id":"1"}]`)))
	require.NoError(t, kv.Close())

	reopened, err := storage.NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "medcare_medical_records")
	require.NoError(t, err)
	require.Equal(t, `[{"id":"1"}]`, string(got))
	require.Equal(t, path, reopened.Path())
}
