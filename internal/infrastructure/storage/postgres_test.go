package storage_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"medcare-booking/internal/infrastructure/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockPostgresStore(t *testing.T) (*storage.PostgresStore, sqlmock.Sqlmock) {
	return newMockPostgresStoreWithLogger(t, logger.Default.LogMode(logger.Silent))
}

func newMockPostgresStoreWithLogger(t *testing.T, l logger.Interface) (*storage.PostgresStore, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 l,
	})
	require.NoError(t, err)

	return storage.NewPostgresStore(db), mock
}

// gormLines collects what a gorm logger prints
type gormLines struct {
	lines []string
}

func (g *gormLines) Printf(format string, args ...interface{}) {
	g.lines = append(g.lines, fmt.Sprintf(format, args...))
}

var kvColumns = []string{"key", "value", "updated_at"}

func TestPostgresStore_GetFound(t *testing.T) {
	kv, mock := newMockPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries" WHERE key = $1`)).
		WillReturnRows(sqlmock.NewRows(kvColumns).AddRow("medcare_users", []byte(`[]`), time.Now()))

	got, err := kv.Get(context.Background(), "medcare_users")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(got))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMissingRow(t *testing.T) {
	kv, mock := newMockPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries" WHERE key = $1`)).
		WillReturnRows(sqlmock.NewRows(kvColumns))

	_, err := kv.Get(context.Background(), "medcare_users")
	require.ErrorIs(t, err, storage.ErrKeyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMissingRowLogsNothing(t *testing.T) {
	out := &gormLines{}
	kv, mock := newMockPostgresStoreWithLogger(t, logger.New(out, logger.Config{LogLevel: logger.Warn}))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries" WHERE key = $1`)).
		WillReturnRows(sqlmock.NewRows(kvColumns))

	_, err := kv.Get(context.Background(), "medcare_users")
	require.ErrorIs(t, err, storage.ErrKeyNotFound)
	require.Empty(t, out.lines)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetUndefinedTableReadsAsAbsent(t *testing.T) {
	kv, mock := newMockPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries"`)).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "kv_entries" does not exist`})

	_, err := kv.Get(context.Background(), "medcare_users")
	require.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestPostgresStore_GetOtherErrorPropagates(t *testing.T) {
	kv, mock := newMockPostgresStore(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries"`)).WillReturnError(boom)

	_, err := kv.Get(context.Background(), "medcare_users")
	require.ErrorIs(t, err, boom)
}

func TestPostgresStore_SetUpserts(t *testing.T) {
	kv, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO "kv_entries" .* ON CONFLICT \("key"\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Set(context.Background(), "medcare_users", []byte(`[]`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteAndMigrate(t *testing.T) {
	kv, mock := newMockPostgresStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS kv_entries`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "kv_entries" WHERE key = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Migrate(context.Background()))
	require.NoError(t, kv.Delete(context.Background(), "medcare_users"))
	require.NoError(t, mock.ExpectationsWereMet())
}
