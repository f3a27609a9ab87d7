package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry is one stored key
type kvEntry struct {
	Key       string    `gorm:"column:key;type:text;primaryKey"`
	Value     []byte    `gorm:"column:value;type:bytea;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// PostgresStore keeps every key as a row of kv_entries
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the kv_entries table if it does not exist yet
func (p *PostgresStore) Migrate(ctx context.Context) error {
	return p.db.WithContext(ctx).Exec(`CREATE TABLE IF NOT EXISTS kv_entries (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`).Error
}

func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry kvEntry
	// Find instead of Take: an absent key is routine and must not log as a gorm error
	result := p.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&entry)
	if result.Error != nil {
		if isUndefinedTable(result.Error) {
			return nil, ErrKeyNotFound
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrKeyNotFound
	}
	return entry.Value, nil
}

func (p *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	entry := &kvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error
}

func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	return p.db.WithContext(ctx).Where("key = ?", key).Delete(&kvEntry{}).Error
}

func (p *PostgresStore) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// isUndefinedTable checks for PostgreSQL error code 42P01 (undefined_table)
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
