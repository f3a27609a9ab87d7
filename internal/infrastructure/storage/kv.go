// Package storage holds the raw key-value byte stores the entity store
// persists into. Every backend stores one opaque value per key and offers no
// compare-and-swap: concurrent writers to the same key are last-writer-wins.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written or was deleted
var ErrKeyNotFound = errors.New("key not found")

// KVStore is a durable key-value byte store
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
