package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"
	"medcare-booking/internal/infrastructure/metrics"
	"medcare-booking/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

// Collection names. The stored key is the configured prefix plus the name.
const (
	CollectionUsers              = "users"
	CollectionAppointments       = "appointments"
	CollectionMedicalRecords     = "medical_records"
	CollectionDoctorAvailability = "doctor_availability"
	CollectionAuditLogs          = "audit_logs"
	sessionSlot                  = "current_user"
)

var (
	ErrEntityNotFound = domainRepo.ErrEntityNotFound
	ErrEntityConflict = domainRepo.ErrEntityConflict
)

// Identifiable is anything stored in a collection keyed by id
type Identifiable interface {
	EntityID() string
}

// EntityStore is the only component that touches the key-value backend.
// Every collection is one JSON array under one key; every write rewrites the
// whole array.
//
// Reads never fail: an absent key, malformed JSON or a backend error all read
// as an empty collection. Writes report backend failures as errors.
//
// mu serializes read-modify-write cycles within this process. Writers in
// other processes sharing the backend are last-writer-wins.
type EntityStore struct {
	kv      storage.KVStore
	prefix  string
	log     *logrus.Logger
	metrics *metrics.Metrics
	mu      sync.Mutex
}

func NewEntityStore(kv storage.KVStore, prefix string, log *logrus.Logger, m *metrics.Metrics) *EntityStore {
	return &EntityStore{
		kv:      kv,
		prefix:  prefix,
		log:     log,
		metrics: m,
	}
}

func (s *EntityStore) key(name string) string {
	return s.prefix + name
}

// metricLabel folds every session slot into one label value
func metricLabel(name string) string {
	label, _, _ := strings.Cut(name, ":")
	return label
}

// readRaw returns the stored bytes of name, or false when there is nothing usable
func (s *EntityStore) readRaw(ctx context.Context, name string) ([]byte, bool) {
	label := metricLabel(name)
	raw, err := s.kv.Get(ctx, s.key(name))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			s.metrics.DegradedRead(label, "absent")
			return nil, false
		}
		s.log.Warnf("Failed to read collection %s, treating as empty: %+v", name, err)
		s.metrics.StorageOp(label, "read", err)
		s.metrics.DegradedRead(label, "backend")
		return nil, false
	}
	s.metrics.StorageOp(label, "read", nil)
	return raw, true
}

func (s *EntityStore) writeRaw(ctx context.Context, name string, value any) error {
	label := metricLabel(name)
	data, err := json.Marshal(value)
	if err != nil {
		s.metrics.StorageOp(label, "write", err)
		return err
	}
	err = s.kv.Set(ctx, s.key(name), data)
	s.metrics.StorageOp(label, "write", err)
	if err != nil {
		s.log.Warnf("Failed to write collection %s: %+v", name, err)
		return err
	}
	return nil
}

func decodeOrEmpty[T any](s *EntityStore, name string, raw []byte) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warnf("Collection %s is malformed, treating as empty: %+v", name, err)
		s.metrics.DegradedRead(metricLabel(name), "malformed")
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// ReadCollection returns every entity stored under name, in stored order
func ReadCollection[T any](ctx context.Context, s *EntityStore, name string) []T {
	raw, ok := s.readRaw(ctx, name)
	if !ok {
		return []T{}
	}
	return decodeOrEmpty[T](s, name, raw)
}

// Upsert replaces the first entity with the same id in place, or appends it
func Upsert[T Identifiable](ctx context.Context, s *EntityStore, name string, item T) error {
	id := item.EntityID()
	return UpsertBy(ctx, s, name, item, func(existing T) bool {
		return existing.EntityID() == id
	})
}

// UpsertBy is Upsert with a caller-supplied identity, e.g. users keyed by email
func UpsertBy[T any](ctx context.Context, s *EntityStore, name string, item T, same func(T) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := ReadCollection[T](ctx, s, name)
	replaced := false
	for i := range items {
		if same(items[i]) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return s.writeRaw(ctx, name, items)
}

// Insert appends item unless an entity matching conflict is already stored.
// The check and the write happen under one lock.
func Insert[T any](ctx context.Context, s *EntityStore, name string, item T, conflict func(T) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := ReadCollection[T](ctx, s, name)
	for i := range items {
		if conflict(items[i]) {
			return ErrEntityConflict
		}
	}
	return s.writeRaw(ctx, name, append(items, item))
}

// Update applies fn to the entity with the given id and persists the result.
// The collection is left untouched when the id is absent or fn fails.
func Update[T Identifiable](ctx context.Context, s *EntityStore, name, id string, fn func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	items := ReadCollection[T](ctx, s, name)
	for i := range items {
		if items[i].EntityID() != id {
			continue
		}
		updated := items[i]
		if err := fn(&updated); err != nil {
			return zero, err
		}
		items[i] = updated
		if err := s.writeRaw(ctx, name, items); err != nil {
			return zero, err
		}
		return updated, nil
	}
	return zero, ErrEntityNotFound
}

// Append adds item at the end of the collection. With limit > 0 the oldest
// entries are dropped so at most limit remain.
func Append[T any](ctx context.Context, s *EntityStore, name string, item T, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := append(ReadCollection[T](ctx, s, name), item)
	if limit > 0 && len(items) > limit {
		items = items[len(items)-limit:]
	}
	return s.writeRaw(ctx, name, items)
}

// ReadMap returns a JSON object collection. Same degradation rules as ReadCollection.
func ReadMap[V any](ctx context.Context, s *EntityStore, name string) map[string]V {
	raw, ok := s.readRaw(ctx, name)
	if !ok {
		return map[string]V{}
	}
	var m map[string]V
	if err := json.Unmarshal(raw, &m); err != nil {
		s.log.Warnf("Collection %s is malformed, treating as empty: %+v", name, err)
		s.metrics.DegradedRead(metricLabel(name), "malformed")
		return map[string]V{}
	}
	if m == nil {
		return map[string]V{}
	}
	return m
}

// PutMapEntry sets one key of a JSON object collection
func PutMapEntry[V any](ctx context.Context, s *EntityStore, name, key string, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := ReadMap[V](ctx, s, name)
	m[key] = value
	return s.writeRaw(ctx, name, m)
}

// sessionKey addresses one session slot. The empty id is the single legacy slot.
func sessionKey(id string) string {
	if id == "" {
		return sessionSlot
	}
	return sessionSlot + ":" + id
}

// SetSession overwrites the session slot for session.ID
func (s *EntityStore) SetSession(ctx context.Context, session entity.Session) error {
	return s.writeRaw(ctx, sessionKey(session.ID), session)
}

// GetSession returns the session in slot id; malformed or absent slots read as no session
func (s *EntityStore) GetSession(ctx context.Context, id string) (*entity.Session, bool) {
	raw, ok := s.readRaw(ctx, sessionKey(id))
	if !ok {
		return nil, false
	}
	var session *entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.Warnf("Session slot %s is malformed, treating as logged out: %+v", id, err)
		s.metrics.DegradedRead(sessionSlot, "malformed")
		return nil, false
	}
	// null, or a slot without a user, is a logged-out slot
	if session == nil || session.User.ID == "" {
		return nil, false
	}
	return session, true
}

func (s *EntityStore) ClearSession(ctx context.Context, id string) error {
	err := s.kv.Delete(ctx, s.key(sessionKey(id)))
	s.metrics.StorageOp(sessionSlot, "delete", err)
	return err
}
