// Package store keeps booking selections for one browsing session.
//
// Every operation writes to and reads from an in-process map first and mirrors to a
// session-scoped Persistence. Persistence failures are logged and swallowed so the flow keeps
// working from memory until the process restarts.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"salonbooking/infras/metrics"
	"salonbooking/shared/clock"
	"salonbooking/shared/constant"
)

// Keys shared by the booking flow and the confirmation step.
const (
	KeySelectedServiceIDs = "selectedServiceIds"
	KeySelectedServiceID  = "selectedServiceId"
	KeySelectedBarber     = "selectedBarber"
	KeySelectedDate       = "selectedDate"
	KeySelectedTime       = "selectedTime"
	KeySelectedServices   = "selectedServices"
	KeyCustomerName       = "customerName"
	KeyConfirmedBooking   = "confirmedAppointmentId"
)

// FlowKeys lists every key the booking flow writes.
var FlowKeys = []string{
	KeySelectedServiceIDs,
	KeySelectedServiceID,
	KeySelectedBarber,
	KeySelectedDate,
	KeySelectedTime,
	KeySelectedServices,
	KeyCustomerName,
	KeyConfirmedBooking,
}

// Persistence is the session-scoped backing storage. A missing key is ("", false, nil).
type Persistence interface {
	Get(ctx context.Context, session, key string) (string, bool, error)
	Set(ctx context.Context, session, key, value string) error
	Remove(ctx context.Context, session, key string) error
}

// Bucket is the key/value view of one session. It never returns errors.
type Bucket interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

type entry struct {
	value   string
	expires time.Time
	// unsynced marks a local write or removal that persistence rejected.
	unsynced bool
	removed  bool
}

// Store hands out per-session buckets.
type Store struct {
	persistence Persistence
	ttl         time.Duration
	clock       clock.Clock
	metrics     *metrics.BookingMetrics

	mu     sync.Mutex
	memory map[string]map[string]entry
}

// New builds a Store. A nil persistence keeps everything in memory.
func New(persistence Persistence, ttl time.Duration, c clock.Clock, m *metrics.BookingMetrics) *Store {
	return &Store{
		persistence: persistence,
		ttl:         ttl,
		clock:       c,
		metrics:     m,
		memory:      make(map[string]map[string]entry),
	}
}

// Session returns the bucket for a session id.
func (s *Store) Session(id string) Bucket {
	return &bucket{store: s, session: id}
}

// FromContext returns the bucket of the browsing session carried by ctx.
func (s *Store) FromContext(ctx context.Context) Bucket {
	return s.Session(SessionID(ctx))
}

// WithSessionID stores the browsing session id on ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyBookingID, id)
}

// SessionID returns the browsing session id carried by ctx, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeyBookingID).(string)

	return id
}

type bucket struct {
	store   *Store
	session string
}

// Get reads persistence first so every instance sharing it sees the same session. Memory serves
// when persistence is absent or failing, and for keys whose last write never reached persistence.
func (b *bucket) Get(ctx context.Context, key string) (string, bool) {
	if b.store.persistence == nil {
		return b.store.memoryGet(b.session, key)
	}

	if e, ok := b.store.memoryUnsynced(b.session, key); ok {
		return e.value, !e.removed
	}

	value, ok, err := b.store.persistence.Get(ctx, b.session, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed reading from session persistence, using fallback")
		b.store.metrics.ObserveStoreFallback("get")

		return b.store.memoryGet(b.session, key)
	}

	if ok {
		b.store.memoryPut(b.session, key, entry{value: value})
	} else {
		b.store.memoryRemove(b.session, key)
	}

	return value, ok
}

func (b *bucket) Set(ctx context.Context, key, value string) {
	if b.store.persistence == nil {
		b.store.memoryPut(b.session, key, entry{value: value})

		return
	}

	err := b.store.persistence.Set(ctx, b.session, key, value)
	b.store.memoryPut(b.session, key, entry{value: value, unsynced: err != nil})

	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed writing to session persistence, using fallback")
		b.store.metrics.ObserveStoreFallback("set")
	}
}

func (b *bucket) Remove(ctx context.Context, key string) {
	if b.store.persistence == nil {
		b.store.memoryRemove(b.session, key)

		return
	}

	if err := b.store.persistence.Remove(ctx, b.session, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed removing from session persistence, using fallback")
		b.store.metrics.ObserveStoreFallback("remove")
		b.store.memoryPut(b.session, key, entry{removed: true, unsynced: true})

		return
	}

	b.store.memoryRemove(b.session, key)
}

// memoryLookup returns the live entry for key, dropping it when expired. Callers hold s.mu.
func (s *Store) memoryLookup(session, key string) (entry, bool) {
	entries, ok := s.memory[session]
	if !ok {
		return entry{}, false
	}

	e, ok := entries[key]
	if !ok {
		return entry{}, false
	}

	if s.expired(e) {
		delete(entries, key)
		if len(entries) == 0 {
			delete(s.memory, session)
		}

		return entry{}, false
	}

	return e, true
}

func (s *Store) memoryGet(session, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.memoryLookup(session, key)
	if !ok || e.removed {
		return "", false
	}

	return e.value, true
}

func (s *Store) memoryUnsynced(session, key string) (entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.memoryLookup(session, key)
	if !ok || !e.unsynced {
		return entry{}, false
	}

	return e, true
}

func (s *Store) memoryPut(session, key string, e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.memory[session]
	if !ok {
		entries = make(map[string]entry)
		s.memory[session] = entries
	}

	e.expires = s.deadline()
	entries[key] = e
}

func (s *Store) memoryRemove(session, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.memory[session]
	if !ok {
		return
	}

	delete(entries, key)
	if len(entries) == 0 {
		delete(s.memory, session)
	}
}

func (s *Store) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}

	return s.clock.Now().Add(s.ttl)
}

func (s *Store) expired(e entry) bool {
	return !e.expires.IsZero() && !s.clock.Now().Before(e.expires)
}

// Sweep drops expired in-memory entries.
func (s *Store) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for session, entries := range s.memory {
		for key, e := range entries {
			if s.expired(e) {
				delete(entries, key)
			}
		}

		if len(entries) == 0 {
			delete(s.memory, session)
		}
	}
}

// GetJSON decodes the value under key into T. Missing or malformed values yield fallback.
func GetJSON[T any](ctx context.Context, b Bucket, key string, fallback T) T {
	raw, ok := b.Get(ctx, key)
	if !ok || raw == "" {
		return fallback
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to parse stored JSON, using fallback")

		return fallback
	}

	return out
}

// SetJSON encodes value as JSON under key. Encoding failures are logged and the key is left as is.
func SetJSON(ctx context.Context, b Bucket, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to encode value for session store")

		return
	}

	b.Set(ctx, key, string(raw))
}

// Clear removes keys from the bucket.
func Clear(ctx context.Context, b Bucket, keys ...string) {
	for _, key := range keys {
		b.Remove(ctx, key)
	}
}
