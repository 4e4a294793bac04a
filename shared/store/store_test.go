package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/config"
	"salonbooking/infras/metrics"
	"salonbooking/infras/otel/mocks"
	"salonbooking/shared/clock"
	"salonbooking/shared/store"
)

type failingPersistence struct {
	getErr, setErr, removeErr error
	values                    map[string]string
}

func (f *failingPersistence) Get(_ context.Context, _, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}

	v, ok := f.values[key]

	return v, ok, nil
}

func (f *failingPersistence) Set(_ context.Context, _, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}

	f.values[key] = value

	return nil
}

func (f *failingPersistence) Remove(_ context.Context, _, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}

	delete(f.values, key)

	return nil
}

func newRedisStore(t *testing.T) (*store.Store, *miniredis.Miniredis, *clock.MockClock) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := clock.NewMockClock(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	persistence := store.NewRedisPersistence(client, mocks.NewOtel(), time.Hour)

	return store.New(persistence, time.Hour, c, metrics.NewBookingMetrics(prometheus.NewRegistry())), mr, c
}

func TestStore_RedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr, _ := newRedisStore(t)

	bucket := s.Session("sess-1")
	bucket.Set(ctx, store.KeySelectedDate, "2025-06-10")

	assert.Equal(t, "2025-06-10", mr.HGet("booking:session:sess-1", store.KeySelectedDate))
	assert.Equal(t, time.Hour, mr.TTL("booking:session:sess-1"))

	got, ok := bucket.Get(ctx, store.KeySelectedDate)
	assert.True(t, ok)
	assert.Equal(t, "2025-06-10", got)

	bucket.Remove(ctx, store.KeySelectedDate)
	_, ok = bucket.Get(ctx, store.KeySelectedDate)
	assert.False(t, ok)
	assert.Empty(t, mr.HGet("booking:session:sess-1", store.KeySelectedDate))
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newRedisStore(t)

	s.Session("a").Set(ctx, store.KeySelectedTime, "10:00")

	_, ok := s.Session("b").Get(ctx, store.KeySelectedTime)
	assert.False(t, ok)
}

func TestStore_ReadsBackfillFromPersistence(t *testing.T) {
	ctx := context.Background()
	s, mr, _ := newRedisStore(t)

	mr.HSet("booking:session:sess-2", store.KeyCustomerName, "Mario Rossi")

	got, ok := s.Session("sess-2").Get(ctx, store.KeyCustomerName)
	require.True(t, ok)
	assert.Equal(t, "Mario Rossi", got)

	mr.SetError("LOADING")
	got, ok = s.Session("sess-2").Get(ctx, store.KeyCustomerName)
	assert.True(t, ok)
	assert.Equal(t, "Mario Rossi", got)
}

func TestStore_InstancesSharingRedisAgree(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	newInstance := func() *store.Store {
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		c := clock.NewMockClock(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

		return store.New(store.NewRedisPersistence(client, mocks.NewOtel(), time.Hour), time.Hour, c, nil)
	}

	a, b := newInstance(), newInstance()

	a.Session("sess-7").Set(ctx, store.KeySelectedTime, "10:00")
	got, ok := a.Session("sess-7").Get(ctx, store.KeySelectedTime)
	require.True(t, ok)
	require.Equal(t, "10:00", got)

	b.Session("sess-7").Set(ctx, store.KeySelectedTime, "11:30")

	got, ok = a.Session("sess-7").Get(ctx, store.KeySelectedTime)
	assert.True(t, ok)
	assert.Equal(t, "11:30", got)

	b.Session("sess-7").Remove(ctx, store.KeySelectedTime)

	_, ok = a.Session("sess-7").Get(ctx, store.KeySelectedTime)
	assert.False(t, ok)
}

func TestStore_UnsyncedWriteOutlivesRecovery(t *testing.T) {
	ctx := context.Background()
	p := &failingPersistence{setErr: errors.New("storage unavailable"), values: map[string]string{store.KeySelectedTime: "09:00"}}
	s := store.New(p, time.Hour, clock.NewMockClock(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)), nil)

	bucket := s.Session("sess-8")
	bucket.Set(ctx, store.KeySelectedTime, "10:00")

	got, ok := bucket.Get(ctx, store.KeySelectedTime)
	assert.True(t, ok)
	assert.Equal(t, "10:00", got)

	p.setErr = nil
	bucket.Set(ctx, store.KeySelectedTime, "10:30")
	p.values[store.KeySelectedTime] = "11:00"

	got, ok = bucket.Get(ctx, store.KeySelectedTime)
	assert.True(t, ok)
	assert.Equal(t, "11:00", got)
}

func TestStore_SetFailureServedFromMemory(t *testing.T) {
	ctx := context.Background()
	s, mr, _ := newRedisStore(t)

	mr.SetError("READONLY You can't write against a read only replica")

	bucket := s.Session("sess-3")
	bucket.Set(ctx, store.KeySelectedTime, "10:00")

	got, ok := bucket.Get(ctx, store.KeySelectedTime)
	assert.True(t, ok)
	assert.Equal(t, "10:00", got)

	bucket.Remove(ctx, store.KeySelectedTime)
	_, ok = bucket.Get(ctx, store.KeySelectedTime)
	assert.False(t, ok)
}

func TestStore_PersistenceErrorsAreSwallowed(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("storage unavailable")
	p := &failingPersistence{getErr: boom, setErr: boom, removeErr: boom, values: map[string]string{}}
	s := store.New(p, 0, clock.NewRealClock(), nil)

	bucket := s.Session("sess-4")
	bucket.Set(ctx, store.KeySelectedBarber, `{"id":"alice","name":"Alice"}`)

	got, ok := bucket.Get(ctx, store.KeySelectedBarber)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":"alice","name":"Alice"}`, got)

	_, ok = bucket.Get(ctx, "unknown")
	assert.False(t, ok)
}

func TestStore_MemoryOnly(t *testing.T) {
	ctx := context.Background()
	s := store.New(nil, 0, clock.NewRealClock(), nil)

	bucket := s.Session("sess-5")
	bucket.Set(ctx, store.KeySelectedDate, "2025-06-10")
	bucket.Set(ctx, store.KeySelectedDate, "2025-06-11")

	got, ok := bucket.Get(ctx, store.KeySelectedDate)
	assert.True(t, ok)
	assert.Equal(t, "2025-06-11", got)
}

func TestStore_MemoryEntriesExpire(t *testing.T) {
	ctx := context.Background()
	c := clock.NewMockClock(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	s := store.New(nil, time.Minute, c, nil)

	bucket := s.Session("sess-6")
	bucket.Set(ctx, store.KeySelectedTime, "10:00")

	c.Add(59 * time.Second)
	_, ok := bucket.Get(ctx, store.KeySelectedTime)
	assert.True(t, ok)

	c.Add(time.Second)
	_, ok = bucket.Get(ctx, store.KeySelectedTime)
	assert.False(t, ok)

	bucket.Set(ctx, store.KeySelectedDate, "2025-06-10")
	c.Add(2 * time.Minute)
	s.Sweep()
	_, ok = bucket.Get(ctx, store.KeySelectedDate)
	assert.False(t, ok)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	bucket := store.New(nil, 0, clock.NewRealClock(), nil).Session("sess-7")

	store.SetJSON(ctx, bucket, store.KeySelectedServiceIDs, []string{"haircut", "beard"})
	assert.Equal(t, []string{"haircut", "beard"}, store.GetJSON(ctx, bucket, store.KeySelectedServiceIDs, []string(nil)))

	bucket.Set(ctx, store.KeySelectedBarber, "{not json")
	assert.Equal(t, map[string]string{}, store.GetJSON(ctx, bucket, store.KeySelectedBarber, map[string]string{}))

	assert.Equal(t, 7, store.GetJSON(ctx, bucket, "missing", 7))

	store.SetJSON(ctx, bucket, "bad", make(chan int))
	_, ok := bucket.Get(ctx, "bad")
	assert.False(t, ok)

	store.Clear(ctx, bucket, store.FlowKeys...)
	_, ok = bucket.Get(ctx, store.KeySelectedServiceIDs)
	assert.False(t, ok)
}

func TestStore_FromContext(t *testing.T) {
	s := store.New(nil, 0, clock.NewRealClock(), nil)

	ctx := store.WithSessionID(context.Background(), "sess-9")
	assert.Equal(t, "sess-9", store.SessionID(ctx))
	assert.Empty(t, store.SessionID(context.Background()))

	s.FromContext(ctx).Set(ctx, store.KeySelectedTime, "10:00")

	got, ok := s.Session("sess-9").Get(ctx, store.KeySelectedTime)
	assert.True(t, ok)
	assert.Equal(t, "10:00", got)
}

func TestNewSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Session.TTLSeconds = 1800

	s := store.NewSessionStore(cfg, client, mocks.NewOtel(), clock.NewMockClock(time.Now()), nil)
	s.Session("visitor-1").Set(context.Background(), store.KeySelectedDate, "2025-06-10")

	assert.Equal(t, "2025-06-10", mr.HGet("booking:session:visitor-1", store.KeySelectedDate))
	assert.Equal(t, 30*time.Minute, mr.TTL("booking:session:visitor-1"))
}
