package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/metrics"
	"salonbooking/infras/otel"
	"salonbooking/shared/clock"
	"salonbooking/shared/constant"
)

const (
	sessionKeyPrefix      = "booking:session:"
	otelSessionAttribute  = "store.session"
	otelStoreKeyAttribute = "store.key"
)

// RedisPersistence keeps one hash per session. Every write slides the hash expiry forward.
type RedisPersistence struct {
	client *redis.Client
	otel   otel.Otel
	ttl    time.Duration
}

func NewRedisPersistence(client *redis.Client, ot otel.Otel, ttl time.Duration) *RedisPersistence {
	return &RedisPersistence{client: client, otel: ot, ttl: ttl}
}

// NewSessionStore builds the Store used by the booking flow, mirrored to Redis.
func NewSessionStore(cfg *config.Config, client *redis.Client, ot otel.Otel, c clock.Clock, m *metrics.BookingMetrics) *Store {
	ttl := time.Duration(cfg.Session.TTLSeconds) * time.Second

	return New(NewRedisPersistence(client, ot, ttl), ttl, c, m)
}

func sessionKey(session string) string {
	return sessionKeyPrefix + session
}

// Get implements Persistence.
func (p *RedisPersistence) Get(ctx context.Context, session, key string) (value string, found bool, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelSessionAttribute: session, otelStoreKeyAttribute: key})

	value, err = p.client.HGet(ctx, sessionKey(session), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to get session value: %w", err)
	}

	return value, true, nil
}

// Set implements Persistence.
func (p *RedisPersistence) Set(ctx context.Context, session, key, value string) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelSessionAttribute: session, otelStoreKeyAttribute: key})

	pipe := p.client.TxPipeline()
	pipe.HSet(ctx, sessionKey(session), key, value)

	if p.ttl > 0 {
		pipe.Expire(ctx, sessionKey(session), p.ttl)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set session value: %w", err)
	}

	log.Debug().Str("key", key).Msg("session value stored")

	return nil
}

// Remove implements Persistence.
func (p *RedisPersistence) Remove(ctx context.Context, session, key string) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{otelSessionAttribute: session, otelStoreKeyAttribute: key})

	if err = p.client.HDel(ctx, sessionKey(session), key).Err(); err != nil {
		return fmt.Errorf("failed to remove session value: %w", err)
	}

	return nil
}
