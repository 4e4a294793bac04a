package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/config"
	"salonbooking/infras/otel"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "salonbooking"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Test")
	require.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{"business_id": "b-1", "slots": 3, "ratio": 0.5, "ids": []string{"a"}, "ok": true})
	scope.SetAttributes(map[string]any{"latency": 120 * time.Millisecond, "at": time.Now(), "minutes": []int{570, 600}, "cause": errors.New("x")})
	scope.SetAttributes(nil)
	scope.AddEvent("probe")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("remote failed"))
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
