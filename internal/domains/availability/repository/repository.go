package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/baas"
	"salonbooking/infras/otel"
	"salonbooking/internal/domains/availability/model"
	"salonbooking/shared/constant"
	"salonbooking/shared/identity"
)

type Availability interface {
	GetSlots(ctx context.Context, req model.SlotRequest) (model.SlotResponse, error)
}

type repositoryImpl struct {
	client   baas.Client
	function string
	otel     otel.Otel
}

func New(client baas.Client, cfg *config.Config, otel otel.Otel) Availability {
	return &repositoryImpl{
		client:   client,
		function: cfg.Backend.Functions.Availability,
		otel:     otel,
	}
}

// GetSlots calls the availability function with the caller's token, or anonymously.
func (r *repositoryImpl) GetSlots(ctx context.Context, req model.SlotRequest) (res model.SlotResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking.staff_id": req.StaffID,
		"booking.date":     req.RequestedDate,
		"booking.time":     req.RequestedTime,
	})

	if err = r.client.Invoke(ctx, r.function, identity.AccessToken(ctx), req, &res); err != nil {
		log.Error().Err(err).Str("staff_id", req.StaffID).Str("date", req.RequestedDate).Msg("failed to invoke availability function")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	return res, nil
}
