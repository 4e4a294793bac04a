package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/baas"
	"salonbooking/infras/otel"
	"salonbooking/internal/domains/appointment/model"
	"salonbooking/shared"
	"salonbooking/shared/constant"
	"salonbooking/shared/identity"
)

type Appointment interface {
	Create(ctx context.Context, params model.CreateParams) (string, error)
	GetAll(ctx context.Context, profileID, businessID string) ([]model.Appointment, error)
	Get(ctx context.Context, id string) (model.Appointment, error)
	Update(ctx context.Context, params model.UpdateParams) error
	Cancel(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client baas.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client baas.Client, cfg *config.Config, otel otel.Otel) Appointment {
	return &repositoryImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// Create calls the creation RPC once. The result must be {"appointment_id": "<id>"}; anything
// else is ErrMalformedResponse.
func (r *repositoryImpl) Create(ctx context.Context, params model.CreateParams) (res string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.idempotency_key", params.IdempotencyKey)

	var out model.CreateResponse
	if err = r.client.RPC(ctx, r.cfg.Backend.RPC.CreateAppointment, identity.AccessToken(ctx), params, &out); err != nil {
		log.Error().Err(err).Str("idempotency_key", params.IdempotencyKey).Msg("failed to create appointment")

		return constant.Empty, fmt.Errorf("failed to create appointment: %w", err)
	}

	if out.AppointmentID == constant.Empty {
		err = fmt.Errorf("%w: missing appointment_id", baas.ErrMalformedResponse)
		log.Error().Err(err).Str("idempotency_key", params.IdempotencyKey).Msg("creation returned no appointment id")

		return constant.Empty, err
	}

	return out.AppointmentID, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, profileID, businessID string) (res []model.Appointment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{
		"select":              []string{model.Columns},
		model.FieldProfileID:  []string{shared.Eq(profileID)},
		model.FieldBusinessID: []string{shared.Eq(businessID)},
		"order":               []string{model.FieldAppointmentDate + ".asc"},
	}

	if err = r.client.Select(ctx, model.TableAppointments, identity.AccessToken(ctx), query, &res); err != nil {
		log.Error().Err(err).Msg("failed to select appointments")

		return nil, fmt.Errorf("failed to select appointments: %w", err)
	}

	return res, nil
}

// Get returns a zero Appointment when no row is visible.
func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Appointment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{
		"select":      []string{model.Columns},
		model.FieldID: []string{shared.Eq(id)},
		"limit":       []string{"1"},
	}

	var rows []model.Appointment
	if err = r.client.Select(ctx, model.TableAppointments, identity.AccessToken(ctx), query, &rows); err != nil {
		log.Error().Err(err).Str("appointment_id", id).Msg("failed to select appointment")

		return res, fmt.Errorf("failed to select appointment: %w", err)
	}

	if len(rows) == 0 {
		return res, nil
	}

	return rows[0], nil
}

func (r *repositoryImpl) Update(ctx context.Context, params model.UpdateParams) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.RPC(ctx, r.cfg.Backend.RPC.UpdateAppointment, identity.AccessToken(ctx), params, nil); err != nil {
		log.Error().Err(err).Str("appointment_id", params.AppointmentID).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := model.CancelParams{AppointmentID: id}

	if err = r.client.RPC(ctx, r.cfg.Backend.RPC.CancelAppointment, identity.AccessToken(ctx), params, nil); err != nil {
		log.Error().Err(err).Str("appointment_id", id).Msg("failed to cancel appointment")

		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	return nil
}
