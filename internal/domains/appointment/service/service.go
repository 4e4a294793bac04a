package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/otel"
	"salonbooking/internal/domains/appointment/model"
	"salonbooking/internal/domains/appointment/model/dto"
	"salonbooking/internal/domains/appointment/repository"
	availabilityModel "salonbooking/internal/domains/availability/model"
	availabilityService "salonbooking/internal/domains/availability/service"
	catalogService "salonbooking/internal/domains/catalog/service"
	"salonbooking/shared/clock"
	"salonbooking/shared/constant"
	"salonbooking/shared/failure"
	"salonbooking/shared/identity"
	"salonbooking/shared/message"
	"salonbooking/shared/timezone"
)

type Appointment interface {
	Create(ctx context.Context, in model.NewAppointment) (string, error)
	List(ctx context.Context) (dto.ListAppointmentsResponse, error)
	Reschedule(ctx context.Context, id string, req dto.RescheduleRequest) (dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id string) (dto.AppointmentResponse, error)
}

type serviceImpl struct {
	repo         repository.Appointment
	catalog      catalogService.Catalog
	availability availabilityService.Availability
	clock        clock.Clock
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Appointment,
	catalog catalogService.Catalog,
	availability availabilityService.Availability,
	c clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:         repo,
		catalog:      catalog,
		availability: availability,
		clock:        c,
		cfg:          cfg,
		otel:         otel,
	}
}

// Create sends exactly one creation call and returns the new appointment id.
func (s *serviceImpl) Create(ctx context.Context, in model.NewAppointment) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := in.ToParams(s.cfg.App.BusinessID, s.cfg.Booking.AppointmentStatus, s.cfg.Booking.SourceChannel)

	res, err = s.repo.Create(ctx, params)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create appointment: %w", err)
	}

	return res, nil
}

// List returns the signed-in profile's appointments split around the current instant.
func (s *serviceImpl) List(ctx context.Context) (res dto.ListAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized(message.From(ctx, message.LoginRequired)) // nolint:wrapcheck
	}

	appointments, err := s.repo.GetAll(ctx, sess.ProfileID(), s.cfg.App.BusinessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list appointments")

		return res, failure.BadGateway(message.From(ctx, message.AppointmentsUnavailable)) // nolint:wrapcheck
	}

	upcoming, past := model.Split(appointments, s.clock.Now().UTC())
	res.FromModels(upcoming, past, s.catalog.GetTimezone(ctx))

	return res, nil
}

// Reschedule moves an owned appointment to a new business-local date and time after
// re-verifying the slot with the appointment's staff and services.
func (s *serviceImpl) Reschedule(ctx context.Context, id string, req dto.RescheduleRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.owned(ctx, id, message.RescheduleError)
	if err != nil {
		return res, err
	}

	if current.Status == model.StatusCancelled {
		return res, failure.Conflict(message.From(ctx, message.RescheduleError)) // nolint:wrapcheck
	}

	tz := s.catalog.GetTimezone(ctx)
	q := availabilityModel.Query{
		BusinessID: s.cfg.App.BusinessID,
		StaffID:    current.StaffID,
		ServiceIDs: current.ServiceIDs(),
		Date:       req.Date,
		Timezone:   tz,
	}

	if !s.availability.Verify(ctx, q, req.Time, availabilityModel.SiteReschedule) {
		return res, failure.Conflict(message.From(ctx, message.SlotNoLongerAvailable)) // nolint:wrapcheck
	}

	instant, ok := timezone.LocalToUTCInstant(req.Date, req.Time, tz)
	if !ok {
		return res, failure.UnprocessableEntity(message.From(ctx, message.ConversionError)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, model.UpdateParams{AppointmentID: id, AppointmentDate: instant}); err != nil {
		return res, failure.BadGateway(message.From(ctx, message.RescheduleError)) // nolint:wrapcheck
	}

	return s.reread(ctx, id, tz, message.RescheduleError)
}

// Cancel cancels an owned appointment and returns its new state.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.owned(ctx, id, message.CancelError); err != nil {
		return res, err
	}

	if err = s.repo.Cancel(ctx, id); err != nil {
		return res, failure.BadGateway(message.From(ctx, message.CancelError)) // nolint:wrapcheck
	}

	return s.reread(ctx, id, s.catalog.GetTimezone(ctx), message.CancelError)
}

func (s *serviceImpl) owned(ctx context.Context, id string, onError message.Key) (model.Appointment, error) {
	sess, ok := identity.FromContext(ctx)
	if !ok {
		return model.Appointment{}, failure.Unauthorized(message.From(ctx, message.LoginRequired)) // nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.Appointment{}, failure.BadGateway(message.From(ctx, onError)) // nolint:wrapcheck
	}

	if current.ID == constant.Empty || current.ProfileID != sess.ProfileID() {
		log.Warn().Str("appointment_id", id).Msg("appointment not found for profile")

		return model.Appointment{}, failure.NotFound(message.From(ctx, message.AppointmentNotFound)) // nolint:wrapcheck
	}

	return current, nil
}

func (s *serviceImpl) reread(ctx context.Context, id, tz string, onError message.Key) (res dto.AppointmentResponse, err error) {
	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, failure.BadGateway(message.From(ctx, onError)) // nolint:wrapcheck
	}

	if updated.ID == constant.Empty {
		return res, failure.NotFound(message.From(ctx, message.AppointmentNotFound)) // nolint:wrapcheck
	}

	res.FromModel(updated, tz)

	return res, nil
}
