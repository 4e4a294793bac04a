package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/baas"
	"salonbooking/infras/metrics"
	"salonbooking/infras/otel"
	appointmentModel "salonbooking/internal/domains/appointment/model"
	appointmentService "salonbooking/internal/domains/appointment/service"
	"salonbooking/internal/domains/booking/model"
	"salonbooking/internal/domains/booking/model/dto"
	"salonbooking/internal/domains/booking/repository"
	catalogModel "salonbooking/internal/domains/catalog/model"
	contactModel "salonbooking/internal/domains/contact/model"
	contactService "salonbooking/internal/domains/contact/service"
	"salonbooking/shared/clock"
	"salonbooking/shared/constant"
	"salonbooking/shared/failure"
	"salonbooking/shared/identity"
	"salonbooking/shared/message"
	"salonbooking/shared/store"
	"salonbooking/shared/timezone"
	"salonbooking/shared/validator"
)

// Booking turns a completed selection into an appointment.
type Booking interface {
	Submit(ctx context.Context, req dto.SubmitRequest) (model.Receipt, error)
	GetConfirmation(ctx context.Context) (dto.ConfirmationResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	contact     contactService.Contact
	appointment appointmentService.Appointment
	clock       clock.Clock
	cfg         *config.Config
	otel        otel.Otel
	metrics     *metrics.BookingMetrics

	inFlight sync.Map
}

func New(
	repo repository.Booking,
	contact contactService.Contact,
	appointment appointmentService.Appointment,
	c clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
	m *metrics.BookingMetrics,
) Booking {
	return &serviceImpl{
		repo:        repo,
		contact:     contact,
		appointment: appointment,
		clock:       c,
		cfg:         cfg,
		otel:        otel,
		metrics:     m,
	}
}

// Submit runs one submission: contact upsert, optional birthdate patch, instant conversion,
// appointment creation, then the confirmation snapshot. Only one submission per browsing
// session runs at a time.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequest) (res model.Receipt, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Status = model.StatusIdle

	sess, ok := identity.FromContext(ctx)
	if !ok {
		return res, failure.Unauthorized(message.From(ctx, message.LoginRequired)) // nolint:wrapcheck
	}

	key := store.SessionID(ctx)
	if key == constant.Empty {
		key = sess.ProfileID()
	}

	if _, busy := s.inFlight.LoadOrStore(key, struct{}{}); busy {
		s.metrics.ObserveSubmission(model.OutcomeRejected)

		return res, failure.Conflict(message.From(ctx, message.SubmissionInProgress)) // nolint:wrapcheck
	}
	defer s.inFlight.Delete(key)

	outcome := model.OutcomeSubmitted
	defer func() { s.metrics.ObserveSubmission(outcome) }()

	if err = s.guard(ctx, req); err != nil {
		outcome = model.OutcomeInvalid

		return res, err
	}

	req.Contact.Normalize()

	if err = validator.ValidateStruct(&req.Contact); err != nil {
		outcome = model.OutcomeInvalid

		return res, err // nolint:wrapcheck
	}

	draft := req.Contact.ToModel()

	contactID, err := s.checkContact(ctx, sess, draft)
	if err != nil {
		res.Status = model.StatusFailed
		outcome = model.OutcomeContactError
		log.Error().Err(err).Msg("failed to check contact")

		return res, failure.BadGateway(message.From(ctx, message.ContactError)) // nolint:wrapcheck
	}

	if draft.Birthdate != constant.Empty {
		s.patchBirthdate(ctx, draft.Birthdate)
	}

	instant, ok := timezone.LocalToUTCInstant(req.Date, req.Time, req.Timezone)
	if !ok {
		res.Status = model.StatusFailed
		outcome = model.OutcomeConversionError
		log.Error().Str("date", req.Date).Str("time", req.Time).Str("timezone", req.Timezone).Msg("failed to convert slot to utc")

		return res, failure.UnprocessableEntity(message.From(ctx, message.ConversionError)) // nolint:wrapcheck
	}

	res.IdempotencyKey = uuid.NewString()

	appointmentID, err := s.appointment.Create(ctx, appointmentModel.NewAppointment{
		StaffID:        req.Staff.ID,
		Instant:        instant,
		ContactID:      contactID,
		ProfileID:      sess.ProfileID(),
		ServiceIDs:     catalogModel.ServiceIDs(req.Services),
		Durations:      catalogModel.Durations(req.Services),
		IdempotencyKey: res.IdempotencyKey,
	})
	if err != nil {
		res.Status = model.StatusFailed
		outcome = model.OutcomeCreationError
		log.Error().Err(err).Str("idempotency_key", res.IdempotencyKey).Msg("failed to create appointment")

		return res, failure.BadGateway(message.From(ctx, message.CreationError)) // nolint:wrapcheck
	}

	staff := req.Staff
	s.repo.SaveConfirmation(ctx, model.Confirmation{
		AppointmentID: appointmentID,
		CustomerName:  draft.FullName(),
		Date:          req.Date,
		Time:          req.Time,
		Services:      req.Services,
		Staff:         &staff,
	})

	res.Status = model.StatusSubmitted
	res.AppointmentID = appointmentID

	return res, nil
}

func (s *serviceImpl) guard(ctx context.Context, req dto.SubmitRequest) error {
	switch {
	case len(req.Services) == 0:
		return failure.BadRequestFromString(message.From(ctx, message.SelectServiceFirst)) // nolint:wrapcheck
	case req.Staff.ID == constant.Empty:
		return failure.BadRequestFromString(message.From(ctx, message.SelectStaffFirst)) // nolint:wrapcheck
	case req.Date == constant.Empty || req.Time == constant.Empty:
		return failure.BadRequestFromString(message.From(ctx, message.SelectSlotFirst)) // nolint:wrapcheck
	}

	return nil
}

// checkContact retries once with a refreshed token when the backend rejects the current one.
func (s *serviceImpl) checkContact(ctx context.Context, sess identity.Session, draft contactModel.Draft) (string, error) {
	contactID, err := s.contact.Check(ctx, draft)
	if err == nil || !baas.IsUnauthorized(err) {
		return contactID, err // nolint:wrapcheck
	}

	log.Info().Msg("contact check unauthorized, refreshing session")

	if refreshErr := sess.Refresh(ctx); refreshErr != nil {
		return constant.Empty, errors.Join(err, refreshErr)
	}

	contactID, err = s.contact.Check(ctx, draft)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to check contact after refresh: %w", err)
	}

	return contactID, nil
}

// patchBirthdate fills the profile birthdate only when none is stored. Failures are logged.
func (s *serviceImpl) patchBirthdate(ctx context.Context, birthdate string) {
	profile, err := s.contact.GetProfile(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load profile, skipping birthdate update")

		return
	}

	if profile.Birthdate != constant.Empty {
		return
	}

	if err = s.contact.PatchBirthdate(ctx, birthdate); err != nil {
		log.Warn().Err(err).Msg("failed to update profile birthdate")
	}
}

// GetConfirmation returns the snapshot of the last booking and clears the flow selections after
// the configured grace period.
func (s *serviceImpl) GetConfirmation(ctx context.Context) (res dto.ConfirmationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetConfirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	confirmation, ok := s.repo.GetConfirmation(ctx)
	if !ok {
		return res, failure.NotFound(message.From(ctx, message.NoConfirmation)) // nolint:wrapcheck
	}

	res.FromModel(confirmation)

	grace := time.Duration(s.cfg.Booking.ConfirmationGraceSeconds) * time.Second
	detached := context.WithoutCancel(ctx)

	s.clock.AfterFunc(grace, func() {
		s.repo.ClearFlow(detached, confirmation.AppointmentID)
	})

	return res, nil
}
