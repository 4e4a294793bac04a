package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salonbooking/config"
	"salonbooking/infras/baas"
	"salonbooking/infras/otel/mocks"
	appointmentModel "salonbooking/internal/domains/appointment/model"
	appointmentMocks "salonbooking/internal/domains/appointment/service/mocks"
	bookingMocks "salonbooking/internal/domains/booking/mocks"
	"salonbooking/internal/domains/booking/model"
	"salonbooking/internal/domains/booking/model/dto"
	bookingRepository "salonbooking/internal/domains/booking/repository"
	"salonbooking/internal/domains/booking/service"
	catalogModel "salonbooking/internal/domains/catalog/model"
	contactModel "salonbooking/internal/domains/contact/model"
	contactDto "salonbooking/internal/domains/contact/model/dto"
	contactMocks "salonbooking/internal/domains/contact/service/mocks"
	flowRepository "salonbooking/internal/domains/flow/repository"
	"salonbooking/shared/clock"
	"salonbooking/shared/failure"
	"salonbooking/shared/identity"
	identityMocks "salonbooking/shared/identity/mocks"
	"salonbooking/shared/store"
)

type deps struct {
	repo        *bookingMocks.MockBooking
	contact     *contactMocks.MockContact
	appointment *appointmentMocks.MockAppointment
	clock       *clock.MockClock
}

func newService(t *testing.T) (service.Booking, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:        bookingMocks.NewMockBooking(ctrl),
		contact:     contactMocks.NewMockContact(ctrl),
		appointment: appointmentMocks.NewMockAppointment(ctrl),
		clock:       clock.NewMockClock(time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC)),
	}

	cfg := &config.Config{}
	cfg.App.BusinessID = "biz-1"
	cfg.Booking.ConfirmationGraceSeconds = 5

	return service.New(d.repo, d.contact, d.appointment, d.clock, cfg, mocks.NewOtel(), nil), d
}

func signedIn() context.Context {
	ctx := identity.WithSession(context.Background(), identity.New("user-1", "giulia@example.com", "access", "", nil))

	return store.WithSessionID(ctx, "browser-1")
}

var haircut = catalogModel.Service{ID: "svc-haircut", Name: "Haircut", DurationMin: 30, PriceCents: 2500}

func validRequest() dto.SubmitRequest {
	return dto.SubmitRequest{
		Staff:    model.StaffRef{ID: "staff-alice", Name: "Alice"},
		Services: []catalogModel.Service{haircut},
		Date:     "2025-06-10",
		Time:     "10:00",
		Timezone: "Europe/Rome",
		Contact: contactDto.ContactRequest{
			FirstName:   " Giulia ",
			LastName:    "Rossi",
			PhonePrefix: "+39",
			PhoneNumber: "3331234567",
		},
	}
}

func TestBookingService_Submit(t *testing.T) {
	svc, d := newService(t)

	d.contact.EXPECT().
		Check(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft contactModel.Draft) (string, error) {
			assert.Equal(t, "Giulia", draft.FirstName)

			return "contact-1", nil
		})
	d.appointment.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in appointmentModel.NewAppointment) (string, error) {
			assert.Equal(t, "staff-alice", in.StaffID)
			assert.Equal(t, "2025-06-10T08:00:00Z", in.Instant)
			assert.Equal(t, "contact-1", in.ContactID)
			assert.Equal(t, "user-1", in.ProfileID)
			assert.Equal(t, []string{"svc-haircut"}, in.ServiceIDs)
			assert.Equal(t, []int{30}, in.Durations)
			assert.NotEmpty(t, in.IdempotencyKey)

			return "appt-1", nil
		})
	d.repo.EXPECT().
		SaveConfirmation(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, c model.Confirmation) {
			assert.Equal(t, "appt-1", c.AppointmentID)
			assert.Equal(t, "Giulia Rossi", c.CustomerName)
			assert.Equal(t, "2025-06-10", c.Date)
			assert.Equal(t, "10:00", c.Time)
			require.NotNil(t, c.Staff)
			assert.Equal(t, "Alice", c.Staff.Name)
		})

	res, err := svc.Submit(signedIn(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, model.StatusSubmitted, res.Status)
	assert.Equal(t, "appt-1", res.AppointmentID)
	assert.NotEmpty(t, res.IdempotencyKey)
}

func TestBookingService_Submit_FreshKeyPerCall(t *testing.T) {
	svc, d := newService(t)

	keys := map[string]bool{}

	d.contact.EXPECT().Check(gomock.Any(), gomock.Any()).Return("contact-1", nil).Times(2)
	d.appointment.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in appointmentModel.NewAppointment) (string, error) {
			keys[in.IdempotencyKey] = true

			return "appt-1", nil
		}).
		Times(2)
	d.repo.EXPECT().SaveConfirmation(gomock.Any(), gomock.Any()).Times(2)

	_, err := svc.Submit(signedIn(), validRequest())
	require.NoError(t, err)
	_, err = svc.Submit(signedIn(), validRequest())
	require.NoError(t, err)

	assert.Len(t, keys, 2)
}

func TestBookingService_Submit_Guards(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		mutate   func(r *dto.SubmitRequest)
		wantCode int
	}{
		{name: "signed out", ctx: context.Background(), mutate: func(*dto.SubmitRequest) {}, wantCode: http.StatusUnauthorized},
		{name: "no services", ctx: signedIn(), mutate: func(r *dto.SubmitRequest) { r.Services = nil }, wantCode: http.StatusBadRequest},
		{name: "no staff", ctx: signedIn(), mutate: func(r *dto.SubmitRequest) { r.Staff = model.StaffRef{} }, wantCode: http.StatusBadRequest},
		{name: "no slot", ctx: signedIn(), mutate: func(r *dto.SubmitRequest) { r.Time = "" }, wantCode: http.StatusBadRequest},
		{name: "invalid phone", ctx: signedIn(), mutate: func(r *dto.SubmitRequest) { r.Contact.PhoneNumber = "333" }, wantCode: http.StatusBadRequest},
		{name: "short name", ctx: signedIn(), mutate: func(r *dto.SubmitRequest) { r.Contact.LastName = "R" }, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			req := validRequest()
			tt.mutate(&req)

			res, err := svc.Submit(tt.ctx, req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, model.StatusIdle, res.Status)
		})
	}
}

func TestBookingService_Submit_RefreshesOnUnauthorized(t *testing.T) {
	svc, d := newService(t)

	ctrl := gomock.NewController(t)
	refresher := identityMocks.NewMockRefresher(ctrl)
	refresher.EXPECT().
		RefreshSession(gomock.Any(), "refresh-1").
		Return(&baas.Tokens{AccessToken: "access-2"}, nil)

	sess := identity.New("user-1", "giulia@example.com", "access-1", "refresh-1", refresher)
	ctx := identity.WithSession(context.Background(), sess)

	unauthorized := &baas.Error{Status: http.StatusUnauthorized, Message: "JWT expired"}

	gomock.InOrder(
		d.contact.EXPECT().Check(gomock.Any(), gomock.Any()).Return("", unauthorized),
		d.contact.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ contactModel.Draft) (string, error) {
				assert.Equal(t, "access-2", identity.AccessToken(ctx))

				return "contact-1", nil
			}),
	)
	d.appointment.EXPECT().Create(gomock.Any(), gomock.Any()).Return("appt-1", nil)
	d.repo.EXPECT().SaveConfirmation(gomock.Any(), gomock.Any())

	res, err := svc.Submit(ctx, validRequest())

	require.NoError(t, err)
	assert.Equal(t, "appt-1", res.AppointmentID)
}

func TestBookingService_Submit_ContactError(t *testing.T) {
	svc, d := newService(t)

	d.contact.EXPECT().
		Check(gomock.Any(), gomock.Any()).
		Return("", &baas.Error{Status: http.StatusInternalServerError, Message: "boom"})

	res, err := svc.Submit(signedIn(), validRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Equal(t, model.StatusFailed, res.Status)
}

func TestBookingService_Submit_ConversionError(t *testing.T) {
	svc, d := newService(t)

	d.contact.EXPECT().Check(gomock.Any(), gomock.Any()).Return("contact-1", nil)

	req := validRequest()
	req.Timezone = "Nowhere/Land"

	res, err := svc.Submit(signedIn(), req)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.Equal(t, model.StatusFailed, res.Status)
}

func TestBookingService_Submit_CreationError(t *testing.T) {
	svc, d := newService(t)

	d.contact.EXPECT().Check(gomock.Any(), gomock.Any()).Return("contact-1", nil)
	d.appointment.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", errors.New("rpc failed"))

	res, err := svc.Submit(signedIn(), validRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Equal(t, model.StatusFailed, res.Status)
	assert.NotEmpty(t, res.IdempotencyKey)
}

func TestBookingService_Submit_Birthdate(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		profErr   error
		wantPatch bool
	}{
		{name: "profile without birthdate", wantPatch: true},
		{name: "profile already has birthdate", stored: "1985-01-01"},
		{name: "profile read fails", profErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			req := validRequest()
			req.Contact.Birthdate = "1990-04-12"

			d.contact.EXPECT().Check(gomock.Any(), gomock.Any()).Return("contact-1", nil)
			d.contact.EXPECT().GetProfile(gomock.Any()).Return(contactModel.Profile{ID: "user-1", Birthdate: tt.stored}, tt.profErr)

			if tt.wantPatch {
				d.contact.EXPECT().PatchBirthdate(gomock.Any(), "1990-04-12").Return(errors.New("patch failed"))
			}

			d.appointment.EXPECT().Create(gomock.Any(), gomock.Any()).Return("appt-1", nil)
			d.repo.EXPECT().SaveConfirmation(gomock.Any(), gomock.Any())

			res, err := svc.Submit(signedIn(), req)

			require.NoError(t, err)
			assert.Equal(t, model.StatusSubmitted, res.Status)
		})
	}
}

func TestBookingService_Submit_RejectsConcurrentSubmission(t *testing.T) {
	svc, d := newService(t)

	var second error

	d.contact.EXPECT().
		Check(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ contactModel.Draft) (string, error) {
			_, second = svc.Submit(ctx, validRequest())

			return "contact-1", nil
		})
	d.appointment.EXPECT().Create(gomock.Any(), gomock.Any()).Return("appt-1", nil)
	d.repo.EXPECT().SaveConfirmation(gomock.Any(), gomock.Any())

	_, err := svc.Submit(signedIn(), validRequest())

	require.NoError(t, err)
	require.Error(t, second)
	assert.Equal(t, http.StatusConflict, failure.GetCode(second))
}

func TestBookingService_GetConfirmation(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().GetConfirmation(gomock.Any()).Return(model.Confirmation{
		AppointmentID: "appt-1",
		CustomerName:  "Giulia Rossi",
		Date:          "2025-06-10",
		Time:          "10:00",
		Services:      []catalogModel.Service{haircut},
		Staff:         &model.StaffRef{ID: "staff-alice", Name: "Alice"},
	}, true)

	res, err := svc.GetConfirmation(signedIn())

	require.NoError(t, err)
	assert.Equal(t, "appt-1", res.AppointmentID)
	assert.Equal(t, "Alice", res.StaffName)
	assert.Len(t, res.Services, 1)
	assert.Equal(t, 1, d.clock.Pending())

	d.repo.EXPECT().ClearFlow(gomock.Any(), "appt-1")
	d.clock.Add(5 * time.Second)
	assert.Equal(t, 0, d.clock.Pending())
}

func TestBookingService_GetConfirmation_Missing(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().GetConfirmation(gomock.Any()).Return(model.Confirmation{}, false)

	_, err := svc.GetConfirmation(signedIn())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, 0, d.clock.Pending())
}

func TestBookingService_GetConfirmation_PickedSlotIsNotABooking(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctrl := gomock.NewController(t)
	c := clock.NewMockClock(time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC))
	s := store.New(store.NewRedisPersistence(client, mocks.NewOtel(), time.Hour), time.Hour, c, nil)

	cfg := &config.Config{}
	cfg.Booking.ConfirmationGraceSeconds = 5

	svc := service.New(
		bookingRepository.New(s, mocks.NewOtel()),
		contactMocks.NewMockContact(ctrl),
		appointmentMocks.NewMockAppointment(ctrl),
		c, cfg, mocks.NewOtel(), nil,
	)

	ctx := signedIn()
	flowRepository.New(s, mocks.NewOtel()).SaveSlot(ctx, "2025-06-10", "10:00")

	_, err := svc.GetConfirmation(ctx)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, 0, c.Pending())

	c.Add(time.Minute)

	hhmm, found := s.FromContext(ctx).Get(ctx, store.KeySelectedTime)
	require.True(t, found)
	assert.Equal(t, "10:00", hhmm)
}
