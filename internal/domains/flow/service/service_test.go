package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salonbooking/config"
	"salonbooking/infras/otel/mocks"
	availabilityModel "salonbooking/internal/domains/availability/model"
	availabilityMocks "salonbooking/internal/domains/availability/service/mocks"
	bookingModel "salonbooking/internal/domains/booking/model"
	bookingDto "salonbooking/internal/domains/booking/model/dto"
	bookingMocks "salonbooking/internal/domains/booking/service/mocks"
	catalogModel "salonbooking/internal/domains/catalog/model"
	catalogMocks "salonbooking/internal/domains/catalog/service/mocks"
	contactDto "salonbooking/internal/domains/contact/model/dto"
	contactMocks "salonbooking/internal/domains/contact/service/mocks"
	flowMocks "salonbooking/internal/domains/flow/mocks"
	"salonbooking/internal/domains/flow/model"
	"salonbooking/internal/domains/flow/model/dto"
	"salonbooking/internal/domains/flow/service"
	"salonbooking/shared/clock"
	"salonbooking/shared/failure"
	"salonbooking/shared/identity"
)

type deps struct {
	repo         *flowMocks.MockFlow
	catalog      *catalogMocks.MockCatalog
	availability *availabilityMocks.MockAvailability
	contact      *contactMocks.MockContact
	booking      *bookingMocks.MockBooking
}

func newService(t *testing.T, now time.Time) (service.Flow, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:         flowMocks.NewMockFlow(ctrl),
		catalog:      catalogMocks.NewMockCatalog(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		contact:      contactMocks.NewMockContact(ctrl),
		booking:      bookingMocks.NewMockBooking(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.BusinessID = "biz-1"
	cfg.Booking.MaxProbeDays = 14

	svc := service.New(d.repo, d.catalog, d.availability, d.contact, d.booking, clock.NewMockClock(now), cfg, mocks.NewOtel())

	return svc, d
}

var (
	morning = time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC)
	haircut = catalogModel.Service{ID: "svc-haircut", Name: "Haircut", DurationMin: 30}
	alice   = bookingModel.StaffRef{ID: "staff-alice", Name: "Alice"}
)

func fullSelection() model.Selection {
	staff := alice

	return model.Selection{
		ServiceIDs: []string{"svc-haircut"},
		Services:   []catalogModel.Service{haircut},
		Staff:      &staff,
		Date:       "2025-06-10",
		Time:       "10:00",
	}
}

func signedIn() context.Context {
	return identity.WithSession(context.Background(), identity.New("user-1", "giulia@example.com", "access", "", nil))
}

func validContact() contactDto.ContactRequest {
	return contactDto.ContactRequest{FirstName: "Giulia", LastName: "Rossi", PhonePrefix: "+39", PhoneNumber: "3331234567"}
}

func TestFlowService_SelectServices(t *testing.T) {
	svc, d := newService(t, morning)

	d.catalog.EXPECT().GetServicesByID(gomock.Any(), []string{"svc-haircut"}).Return([]catalogModel.Service{haircut}, nil)
	d.repo.EXPECT().SaveServices(gomock.Any(), []catalogModel.Service{haircut})

	res, err := svc.SelectServices(context.Background(), dto.SelectServicesRequest{ServiceIDs: []string{"svc-haircut"}})

	require.NoError(t, err)
	assert.Equal(t, model.StateStaffSelection, res.State)
	require.NotNil(t, res.Services)
	assert.Equal(t, 30, res.Services.TotalDuration)
}

func TestFlowService_SelectServices_Unknown(t *testing.T) {
	svc, d := newService(t, morning)

	d.catalog.EXPECT().GetServicesByID(gomock.Any(), gomock.Any()).Return(nil, failure.NotFound("unknown service"))

	_, err := svc.SelectServices(context.Background(), dto.SelectServicesRequest{ServiceIDs: []string{"svc-gone"}})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestFlowService_EnterStaff_RedirectsWithoutServices(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(model.Selection{})

	res, err := svc.EnterStaff(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.StateServiceSelection, res.Redirect)
}

func TestFlowService_SelectStaff(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(model.Selection{ServiceIDs: []string{"svc-haircut"}})
	d.catalog.EXPECT().GetStaffMember(gomock.Any(), "staff-alice").Return(catalogModel.StaffMember{ID: "staff-alice", Name: "Alice", Status: "active"}, nil)
	d.repo.EXPECT().SaveStaff(gomock.Any(), alice)

	res, err := svc.SelectStaff(context.Background(), dto.SelectStaffRequest{StaffID: "staff-alice"})

	require.NoError(t, err)
	assert.Equal(t, model.StateSlotSelection, res.State)
	assert.Equal(t, &alice, res.Staff)
}

func TestFlowService_EnterSlots_GuardOrder(t *testing.T) {
	staff := alice

	tests := []struct {
		name string
		sel  model.Selection
		want string
	}{
		{name: "nothing selected", sel: model.Selection{}, want: model.StateServiceSelection},
		{name: "staff without services", sel: model.Selection{Staff: &staff}, want: model.StateServiceSelection},
		{name: "services without staff", sel: model.Selection{ServiceIDs: []string{"svc-haircut"}}, want: model.StateStaffSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t, morning)

			d.repo.EXPECT().GetSelection(gomock.Any()).Return(tt.sel)

			res, err := svc.EnterSlots(context.Background(), "2025-06-10")

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Redirect)
			assert.Nil(t, res.Slots)
		})
	}
}

func TestFlowService_EnterSlots_DefaultsToBusinessToday(t *testing.T) {
	svc, d := newService(t, time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC))

	sel := fullSelection()
	sel.Date, sel.Time = "", ""

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(sel)
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q availabilityModel.Query) availabilityModel.Result {
			assert.Equal(t, "2025-06-11", q.Date)
			assert.Equal(t, "staff-alice", q.StaffID)
			assert.Equal(t, "biz-1", q.BusinessID)

			return availabilityModel.Result{Recommended: []availabilityModel.Slot{{Label: "09:00", Value: "09:00"}}, Other: []availabilityModel.Slot{}}
		})

	res, err := svc.EnterSlots(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", res.Date)
	require.NotNil(t, res.Slots)
	assert.Len(t, res.Slots.Recommended, 1)
	assert.Nil(t, res.Contact)
}

func TestFlowService_EnterSlots_AttachesSavedContact(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().Query(gomock.Any(), gomock.Any()).Return(availabilityModel.EmptyResult())
	d.contact.EXPECT().GetSaved(gomock.Any()).Return(contactDto.SavedContactResponse{FirstName: "Giulia"}, nil)

	res, err := svc.EnterSlots(signedIn(), "2025-06-10")

	require.NoError(t, err)
	require.NotNil(t, res.Contact)
	assert.Equal(t, "Giulia", res.Contact.FirstName)
	assert.Equal(t, "10:00", res.Time)
}

func TestFlowService_EnterSlots_InvalidDate(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")

	_, err := svc.EnterSlots(context.Background(), "10/06/2025")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestFlowService_PickSlot(t *testing.T) {
	tests := []struct {
		name      string
		available bool
	}{
		{name: "still offered", available: true},
		{name: "no longer offered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t, morning)

			sel := fullSelection()
			sel.Date, sel.Time = "", ""

			d.repo.EXPECT().GetSelection(gomock.Any()).Return(sel)
			d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
			d.availability.EXPECT().
				Verify(gomock.Any(), gomock.Any(), "11:30", availabilityModel.SitePick).
				Return(tt.available)

			if tt.available {
				d.repo.EXPECT().SaveSlot(gomock.Any(), "2025-06-12", "11:30")
			}

			res, err := svc.PickSlot(context.Background(), dto.PickSlotRequest{Date: "2025-06-12", Time: "11:30"})

			require.NoError(t, err)

			if tt.available {
				assert.Equal(t, "11:30", res.Time)
				assert.Empty(t, res.Warning)
			} else {
				assert.Empty(t, res.Time)
				assert.NotEmpty(t, res.Warning)
			}
		})
	}
}

func TestFlowService_Restore_ClearsTakenSlot(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), "10:00", availabilityModel.SiteRestore).Return(false)
	d.repo.EXPECT().ClearSlot(gomock.Any())

	res, err := svc.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.StateSlotSelection, res.State)
	assert.Empty(t, res.Time)
	assert.NotEmpty(t, res.Warning)
}

func TestFlowService_Restore_KeepsOfferedSlot(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), "10:00", availabilityModel.SiteRestore).Return(true)
	d.contact.EXPECT().GetSaved(gomock.Any()).Return(contactDto.SavedContactResponse{}, nil)

	res, err := svc.Restore(signedIn())

	require.NoError(t, err)
	assert.Equal(t, "10:00", res.Time)
	assert.Empty(t, res.Warning)
	assert.NotNil(t, res.Contact)
}

func TestFlowService_Submit(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), "10:00", availabilityModel.SiteSubmit).Return(true)
	d.booking.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req bookingDto.SubmitRequest) (bookingModel.Receipt, error) {
			assert.Equal(t, alice, req.Staff)
			assert.Equal(t, "2025-06-10", req.Date)
			assert.Equal(t, "10:00", req.Time)
			assert.Equal(t, "Europe/Rome", req.Timezone)
			assert.Equal(t, []catalogModel.Service{haircut}, req.Services)

			return bookingModel.Receipt{Status: bookingModel.StatusSubmitted, AppointmentID: "appt-1"}, nil
		})

	res, err := svc.Submit(signedIn(), validContact())

	require.NoError(t, err)
	assert.Equal(t, model.StateSuccess, res.State)
	require.NotNil(t, res.Receipt)
	assert.Equal(t, "appt-1", res.Receipt.AppointmentID)
}

func TestFlowService_Submit_RaceAbortsWithoutCreation(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), "10:00", availabilityModel.SiteSubmit).Return(false)
	d.repo.EXPECT().ClearSlot(gomock.Any())
	d.booking.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	res, err := svc.Submit(signedIn(), validContact())

	require.NoError(t, err)
	assert.Equal(t, model.StateSlotSelection, res.State)
	assert.Empty(t, res.Time)
	assert.NotEmpty(t, res.Warning)
	assert.Nil(t, res.Receipt)
}

func TestFlowService_Submit_Guards(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		mutate   func(s *model.Selection, c *contactDto.ContactRequest)
		wantCode int
	}{
		{name: "no slot", ctx: signedIn(), mutate: func(s *model.Selection, _ *contactDto.ContactRequest) { s.Time = "" }, wantCode: http.StatusBadRequest},
		{name: "no services", ctx: signedIn(), mutate: func(s *model.Selection, _ *contactDto.ContactRequest) { s.ServiceIDs = nil }, wantCode: http.StatusBadRequest},
		{name: "no staff", ctx: signedIn(), mutate: func(s *model.Selection, _ *contactDto.ContactRequest) { s.Staff = nil }, wantCode: http.StatusBadRequest},
		{name: "signed out", ctx: context.Background(), mutate: func(*model.Selection, *contactDto.ContactRequest) {}, wantCode: http.StatusUnauthorized},
		{name: "no phone", ctx: signedIn(), mutate: func(_ *model.Selection, c *contactDto.ContactRequest) { c.PhoneNumber = "" }, wantCode: http.StatusBadRequest},
		{name: "short phone", ctx: signedIn(), mutate: func(_ *model.Selection, c *contactDto.ContactRequest) { c.PhoneNumber = "123" }, wantCode: http.StatusBadRequest},
		{name: "blank first name", ctx: signedIn(), mutate: func(_ *model.Selection, c *contactDto.ContactRequest) { c.FirstName = "   " }, wantCode: http.StatusBadRequest},
		{name: "bad prefix", ctx: signedIn(), mutate: func(_ *model.Selection, c *contactDto.ContactRequest) { c.PhonePrefix = "39" }, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t, morning)

			sel := fullSelection()
			contact := validContact()
			tt.mutate(&sel, &contact)

			d.repo.EXPECT().GetSelection(gomock.Any()).Return(sel)
			d.catalog.EXPECT().GetTimezone(gomock.Any()).Times(0)
			d.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			d.booking.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.Submit(tt.ctx, contact)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestFlowService_Submit_ForwardsTrimmedContact(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), "10:00", availabilityModel.SiteSubmit).Return(true)
	d.booking.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req bookingDto.SubmitRequest) (bookingModel.Receipt, error) {
			assert.Equal(t, "Giulia", req.Contact.FirstName)
			assert.Equal(t, "3331234567", req.Contact.PhoneNumber)

			return bookingModel.Receipt{Status: bookingModel.StatusSubmitted}, nil
		})

	contact := validContact()
	contact.FirstName = "  Giulia "
	contact.PhoneNumber = " 3331234567"

	_, err := svc.Submit(signedIn(), contact)

	require.NoError(t, err)
}

func TestFlowService_Submit_ResolvesMissingSnapshot(t *testing.T) {
	svc, d := newService(t, morning)

	sel := fullSelection()
	sel.Services = nil

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(sel)
	d.catalog.EXPECT().GetServicesByID(gomock.Any(), []string{"svc-haircut"}).Return([]catalogModel.Service{haircut}, nil)
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), "10:00", availabilityModel.SiteSubmit).Return(true)
	d.booking.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(bookingModel.Receipt{Status: bookingModel.StatusSubmitted}, nil)

	res, err := svc.Submit(signedIn(), validContact())

	require.NoError(t, err)
	assert.Equal(t, model.StateSuccess, res.State)
}

func TestFlowService_NextAvailableDate(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.availability.EXPECT().
		NextAvailableDate(gomock.Any(), gomock.Any(), 14).
		DoAndReturn(func(_ context.Context, q availabilityModel.Query, _ int) (string, bool) {
			assert.Equal(t, "2025-06-10", q.Date)

			return "2025-06-13", true
		})

	res, err := svc.NextAvailableDate(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "2025-06-13", res.Date)
}

func TestFlowService_AlternativeStaff(t *testing.T) {
	svc, d := newService(t, morning)

	bob := catalogModel.StaffMember{ID: "staff-bob", Name: "Bob", Status: "active"}

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(fullSelection())
	d.catalog.EXPECT().GetTimezone(gomock.Any()).Return("Europe/Rome")
	d.catalog.EXPECT().GetStaff(gomock.Any()).Return([]catalogModel.StaffMember{bob}, nil)
	d.availability.EXPECT().AlternativeStaff(gomock.Any(), gomock.Any(), []catalogModel.StaffMember{bob}).Return(bob, true)

	res, err := svc.AlternativeStaff(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "Bob", res.Name)
}

func TestFlowService_SlotQuery_RequiresStaff(t *testing.T) {
	svc, d := newService(t, morning)

	d.repo.EXPECT().GetSelection(gomock.Any()).Return(model.Selection{ServiceIDs: []string{"svc-haircut"}})

	_, err := svc.SlotQuery(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
