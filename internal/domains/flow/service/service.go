package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/otel"
	availabilityModel "salonbooking/internal/domains/availability/model"
	availabilityDto "salonbooking/internal/domains/availability/model/dto"
	availabilityService "salonbooking/internal/domains/availability/service"
	bookingModel "salonbooking/internal/domains/booking/model"
	bookingDto "salonbooking/internal/domains/booking/model/dto"
	bookingService "salonbooking/internal/domains/booking/service"
	catalogModel "salonbooking/internal/domains/catalog/model"
	catalogDto "salonbooking/internal/domains/catalog/model/dto"
	catalogService "salonbooking/internal/domains/catalog/service"
	contactDto "salonbooking/internal/domains/contact/model/dto"
	contactService "salonbooking/internal/domains/contact/service"
	"salonbooking/internal/domains/flow/model"
	"salonbooking/internal/domains/flow/model/dto"
	"salonbooking/internal/domains/flow/repository"
	"salonbooking/shared/clock"
	"salonbooking/shared/constant"
	"salonbooking/shared/failure"
	"salonbooking/shared/identity"
	"salonbooking/shared/message"
	"salonbooking/shared/timezone"
	"salonbooking/shared/validator"
)

// Flow drives the service, staff and slot steps and hands the final step to the booking
// orchestrator.
type Flow interface {
	SelectServices(ctx context.Context, req dto.SelectServicesRequest) (dto.ViewResponse, error)
	EnterStaff(ctx context.Context) (dto.ViewResponse, error)
	SelectStaff(ctx context.Context, req dto.SelectStaffRequest) (dto.ViewResponse, error)
	EnterSlots(ctx context.Context, date string) (dto.ViewResponse, error)
	PickSlot(ctx context.Context, req dto.PickSlotRequest) (dto.ViewResponse, error)
	Restore(ctx context.Context) (dto.ViewResponse, error)
	Submit(ctx context.Context, req contactDto.ContactRequest) (dto.ViewResponse, error)
	Success(ctx context.Context) (bookingDto.ConfirmationResponse, error)
	NextAvailableDate(ctx context.Context) (availabilityDto.NextAvailableResponse, error)
	AlternativeStaff(ctx context.Context) (availabilityDto.AlternativeStaffResponse, error)
	SlotQuery(ctx context.Context, date string) (availabilityModel.Query, error)
}

type serviceImpl struct {
	repo         repository.Flow
	catalog      catalogService.Catalog
	availability availabilityService.Availability
	contact      contactService.Contact
	booking      bookingService.Booking
	clock        clock.Clock
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Flow,
	catalog catalogService.Catalog,
	availability availabilityService.Availability,
	contact contactService.Contact,
	booking bookingService.Booking,
	c clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Flow {
	return &serviceImpl{
		repo:         repo,
		catalog:      catalog,
		availability: availability,
		contact:      contact,
		booking:      booking,
		clock:        c,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) SelectServices(ctx context.Context, req dto.SelectServicesRequest) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	services, err := s.catalog.GetServicesByID(ctx, req.ServiceIDs)
	if err != nil {
		return res, err
	}

	s.repo.SaveServices(ctx, services)

	res.State = model.StateStaffSelection
	res.WithServices(services)

	return res, nil
}

func (s *serviceImpl) EnterStaff(ctx context.Context) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnterStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sel := s.repo.GetSelection(ctx)
	if !sel.HasServices() {
		return dto.RedirectTo(model.StateStaffSelection, model.StateServiceSelection), nil
	}

	staff, err := s.catalog.GetStaff(ctx)
	if err != nil {
		return res, err
	}

	options := catalogDto.GetStaffResponse{}
	options.FromModels(staff)

	res.State = model.StateStaffSelection
	res.StaffOptions = &options
	res.Staff = sel.Staff
	res.WithServices(sel.Services)

	return res, nil
}

func (s *serviceImpl) SelectStaff(ctx context.Context, req dto.SelectStaffRequest) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sel := s.repo.GetSelection(ctx)
	if !sel.HasServices() {
		return dto.RedirectTo(model.StateStaffSelection, model.StateServiceSelection), nil
	}

	member, err := s.catalog.GetStaffMember(ctx, req.StaffID)
	if err != nil {
		return res, err
	}

	staff := bookingModel.StaffRef{ID: member.ID, Name: member.Name}
	s.repo.SaveStaff(ctx, staff)

	res.State = model.StateSlotSelection
	res.Staff = &staff
	res.WithServices(sel.Services)

	return res, nil
}

// EnterSlots shows the slots of date, or of the stored date, or of today in the business
// timezone. Signed-in callers also get their saved contact.
func (s *serviceImpl) EnterSlots(ctx context.Context, date string) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnterSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sel := s.repo.GetSelection(ctx)
	if target := sel.MissingStep(); target != constant.Empty {
		return dto.RedirectTo(model.StateSlotSelection, target), nil
	}

	tz := s.catalog.GetTimezone(ctx)

	date, err = s.resolveDate(date, sel, tz)
	if err != nil {
		return res, err
	}

	q := sel.Query(s.cfg.App.BusinessID, tz, date)
	slots := availabilityDto.SlotsResponse{}
	slots.FromModel(q, s.availability.Query(ctx, q))

	res = s.slotView(sel)
	res.Date = date
	res.Slots = &slots

	if date != sel.Date {
		res.Time = constant.Empty
	}

	s.attachContact(ctx, &res)

	return res, nil
}

// PickSlot stores the slot only when a fresh lookup still offers it.
func (s *serviceImpl) PickSlot(ctx context.Context, req dto.PickSlotRequest) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PickSlot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sel := s.repo.GetSelection(ctx)
	if target := sel.MissingStep(); target != constant.Empty {
		return dto.RedirectTo(model.StateSlotSelection, target), nil
	}

	q := sel.Query(s.cfg.App.BusinessID, s.catalog.GetTimezone(ctx), req.Date)

	res = s.slotView(sel)

	if !s.availability.Verify(ctx, q, req.Time, availabilityModel.SitePick) {
		res.Warning = message.From(ctx, message.SlotNotOffered)

		return res, nil
	}

	s.repo.SaveSlot(ctx, req.Date, req.Time)

	res.Date = req.Date
	res.Time = req.Time

	return res, nil
}

// Restore reloads the selections after the identity step and re-checks the stored slot. A slot
// that is gone is cleared and reported as a warning.
func (s *serviceImpl) Restore(ctx context.Context) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Restore")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sel := s.repo.GetSelection(ctx)
	if target := sel.MissingStep(); target != constant.Empty {
		return dto.RedirectTo(model.StateSlotSelection, target), nil
	}

	res = s.slotView(sel)

	if sel.HasSlot() {
		q := sel.Query(s.cfg.App.BusinessID, s.catalog.GetTimezone(ctx), sel.Date)

		if !s.availability.Verify(ctx, q, sel.Time, availabilityModel.SiteRestore) {
			s.repo.ClearSlot(ctx)

			res.Time = constant.Empty
			res.Warning = message.From(ctx, message.SlotNoLongerAvailable)
		}
	}

	s.attachContact(ctx, &res)

	return res, nil
}

// Submit re-verifies the slot right before handing the booking to the orchestrator. A slot taken
// in the meantime is cleared and reported without any creation call.
func (s *serviceImpl) Submit(ctx context.Context, req contactDto.ContactRequest) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sel := s.repo.GetSelection(ctx)

	if err = s.guardSubmit(ctx, sel, &req); err != nil {
		return res, err
	}

	services, err := s.selectedServices(ctx, sel)
	if err != nil {
		return res, err
	}

	tz := s.catalog.GetTimezone(ctx)
	q := sel.Query(s.cfg.App.BusinessID, tz, sel.Date)

	res = s.slotView(sel)

	if !s.availability.Verify(ctx, q, sel.Time, availabilityModel.SiteSubmit) {
		s.repo.ClearSlot(ctx)

		res.Time = constant.Empty
		res.Warning = message.From(ctx, message.SlotNoLongerAvailable)

		return res, nil
	}

	receipt, err := s.booking.Submit(ctx, bookingDto.SubmitRequest{
		Staff:    *sel.Staff,
		Services: services,
		Date:     sel.Date,
		Time:     sel.Time,
		Timezone: tz,
		Contact:  req,
	})
	if err != nil {
		return res, err
	}

	res.State = model.StateSuccess
	res.Receipt = &receipt

	return res, nil
}

// guardSubmit rejects a submission before any remote call. req is normalized in place.
func (s *serviceImpl) guardSubmit(ctx context.Context, sel model.Selection, req *contactDto.ContactRequest) error {
	if !sel.HasSlot() {
		return failure.BadRequestFromString(message.From(ctx, message.SelectSlotFirst)) // nolint:wrapcheck
	}

	if !sel.HasServices() {
		return failure.BadRequestFromString(message.From(ctx, message.SelectServiceFirst)) // nolint:wrapcheck
	}

	if !sel.HasStaff() {
		return failure.BadRequestFromString(message.From(ctx, message.SelectStaffFirst)) // nolint:wrapcheck
	}

	if _, ok := identity.FromContext(ctx); !ok {
		return failure.Unauthorized(message.From(ctx, message.LoginRequired)) // nolint:wrapcheck
	}

	req.Normalize()

	if req.FirstName == constant.Empty || req.LastName == constant.Empty || req.PhoneNumber == constant.Empty {
		return failure.BadRequestFromString(message.From(ctx, message.InvalidContact)) // nolint:wrapcheck
	}

	return validator.ValidateStruct(req) // nolint:wrapcheck
}

// Success returns the confirmation snapshot. The orchestrator clears the flow after the grace
// period.
func (s *serviceImpl) Success(ctx context.Context) (res bookingDto.ConfirmationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Success")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.booking.GetConfirmation(ctx) // nolint:wrapcheck
}

func (s *serviceImpl) NextAvailableDate(ctx context.Context) (res availabilityDto.NextAvailableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NextAvailableDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	q, err := s.SlotQuery(ctx, constant.Empty)
	if err != nil {
		return res, err
	}

	res.Date, res.Found = s.availability.NextAvailableDate(ctx, q, s.cfg.Booking.MaxProbeDays)

	return res, nil
}

func (s *serviceImpl) AlternativeStaff(ctx context.Context) (res availabilityDto.AlternativeStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AlternativeStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	q, err := s.SlotQuery(ctx, constant.Empty)
	if err != nil {
		return res, err
	}

	staff, err := s.catalog.GetStaff(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(s.availability.AlternativeStaff(ctx, q, staff))

	return res, nil
}

// SlotQuery builds the availability lookup for the current selection. Missing services or staff
// are reported as guard errors.
func (s *serviceImpl) SlotQuery(ctx context.Context, date string) (q availabilityModel.Query, err error) {
	sel := s.repo.GetSelection(ctx)

	switch sel.MissingStep() {
	case model.StateServiceSelection:
		return q, failure.BadRequestFromString(message.From(ctx, message.SelectServiceFirst)) // nolint:wrapcheck
	case model.StateStaffSelection:
		return q, failure.BadRequestFromString(message.From(ctx, message.SelectStaffFirst)) // nolint:wrapcheck
	}

	tz := s.catalog.GetTimezone(ctx)

	date, err = s.resolveDate(date, sel, tz)
	if err != nil {
		return q, err
	}

	return sel.Query(s.cfg.App.BusinessID, tz, date), nil
}

func (s *serviceImpl) resolveDate(date string, sel model.Selection, tz string) (string, error) {
	switch {
	case date != constant.Empty:
		if err := validator.ValidateVar(date, "isodate"); err != nil {
			return constant.Empty, err // nolint:wrapcheck
		}

		return date, nil
	case sel.Date != constant.Empty:
		return sel.Date, nil
	default:
		return s.today(tz), nil
	}
}

func (s *serviceImpl) today(tz string) string {
	loc, err := timezone.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	return s.clock.Now().In(loc).Format(constant.DateFormat)
}

func (s *serviceImpl) slotView(sel model.Selection) dto.ViewResponse {
	res := dto.ViewResponse{
		State: model.StateSlotSelection,
		Staff: sel.Staff,
		Date:  sel.Date,
		Time:  sel.Time,
	}
	res.WithServices(sel.Services)

	return res
}

func (s *serviceImpl) attachContact(ctx context.Context, res *dto.ViewResponse) {
	if _, ok := identity.FromContext(ctx); !ok {
		return
	}

	saved, err := s.contact.GetSaved(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load saved contact")

		return
	}

	res.Contact = &saved
}

// selectedServices resolves the stored ids against the catalog when the snapshot is missing.
func (s *serviceImpl) selectedServices(ctx context.Context, sel model.Selection) ([]catalogModel.Service, error) {
	if len(sel.Services) == len(sel.ServiceIDs) {
		return sel.Services, nil
	}

	return s.catalog.GetServicesByID(ctx, sel.ServiceIDs) // nolint:wrapcheck
}
