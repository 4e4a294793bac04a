package booking

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/otel"
	availabilityModel "salonbooking/internal/domains/availability/model"
	availabilityDto "salonbooking/internal/domains/availability/model/dto"
	availabilityService "salonbooking/internal/domains/availability/service"
	"salonbooking/internal/domains/availability/watcher"
	contactDto "salonbooking/internal/domains/contact/model/dto"
	contactService "salonbooking/internal/domains/contact/service"
	"salonbooking/internal/domains/flow/model/dto"
	"salonbooking/internal/domains/flow/service"
	"salonbooking/shared/clock"
	"salonbooking/shared/constant"
	"salonbooking/shared/validator"
	"salonbooking/transport/http/response"
)

type Handler struct {
	service      service.Flow
	availability availabilityService.Availability
	contact      contactService.Contact
	clock        clock.Clock
	otel         otel.Otel
	upgrader     websocket.Upgrader
}

func New(
	service service.Flow,
	availability availabilityService.Availability,
	contact contactService.Contact,
	c clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Handler {
	return Handler{
		service:      service,
		availability: availability,
		contact:      contact,
		clock:        c,
		otel:         otel,
		upgrader: websocket.Upgrader{
			CheckOrigin: allowedOrigin(cfg.App.CORS.AllowedOrigins),
		},
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flow", func(routerGroup chi.Router) {
		routerGroup.Post("/services", handler.SelectServices)
		routerGroup.Get("/staff", handler.EnterStaff)
		routerGroup.Post("/staff", handler.SelectStaff)
		routerGroup.Get("/slots", handler.EnterSlots)
		routerGroup.Get("/slots/stream", handler.StreamSlots)
		routerGroup.Post("/slot", handler.PickSlot)
		routerGroup.Post("/restore", handler.Restore)
		routerGroup.Get("/contact", handler.GetContact)
		routerGroup.Post("/submit", handler.Submit)
		routerGroup.Get("/success", handler.Success)
		routerGroup.Get("/next-available", handler.NextAvailableDate)
		routerGroup.Get("/alternative-staff", handler.AlternativeStaff)
	})
}

// SelectServices stores the chosen services.
// @Summary Select services
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SelectServicesRequest true "Service IDs"
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/flow/services [post]
func (handler *Handler) SelectServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectServices")
	defer scope.End()

	req := dto.SelectServicesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SelectServices(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// EnterStaff opens the staff step.
// @Summary Enter the staff step
// @Description Returns the staff options, or a redirect when no service is selected.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Router /v1/flow/staff [get]
func (handler *Handler) EnterStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EnterStaff")
	defer scope.End()

	res, err := handler.service.EnterStaff(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to enter staff step")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SelectStaff stores the chosen staff member.
// @Summary Select staff
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SelectStaffRequest true "Staff ID"
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/flow/staff [post]
func (handler *Handler) SelectStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectStaff")
	defer scope.End()

	req := dto.SelectStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SelectStaff(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select staff")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// EnterSlots opens the slot step.
// @Summary Enter the slot step
// @Description Returns the slots of a date, or a redirect when services or staff are missing.
// @Tags Booking
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today in the business timezone"
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Failure 400 {object} response.Error
// @Router /v1/flow/slots [get]
func (handler *Handler) EnterSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EnterSlots")
	defer scope.End()

	res, err := handler.service.EnterSlots(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to enter slot step")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

type streamRequest struct {
	Date string `json:"date"`
}

// StreamSlots keeps the slot list fresh over a websocket. The list is re-queried at every
// minute boundary and whenever the client sends {"date": "YYYY-MM-DD"}.
// @Summary Live slot stream
// @Tags Booking
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 101
// @Failure 400 {object} response.Error
// @Router /v1/flow/slots/stream [get]
func (handler *Handler) StreamSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StreamSlots")
	defer scope.End()

	q, err := handler.service.SlotQuery(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upgrade slot stream")

		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var writeMu sync.Mutex

	slotWatcher := watcher.New(ctx, handler.availability, clock.NewMinuteTicker(handler.clock), func(q availabilityModel.Query, res availabilityModel.Result) {
		payload := availabilityDto.SlotsResponse{}
		payload.FromModel(q, res)

		writeMu.Lock()
		defer writeMu.Unlock()

		if err := conn.WriteJSON(payload); err != nil {
			log.Debug().Err(err).Msg("failed to push slots, closing stream")
			cancel()
		}
	})
	defer slotWatcher.Stop()

	slotWatcher.Start(q)

	for ctx.Err() == nil {
		var msg streamRequest
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debug().Err(err).Msg("slot stream closed")

			return
		}

		next, err := handler.service.SlotQuery(ctx, msg.Date)
		if err != nil {
			writeMu.Lock()
			_ = conn.WriteJSON(availabilityDto.SlotsResponse{Date: msg.Date, Error: err.Error()})
			writeMu.Unlock()

			continue
		}

		slotWatcher.Update(next)
	}
}

// PickSlot stores a slot after re-checking it.
// @Summary Pick a slot
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.PickSlotRequest true "Date and time"
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Failure 400 {object} response.Error
// @Router /v1/flow/slot [post]
func (handler *Handler) PickSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PickSlot")
	defer scope.End()

	req := dto.PickSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.PickSlot(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to pick slot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Restore resumes the flow after sign-in.
// @Summary Restore the flow
// @Description Reloads the selections and re-checks the stored slot.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Router /v1/flow/restore [post]
func (handler *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Restore")
	defer scope.End()

	res, err := handler.service.Restore(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to restore flow")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetContact returns the saved contact form.
// @Summary Saved contact
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[contactDto.SavedContactResponse]
// @Failure 401 {object} response.Error
// @Router /v1/flow/contact [get]
// @Security BearerAuth
func (handler *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContact")
	defer scope.End()

	res, err := handler.contact.GetSaved(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get saved contact")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Submit books the selected slot.
// @Summary Submit the booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body contactDto.ContactRequest true "Contact and consent"
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/flow/submit [post]
// @Security BearerAuth
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	req := contactDto.ContactRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Success returns the confirmation of the last booking.
// @Summary Booking confirmation
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[bookingDto.ConfirmationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/flow/success [get]
func (handler *Handler) Success(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Success")
	defer scope.End()

	res, err := handler.service.Success(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get confirmation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// NextAvailableDate finds the next day with free slots.
// @Summary Next available date
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[availabilityDto.NextAvailableResponse]
// @Failure 400 {object} response.Error
// @Router /v1/flow/next-available [get]
func (handler *Handler) NextAvailableDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NextAvailableDate")
	defer scope.End()

	res, err := handler.service.NextAvailableDate(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find next available date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AlternativeStaff finds another staff member free on the selected date.
// @Summary Alternative staff
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[availabilityDto.AlternativeStaffResponse]
// @Failure 400 {object} response.Error
// @Router /v1/flow/alternative-staff [get]
func (handler *Handler) AlternativeStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AlternativeStaff")
	defer scope.End()

	res, err := handler.service.AlternativeStaff(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find alternative staff")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// allowedOrigin accepts upgrades without an Origin header, from the serving host, and from the
// configured CORS origins. With no origins configured only the serving host is accepted.
func allowedOrigin(origins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == constant.Empty {
			return true
		}

		if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
			return true
		}

		for _, allowed := range origins {
			if allowed == "*" || allowed == origin {
				return true
			}
		}

		return false
	}
}
