package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"salonbooking/infras/otel"
	"salonbooking/internal/domains/catalog/model/dto"
	"salonbooking/internal/domains/catalog/service"
	"salonbooking/shared/constant"
	"salonbooking/transport/http/response"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/services", handler.GetServices)
	router.Get("/staff", handler.GetStaff)
}

// GetServices lists the active services.
// @Summary List services
// @Description List the active services of the salon with price and duration.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetServicesResponse]
// @Failure 502 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	services, err := handler.service.GetServices(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	res := dto.GetServicesResponse{}
	res.FromModels(services)

	response.WithJSON(w, http.StatusOK, res)
}

// GetStaff lists the active staff.
// @Summary List staff
// @Description List the active staff members.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetStaffResponse]
// @Failure 502 {object} response.Error
// @Router /v1/staff [get]
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	staff, err := handler.service.GetStaff(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(w, err)

		return
	}

	res := dto.GetStaffResponse{}
	res.FromModels(staff)

	response.WithJSON(w, http.StatusOK, res)
}
