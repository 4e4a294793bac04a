package dto

import (
	availabilityDto "salonbooking/internal/domains/availability/model/dto"
	bookingModel "salonbooking/internal/domains/booking/model"
	catalogModel "salonbooking/internal/domains/catalog/model"
	catalogDto "salonbooking/internal/domains/catalog/model/dto"
	contactDto "salonbooking/internal/domains/contact/model/dto"
)

type SelectServicesRequest struct {
	ServiceIDs []string `json:"service_ids" validate:"required,min=1,dive,required"`
}

type SelectStaffRequest struct {
	StaffID string `json:"staff_id" validate:"required"`
}

type PickSlotRequest struct {
	Date string `json:"date" validate:"required,isodate"`
	Time string `json:"time" validate:"required,hhmm"`
}

// ViewResponse is the state of the flow after one step. Redirect names an earlier step the
// client must go back to; Warning is an inline notice that does not block the step.
type ViewResponse struct {
	State        string                           `json:"state"`
	Redirect     string                           `json:"redirect,omitempty"`
	Warning      string                           `json:"warning,omitempty"`
	Services     *catalogDto.GetServicesResponse  `json:"services,omitempty"`
	StaffOptions *catalogDto.GetStaffResponse     `json:"staff_options,omitempty"`
	Staff        *bookingModel.StaffRef           `json:"staff,omitempty"`
	Date         string                           `json:"date,omitempty"`
	Time         string                           `json:"time,omitempty"`
	Slots        *availabilityDto.SlotsResponse   `json:"slots,omitempty"`
	Contact      *contactDto.SavedContactResponse `json:"contact,omitempty"`
	Receipt      *bookingModel.Receipt            `json:"receipt,omitempty"`
}

// RedirectTo builds the response of a failed step guard.
func RedirectTo(state, target string) ViewResponse {
	return ViewResponse{State: state, Redirect: target}
}

func (r *ViewResponse) WithServices(services []catalogModel.Service) {
	res := catalogDto.GetServicesResponse{}
	res.FromModels(services)
	r.Services = &res
}
