package dto

import (
	"salonbooking/internal/domains/booking/model"
	catalogModel "salonbooking/internal/domains/catalog/model"
	contactDto "salonbooking/internal/domains/contact/model/dto"
)

// SubmitRequest is everything one submission needs. Date and Time are business-local.
type SubmitRequest struct {
	Staff    model.StaffRef
	Services []catalogModel.Service
	Date     string
	Time     string
	Timezone string
	Contact  contactDto.ContactRequest
}

type ServiceLine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
	PriceCents  int    `json:"price_cents"`
}

type ConfirmationResponse struct {
	AppointmentID string        `json:"appointment_id"`
	CustomerName  string        `json:"customer_name"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	StaffName     string        `json:"staff_name,omitempty"`
	Services      []ServiceLine `json:"services"`
}

func (r *ConfirmationResponse) FromModel(m model.Confirmation) {
	r.AppointmentID = m.AppointmentID
	r.CustomerName = m.CustomerName
	r.Date = m.Date
	r.Time = m.Time

	if m.Staff != nil {
		r.StaffName = m.Staff.Name
	}

	r.Services = make([]ServiceLine, len(m.Services))
	for i, s := range m.Services {
		r.Services[i] = ServiceLine{ID: s.ID, Name: s.Name, DurationMin: s.DurationMin, PriceCents: s.PriceCents}
	}
}
