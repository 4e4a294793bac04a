package dto

import (
	"salonbooking/internal/domains/appointment/model"
	"salonbooking/shared/timezone"
)

type RescheduleRequest struct {
	Date string `json:"date" validate:"required,isodate"`
	Time string `json:"time" validate:"required,hhmm"`
}

type ServiceLine struct {
	ServiceID       string `json:"service_id"`
	Name            string `json:"name,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
}

type AppointmentResponse struct {
	ID              string        `json:"id"`
	StaffID         string        `json:"staff_id"`
	StaffName       string        `json:"staff_name,omitempty"`
	AppointmentDate string        `json:"appointment_date"`
	LocalDate       string        `json:"local_date,omitempty"`
	LocalTime       string        `json:"local_time,omitempty"`
	Status          string        `json:"status"`
	DurationMin     int           `json:"duration_min"`
	Services        []ServiceLine `json:"services"`
}

// FromModel fills the response, rendering the instant in tz.
func (r *AppointmentResponse) FromModel(m model.Appointment, tz string) {
	r.ID = m.ID
	r.StaffID = m.StaffID
	r.AppointmentDate = m.AppointmentDate
	r.Status = m.Status
	r.DurationMin = m.DurationMin

	if m.Staff != nil {
		r.StaffName = m.Staff.Name
	}

	if date, hhmm, ok := timezone.UTCToLocal(m.AppointmentDate, tz); ok {
		r.LocalDate = date
		r.LocalTime = hhmm
	}

	r.Services = make([]ServiceLine, len(m.Services))
	for i, s := range m.Services {
		r.Services[i] = ServiceLine{ServiceID: s.ServiceID, DurationMinutes: s.DurationMinutes}
		if s.Service != nil {
			r.Services[i].Name = s.Service.Name
		}
	}
}

type ListAppointmentsResponse struct {
	Timezone string                `json:"timezone"`
	Upcoming []AppointmentResponse `json:"upcoming"`
	Past     []AppointmentResponse `json:"past"`
}

func (r *ListAppointmentsResponse) FromModels(upcoming, past []model.Appointment, tz string) {
	r.Timezone = tz
	r.Upcoming = toResponses(upcoming, tz)
	r.Past = toResponses(past, tz)
}

func toResponses(models []model.Appointment, tz string) []AppointmentResponse {
	out := make([]AppointmentResponse, len(models))
	for i, m := range models {
		out[i].FromModel(m, tz)
	}

	return out
}
