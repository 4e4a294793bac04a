package model

import "time"

const (
	TableAppointments = "appointments"

	FieldID              = "id"
	FieldProfileID       = "profile_id"
	FieldBusinessID      = "business_id"
	FieldAppointmentDate = "appointment_date"

	Columns = "id,business_id,barber_id,profile_id,appointment_date,appointment_status,duration_min," +
		"appointment_services(id,service_id,duration_minutes,notes,services(name)),barbers(name)"

	StatusCancelled = "cancelled"
)

type Named struct {
	Name string `json:"name"`
}

type AppointmentService struct {
	ID              string `json:"id"`
	ServiceID       string `json:"service_id"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
	Service         *Named `json:"services"`
}

// Appointment is a booked visit. AppointmentDate is a UTC instant.
type Appointment struct {
	ID              string               `json:"id"`
	BusinessID      string               `json:"business_id"`
	StaffID         string               `json:"barber_id"`
	ProfileID       string               `json:"profile_id"`
	AppointmentDate string               `json:"appointment_date"`
	Status          string               `json:"appointment_status"`
	DurationMin     int                  `json:"duration_min"`
	Services        []AppointmentService `json:"appointment_services"`
	Staff           *Named               `json:"barbers"`
}

// StartsAfter reports whether the appointment begins strictly after t. Unparseable dates never do.
func (a Appointment) StartsAfter(t time.Time) bool {
	start, err := time.Parse(time.RFC3339, a.AppointmentDate)
	if err != nil {
		return false
	}

	return start.After(t)
}

func (a Appointment) ServiceIDs() []string {
	ids := make([]string, 0, len(a.Services))
	for _, s := range a.Services {
		ids = append(ids, s.ServiceID)
	}

	return ids
}

// Split separates appointments into those starting after now and the rest, keeping order.
func Split(appointments []Appointment, now time.Time) (upcoming, past []Appointment) {
	upcoming = []Appointment{}
	past = []Appointment{}

	for _, a := range appointments {
		if a.StartsAfter(now) {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}

	return upcoming, past
}

// NewAppointment carries the inputs of one creation call.
type NewAppointment struct {
	StaffID        string
	Instant        string
	ContactID      string
	ProfileID      string
	ServiceIDs     []string
	Durations      []int
	IdempotencyKey string
}

type CreateParams struct {
	BusinessID        string   `json:"p_business_id"`
	StaffID           string   `json:"p_barber_id"`
	AppointmentDate   string   `json:"p_appointment_date"`
	ContactID         string   `json:"p_contact_id"`
	ProfileID         string   `json:"p_profile_id"`
	ServiceIDs        []string `json:"p_service_ids"`
	DurationMinutes   []int    `json:"p_duration_minutes"`
	AppointmentStatus string   `json:"p_appointment_status"`
	WaitingListID     *string  `json:"p_waiting_list_id"`
	AllowOverride     bool     `json:"p_allow_override"`
	IdempotencyKey    string   `json:"p_idempotency_key"`
	SourceChannel     string   `json:"p_source_channel"`
}

func (n NewAppointment) ToParams(businessID, status, sourceChannel string) CreateParams {
	return CreateParams{
		BusinessID:        businessID,
		StaffID:           n.StaffID,
		AppointmentDate:   n.Instant,
		ContactID:         n.ContactID,
		ProfileID:         n.ProfileID,
		ServiceIDs:        n.ServiceIDs,
		DurationMinutes:   n.Durations,
		AppointmentStatus: status,
		IdempotencyKey:    n.IdempotencyKey,
		SourceChannel:     sourceChannel,
	}
}

// CreateResponse is the only accepted shape of the creation result.
type CreateResponse struct {
	AppointmentID string `json:"appointment_id"`
}

// UpdateParams moves an appointment. Nil fields are left unchanged by the backend.
type UpdateParams struct {
	AppointmentID     string  `json:"p_appointment_id"`
	AppointmentDate   string  `json:"p_appointment_date"`
	DurationMin       *int    `json:"p_duration_min"`
	AppointmentStatus *string `json:"p_appointment_status"`
	StaffID           *string `json:"p_barber_id"`
	AllowOverride     bool    `json:"p_allow_override"`
}

type CancelParams struct {
	AppointmentID string `json:"p_appointment_id"`
}
