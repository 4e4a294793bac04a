package model

import catalogModel "salonbooking/internal/domains/catalog/model"

const (
	StatusIdle      = "idle"
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
)

// Submission outcomes, used as metric labels.
const (
	OutcomeSubmitted       = "submitted"
	OutcomeInvalid         = "invalid"
	OutcomeContactError    = "contact_error"
	OutcomeConversionError = "conversion_error"
	OutcomeCreationError   = "creation_error"
	OutcomeRejected        = "rejected"
)

// StaffRef is the staff selection as kept in the session store.
type StaffRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Receipt is the terminal state of one submission.
type Receipt struct {
	Status         string `json:"status"`
	AppointmentID  string `json:"appointment_id,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// Confirmation is what the success step shows after a booking.
type Confirmation struct {
	AppointmentID string                 `json:"appointment_id"`
	CustomerName  string                 `json:"customer_name"`
	Date          string                 `json:"date"`
	Time          string                 `json:"time"`
	Services      []catalogModel.Service `json:"services"`
	Staff         *StaffRef              `json:"staff,omitempty"`
}
