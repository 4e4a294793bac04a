package model

import (
	availabilityModel "salonbooking/internal/domains/availability/model"
	bookingModel "salonbooking/internal/domains/booking/model"
	catalogModel "salonbooking/internal/domains/catalog/model"
)

// Steps of the booking flow.
const (
	StateServiceSelection = "service-selection"
	StateStaffSelection   = "staff-selection"
	StateSlotSelection    = "slot-selection"
	StateSuccess          = "success"
)

// Selection is what the browsing session has chosen so far.
type Selection struct {
	ServiceIDs []string
	Services   []catalogModel.Service
	Staff      *bookingModel.StaffRef
	Date       string
	Time       string
}

func (s Selection) HasServices() bool {
	return len(s.ServiceIDs) > 0
}

func (s Selection) HasStaff() bool {
	return s.Staff != nil && s.Staff.ID != ""
}

func (s Selection) HasSlot() bool {
	return s.Date != "" && s.Time != ""
}

// MissingStep returns the step a guard sends the user back to, or "" when services and staff
// are both chosen. A missing service wins over a missing staff member.
func (s Selection) MissingStep() string {
	switch {
	case !s.HasServices():
		return StateServiceSelection
	case !s.HasStaff():
		return StateStaffSelection
	default:
		return ""
	}
}

// Query builds the availability lookup for date.
func (s Selection) Query(businessID, tz, date string) availabilityModel.Query {
	q := availabilityModel.Query{
		BusinessID: businessID,
		ServiceIDs: s.ServiceIDs,
		Date:       date,
		Timezone:   tz,
	}

	if s.Staff != nil {
		q.StaffID = s.Staff.ID
	}

	return q
}
