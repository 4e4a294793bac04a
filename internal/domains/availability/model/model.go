package model

import (
	"encoding/json"

	"salonbooking/shared/timezone"
)

// Verification call sites, used as metric labels.
const (
	SiteRestore    = "restore"
	SitePick       = "pick"
	SiteSubmit     = "submit"
	SiteReschedule = "reschedule"
)

// Slot is one bookable start time. Value is business-local HH:mm.
type Slot struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Query identifies one availability lookup. Timezone frames Date and Value for logs only;
// the backend resolves the business timezone itself.
type Query struct {
	BusinessID string
	StaffID    string
	ServiceIDs []string
	Date       string
	Timezone   string
}

// Ready reports whether the query has enough input to be sent.
func (q Query) Ready() bool {
	return q.StaffID != "" && len(q.ServiceIDs) > 0
}

// WithStaff returns a copy of q for another staff member.
func (q Query) WithStaff(staffID string) Query {
	q.StaffID = staffID

	return q
}

// WithDate returns a copy of q for another date.
func (q Query) WithDate(date string) Query {
	q.Date = date

	return q
}

// Result is the outcome of one query. On a remote error both lists are empty and Error is set.
type Result struct {
	Recommended []Slot `json:"recommended"`
	Other       []Slot `json:"other"`
	Error       string `json:"error,omitempty"`
}

func EmptyResult() Result {
	return Result{Recommended: []Slot{}, Other: []Slot{}}
}

// HasSlots reports whether either list is non-empty.
func (r Result) HasSlots() bool {
	return len(r.Recommended) > 0 || len(r.Other) > 0
}

// Contains reports whether value is offered in either list.
func (r Result) Contains(value string) bool {
	for _, lists := range [][]Slot{r.Recommended, r.Other} {
		for _, s := range lists {
			if s.Value == value {
				return true
			}
		}
	}

	return false
}

// SlotRequest is the body of the availability function.
type SlotRequest struct {
	BusinessID    string   `json:"business_id"`
	StaffID       string   `json:"barber_id"`
	RequestedDate string   `json:"requested_date"`
	ServiceIDs    []string `json:"service_ids"`
	RequestedTime string   `json:"requested_time,omitempty"`
}

func (q Query) ToRequest(requestedTime string) SlotRequest {
	return SlotRequest{
		BusinessID:    q.BusinessID,
		StaffID:       q.StaffID,
		RequestedDate: q.Date,
		ServiceIDs:    q.ServiceIDs,
		RequestedTime: requestedTime,
	}
}

// SlotResponse keeps both lists raw so a malformed list degrades to empty instead of failing
// the whole response.
type SlotResponse struct {
	Perfect json.RawMessage `json:"perfect"`
	Other   json.RawMessage `json:"other"`
}

// Slots decodes raw into slots, keeping only HH:mm values. The second value counts dropped entries.
func Slots(raw json.RawMessage) ([]Slot, int) {
	var decoded []Slot
	if len(raw) == 0 || json.Unmarshal(raw, &decoded) != nil {
		return []Slot{}, 0
	}

	out := make([]Slot, 0, len(decoded))
	dropped := 0

	for _, s := range decoded {
		if !timezone.IsValidTime(s.Value) {
			dropped++

			continue
		}

		if s.Label == "" {
			s.Label = s.Value
		}

		out = append(out, s)
	}

	return out, dropped
}
