package dto

import (
	"salonbooking/internal/domains/availability/model"
	catalogModel "salonbooking/internal/domains/catalog/model"
)

type SlotsResponse struct {
	Date        string       `json:"date"`
	StaffID     string       `json:"staff_id"`
	Timezone    string       `json:"timezone"`
	Recommended []model.Slot `json:"recommended"`
	Other       []model.Slot `json:"other"`
	Error       string       `json:"error,omitempty"`
}

func (r *SlotsResponse) FromModel(q model.Query, res model.Result) {
	r.Date = q.Date
	r.StaffID = q.StaffID
	r.Timezone = q.Timezone
	r.Recommended = res.Recommended
	r.Other = res.Other
	r.Error = res.Error
}

type NextAvailableResponse struct {
	Found bool   `json:"found"`
	Date  string `json:"date,omitempty"`
}

type AlternativeStaffResponse struct {
	Found bool   `json:"found"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
}

func (r *AlternativeStaffResponse) FromModel(m catalogModel.StaffMember, found bool) {
	r.Found = found
	if found {
		r.ID = m.ID
		r.Name = m.Name
	}
}
