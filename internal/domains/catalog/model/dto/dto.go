package dto

import "salonbooking/internal/domains/catalog/model"

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int    `json:"price_cents"`
	DurationMin int    `json:"duration_min"`
	Category    string `json:"category,omitempty"`
}

func (r *ServiceResponse) FromModel(m model.Service) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.PriceCents = m.PriceCents
	r.DurationMin = m.DurationMin
	r.Category = m.Category
}

type GetServicesResponse struct {
	Services      []ServiceResponse `json:"services"`
	TotalDuration int               `json:"total_duration_min"`
}

func (r *GetServicesResponse) FromModels(models []model.Service) {
	r.Services = make([]ServiceResponse, len(models))
	for i, m := range models {
		r.Services[i].FromModel(m)
	}

	r.TotalDuration = model.TotalDuration(models)
}

type StaffResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (r *StaffResponse) FromModel(m model.StaffMember) {
	r.ID = m.ID
	r.Name = m.Name
	r.Role = m.Role
	r.AvatarURL = m.AvatarURL
}

type GetStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}

func (r *GetStaffResponse) FromModels(models []model.StaffMember) {
	r.Staff = make([]StaffResponse, len(models))
	for i, m := range models {
		r.Staff[i].FromModel(m)
	}
}
