package model

const (
	TableServices = "services"
	TableStaff    = "barbers"
	TableBusiness = "business"

	FieldID         = "id"
	FieldBusinessID = "business_id"
	FieldActive     = "active"
	FieldStatus     = "status"
	FieldName       = "name"
	FieldTimezone   = "timezone"

	StaffStatusActive = "active"

	ServiceColumns = "id,name,description,price_cents,duration_min,category"
	StaffColumns   = "id,name,status,role,avatar_url"
)

// Service is a bookable treatment. Prices are in minor units.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int    `json:"price_cents"`
	DurationMin int    `json:"duration_min"`
	Category    string `json:"category"`
}

type StaffMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

// Active reports whether the staff member can take bookings.
func (s StaffMember) Active() bool {
	return s.Status == StaffStatusActive
}

type Business struct {
	Timezone string `json:"timezone"`
}

// ServiceIDs returns the ids of services in order.
func ServiceIDs(services []Service) []string {
	ids := make([]string, len(services))
	for i, s := range services {
		ids[i] = s.ID
	}

	return ids
}

// Durations returns the duration of each service, parallel to ServiceIDs.
func Durations(services []Service) []int {
	out := make([]int, len(services))
	for i, s := range services {
		out[i] = s.DurationMin
	}

	return out
}

// TotalDuration sums the durations of services.
func TotalDuration(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}

	return total
}
