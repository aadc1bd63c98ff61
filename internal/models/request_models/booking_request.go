package request_models

// BookingFormRequest is the single-destination trip form. Numeric fields stay
// strings end to end; the planner API expects them that way.
type BookingFormRequest struct {
	Source             string   `json:"source"`
	Destination        string   `json:"destination"`
	NumberOfPersons    string   `json:"numberOfPersons"`
	TransportMode      string   `json:"transportMode"`
	Budget             string   `json:"budget"`
	Days               string   `json:"days"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	Interests          []string `json:"interests"`
	FoodPreference     string   `json:"foodPreference"`
	AccessibilityNeeds []string `json:"accessibilityNeeds"`
}

type MultiBookingFormRequest struct {
	Source             string   `json:"source"`
	Destinations       []string `json:"destinations"`
	NumberOfPersons    string   `json:"numberOfPersons"`
	TransportMode      string   `json:"transportMode"`
	Budget             string   `json:"budget"`
	TotalDays          string   `json:"totalDays"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	Interests          []string `json:"interests"`
	FoodPreference     string   `json:"foodPreference"`
	AccessibilityNeeds []string `json:"accessibilityNeeds"`
}
