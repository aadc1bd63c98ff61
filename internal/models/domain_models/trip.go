package domain_models

const (
	JourneyTypeSingle = "single"
	JourneyTypeMulti  = "multi"
)

// TripDetails is the trip-level metadata captured when an itinerary is
// generated. Read-only afterwards; a new generation replaces it wholesale.
type TripDetails struct {
	Source          string   `json:"source"`
	Destination     string   `json:"destination"`
	Destinations    []string `json:"destinations,omitempty"`
	NumberOfPersons string   `json:"numberOfPersons"`
	TransportMode   string   `json:"transportMode"`
	Budget          string   `json:"budget"`
	Days            string   `json:"days"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	FoodPreference  string   `json:"foodPreference"`
	JourneyType     string   `json:"journeyType"`
}
