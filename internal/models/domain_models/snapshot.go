package domain_models

// ItinerarySnapshot is the unit persisted to the session store. It is always
// written as a whole; there is no partial merge.
type ItinerarySnapshot struct {
	CurrentItinerary  string      `json:"currentItinerary"`
	OriginalItinerary string      `json:"originalItinerary"`
	TripDetails       TripDetails `json:"tripDetails"`
	Timestamp         string      `json:"timestamp"`
}

func (s ItinerarySnapshot) IsEmpty() bool {
	return s.CurrentItinerary == ""
}

// ComparisonState holds the two itinerary versions while the user decides
// which one to keep after a follow-up edit. Never persisted.
type ComparisonState struct {
	Active       bool   `json:"active"`
	OriginalText string `json:"originalText"`
	ModifiedText string `json:"modifiedText"`
}
