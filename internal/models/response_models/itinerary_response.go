package response_models

import "wayfare/internal/models/domain_models"

type ItineraryResponse struct {
	CurrentItinerary  string                    `json:"current_itinerary"`
	OriginalItinerary string                    `json:"original_itinerary"`
	TripDetails       domain_models.TripDetails `json:"trip_details"`
	Timestamp         string                    `json:"timestamp"`
	Days              []domain_models.Day       `json:"days"`
}

func BuildItineraryResponse(snapshot domain_models.ItinerarySnapshot) *ItineraryResponse {
	return &ItineraryResponse{
		CurrentItinerary:  snapshot.CurrentItinerary,
		OriginalItinerary: snapshot.OriginalItinerary,
		TripDetails:       snapshot.TripDetails,
		Timestamp:         snapshot.Timestamp,
		Days:              domain_models.ParseItinerary(snapshot.CurrentItinerary),
	}
}
