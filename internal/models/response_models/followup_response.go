package response_models

import "wayfare/internal/models/domain_models"

// FollowUpResponse is what the chat panel renders after a follow-up resolves:
// the assistant reply, and when the itinerary changed, both versions for the
// comparison view.
type FollowUpResponse struct {
	Message          domain_models.ChatMessage      `json:"message"`
	ItineraryUpdated bool                           `json:"itinerary_updated"`
	Comparison       *domain_models.ComparisonState `json:"comparison,omitempty"`
	Days             []domain_models.Day            `json:"days,omitempty"`
}
