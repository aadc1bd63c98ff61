package request_models

import "wayfare/internal/models/domain_models"

// HandoffRequest is the one-shot navigation payload delivered when the
// itinerary screen opens without a persisted snapshot.
type HandoffRequest struct {
	Itinerary   string                    `json:"itinerary" binding:"required"`
	TripDetails domain_models.TripDetails `json:"tripDetails"`
}
