package itinerary_fx

import (
	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideItineraryService,
	provideTranscriptService,
	provideFollowUpService)

func provideItineraryService(sessionStore repositories.SessionStore) services.ItineraryServiceInterface {
	return services.NewItineraryService(sessionStore)
}

func provideTranscriptService() services.TranscriptServiceInterface {
	return services.NewTranscriptService()
}

func provideFollowUpService(
	itineraryService services.ItineraryServiceInterface,
	transcript services.TranscriptServiceInterface,
	planner utils.PlannerClientInterface,
) services.FollowUpServiceInterface {
	return services.NewFollowUpService(itineraryService, transcript, planner)
}
