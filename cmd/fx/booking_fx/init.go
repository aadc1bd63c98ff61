package booking_fx

import (
	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideBookingService)

func provideBookingService(
	sessionStore repositories.SessionStore,
	itineraryService services.ItineraryServiceInterface,
	planner utils.PlannerClientInterface,
) services.BookingServiceInterface {
	return services.NewBookingService(sessionStore, itineraryService, planner)
}
