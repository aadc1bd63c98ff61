package controllers_fx

import (
	"wayfare/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewFollowUpController),
	fx.Provide(controllers.NewBookingController))
