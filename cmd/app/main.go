package main

import (
	"context"
	"log"
	"os"
	"wayfare/cmd/fx/booking_fx"
	"wayfare/cmd/fx/controllers_fx"
	"wayfare/cmd/fx/itinerary_fx"
	"wayfare/cmd/fx/planner_fx"
	"wayfare/cmd/fx/session_fx"
	"wayfare/internal/api/controllers"
	"wayfare/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		session_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		booking_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	followUpController *controllers.FollowUpController,
	bookingController *controllers.BookingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, followUpController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	followUpController *controllers.FollowUpController,
	bookingController *controllers.BookingController) {

	authed := r.Group("/", middleware.JWTAuthMiddleware())

	itineraryGroup := authed.Group("/itinerary")
	itineraryGroup.GET("", itineraryController.GetItinerary)
	itineraryGroup.POST("/handoff", itineraryController.HandoffItinerary)
	itineraryGroup.DELETE("", itineraryController.ClearItinerary)
	itineraryGroup.GET("/export", itineraryController.ExportItinerary)

	chatGroup := authed.Group("/chat")
	chatGroup.POST("/followup", followUpController.SendFollowUp)
	chatGroup.GET("/messages", followUpController.ListMessages)
	chatGroup.GET("/comparison", followUpController.GetComparison)
	chatGroup.POST("/select-original", followUpController.SelectOriginal)
	chatGroup.POST("/select-modified", followUpController.SelectModified)

	bookingGroup := authed.Group("/booking")
	bookingGroup.POST("/generate", bookingController.GenerateItinerary)
	bookingGroup.POST("/generate-multi", bookingController.GenerateMultiItinerary)
	bookingGroup.PUT("/form", bookingController.SaveForm)
	bookingGroup.GET("/form", bookingController.GetForm)
	bookingGroup.PUT("/form-multi", bookingController.SaveMultiForm)
	bookingGroup.GET("/form-multi", bookingController.GetMultiForm)
	bookingGroup.DELETE("/form", bookingController.ClearForms)

	authed.GET("/places/autocomplete", bookingController.Autocomplete)
}
