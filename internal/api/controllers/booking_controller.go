package controllers

import (
	"net/http"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

func (b *BookingController) GenerateItinerary(c *gin.Context) {
	var req request_models.BookingFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking form")
		return
	}

	sessionID := c.GetString("session_id")

	snapshot, err := b.bookingService.GenerateItinerary(c.Request.Context(), sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(*snapshot), "Itinerary generated successfully")
}

func (b *BookingController) GenerateMultiItinerary(c *gin.Context) {
	var req request_models.MultiBookingFormRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Destinations) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "At least one destination is required")
		return
	}

	sessionID := c.GetString("session_id")

	snapshot, err := b.bookingService.GenerateMultiItinerary(c.Request.Context(), sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(*snapshot), "Multi-destination itinerary generated successfully")
}

func (b *BookingController) SaveForm(c *gin.Context) {
	var req request_models.BookingFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking form")
		return
	}

	sessionID := c.GetString("session_id")

	if err := b.bookingService.SaveForm(c.Request.Context(), sessionID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking form saved")
}

func (b *BookingController) GetForm(c *gin.Context) {
	sessionID := c.GetString("session_id")

	form, found, err := b.bookingService.LoadForm(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !found {
		utils.RespondSuccess(c, nil, "No saved booking form")
		return
	}
	utils.RespondSuccess(c, form, "Booking form fetched")
}

func (b *BookingController) SaveMultiForm(c *gin.Context) {
	var req request_models.MultiBookingFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking form")
		return
	}

	sessionID := c.GetString("session_id")

	if err := b.bookingService.SaveMultiForm(c.Request.Context(), sessionID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking form saved")
}

func (b *BookingController) GetMultiForm(c *gin.Context) {
	sessionID := c.GetString("session_id")

	form, found, err := b.bookingService.LoadMultiForm(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !found {
		utils.RespondSuccess(c, nil, "No saved booking form")
		return
	}
	utils.RespondSuccess(c, form, "Booking form fetched")
}

func (b *BookingController) ClearForms(c *gin.Context) {
	sessionID := c.GetString("session_id")

	if err := b.bookingService.ClearForms(c.Request.Context(), sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking forms cleared")
}

func (b *BookingController) Autocomplete(c *gin.Context) {
	query := c.Query("query")

	predictions, err := b.bookingService.Autocomplete(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"predictions": predictions}, "Predictions fetched")
}
