package controllers

import (
	"net/http"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	followUpService  services.FollowUpServiceInterface
	transcript       services.TranscriptServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	followUpService services.FollowUpServiceInterface,
	transcript services.TranscriptServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		followUpService:  followUpService,
		transcript:       transcript,
	}
}

// GetItinerary godoc
// @Summary Get the session itinerary
// @Description Returns the persisted snapshot with parsed days. 404 means no
// itinerary exists for this session and the client must go back to booking.
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	sessionID := c.GetString("session_id")

	snapshot, err := i.itineraryService.Load(c.Request.Context(), sessionID, nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(*snapshot), "Itinerary fetched successfully")
}

// HandoffItinerary godoc
// @Summary Seed the session itinerary from a navigation hand-off
// @Description Used once when the itinerary screen opens with freshly
// generated text. An existing persisted snapshot wins over the hand-off.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.HandoffRequest true "Itinerary text and trip details"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itinerary/handoff [post]
func (i *ItineraryController) HandoffItinerary(c *gin.Context) {
	var req request_models.HandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary text is required")
		return
	}

	sessionID := c.GetString("session_id")

	snapshot, err := i.itineraryService.Load(c.Request.Context(), sessionID, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(*snapshot), "Itinerary loaded successfully")
}

// ClearItinerary godoc
// @Summary Clear the session itinerary
// @Description Removes the snapshot, the chat transcript and any pending
// comparison. Called on logout and on back-to-booking.
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary [delete]
func (i *ItineraryController) ClearItinerary(c *gin.Context) {
	sessionID := c.GetString("session_id")

	if err := i.itineraryService.Clear(c.Request.Context(), sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	i.followUpService.Reset(sessionID)
	i.transcript.Clear(sessionID)

	utils.RespondSuccess(c, nil, "Itinerary cleared successfully")
}

// ExportItinerary streams the current itinerary as a downloadable text file.
func (i *ItineraryController) ExportItinerary(c *gin.Context) {
	sessionID := c.GetString("session_id")

	snapshot, err := i.itineraryService.Load(c.Request.Context(), sessionID, nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename, body := i.itineraryService.ExportText(*snapshot)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
