package controllers

import (
	"net/http"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FollowUpController struct {
	followUpService services.FollowUpServiceInterface
	transcript      services.TranscriptServiceInterface
}

func NewFollowUpController(
	followUpService services.FollowUpServiceInterface,
	transcript services.TranscriptServiceInterface,
) *FollowUpController {
	return &FollowUpController{
		followUpService: followUpService,
		transcript:      transcript,
	}
}

// SendFollowUp godoc
// @Summary Send a follow-up message about the itinerary
// @Description Forwards the message to the planner. When the reply carries a
// modified itinerary the response includes a comparison the client must
// resolve via select-original or select-modified.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.FollowUpRequest true "Follow-up message"
// @Success 200 {object} response_models.FollowUpResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/followup [post]
func (f *FollowUpController) SendFollowUp(c *gin.Context) {
	var req request_models.FollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	sessionID := c.GetString("session_id")

	resp, err := f.followUpService.SubmitFollowUp(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Follow-up processed")
}

func (f *FollowUpController) ListMessages(c *gin.Context) {
	sessionID := c.GetString("session_id")
	utils.RespondSuccess(c, f.transcript.List(sessionID), "Messages fetched successfully")
}

func (f *FollowUpController) GetComparison(c *gin.Context) {
	sessionID := c.GetString("session_id")
	utils.RespondSuccess(c, f.followUpService.Comparison(sessionID), "Comparison state fetched")
}

// SelectOriginal resolves a pending comparison by restoring the itinerary
// text captured before the follow-up request.
func (f *FollowUpController) SelectOriginal(c *gin.Context) {
	sessionID := c.GetString("session_id")

	snapshot, err := f.followUpService.SelectOriginal(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(*snapshot), "Reverted to original itinerary")
}

// SelectModified resolves a pending comparison by keeping the replacement.
func (f *FollowUpController) SelectModified(c *gin.Context) {
	sessionID := c.GetString("session_id")

	snapshot, err := f.followUpService.SelectModified(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(*snapshot), "Keeping modified itinerary")
}
