package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "No itinerary for this session")
	case errors.Is(err, ErrFollowUpInFlight):
		RespondError(c, http.StatusConflict, "A follow-up request is already in progress")
	case errors.Is(err, ErrComparisonNotActive):
		RespondError(c, http.StatusConflict, "No itinerary comparison is pending")
	case errors.Is(err, ErrComparisonPending):
		RespondError(c, http.StatusConflict, "Resolve the pending itinerary comparison first")
	case errors.Is(err, ErrPlannerUnavailable):
		log.Printf("Planner error: %v", err)
		RespondError(c, http.StatusBadGateway, "Planner service is unavailable")
	case errors.Is(err, ErrSessionStore):
		log.Printf("Session store error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
