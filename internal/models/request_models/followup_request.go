package request_models

type FollowUpRequest struct {
	Message string `json:"message" binding:"required"`
}
