package domain_models

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one entry in the append-only follow-up transcript.
type ChatMessage struct {
	ID                 string `json:"id"`
	Role               string `json:"role"`
	Content            string `json:"content"`
	Timestamp          string `json:"timestamp"`
	HasItineraryUpdate bool   `json:"hasItineraryUpdate,omitempty"`
}
