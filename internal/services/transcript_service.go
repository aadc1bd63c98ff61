package services

import (
	"sync"
	"wayfare/internal/models/domain_models"
	"wayfare/pkg/utils"

	"github.com/google/uuid"
)

type TranscriptServiceInterface interface {
	// Append adds a message to the session transcript and returns it.
	// The transcript is append-only; messages are never edited after this.
	Append(sessionID string, role string, content string, hasItineraryUpdate bool) domain_models.ChatMessage
	List(sessionID string) []domain_models.ChatMessage
	Clear(sessionID string)
}

type TranscriptService struct {
	mu       sync.RWMutex
	messages map[string][]domain_models.ChatMessage
}

func NewTranscriptService() TranscriptServiceInterface {
	return &TranscriptService{
		messages: make(map[string][]domain_models.ChatMessage),
	}
}

func (t *TranscriptService) Append(sessionID string, role string, content string, hasItineraryUpdate bool) domain_models.ChatMessage {
	message := domain_models.ChatMessage{
		ID:                 uuid.New().String(),
		Role:               role,
		Content:            content,
		Timestamp:          utils.NowRFC3339(),
		HasItineraryUpdate: hasItineraryUpdate,
	}

	t.mu.Lock()
	t.messages[sessionID] = append(t.messages[sessionID], message)
	t.mu.Unlock()

	return message
}

func (t *TranscriptService) List(sessionID string) []domain_models.ChatMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain_models.ChatMessage, len(t.messages[sessionID]))
	copy(out, t.messages[sessionID])
	return out
}

func (t *TranscriptService) Clear(sessionID string) {
	t.mu.Lock()
	delete(t.messages, sessionID)
	t.mu.Unlock()
}
