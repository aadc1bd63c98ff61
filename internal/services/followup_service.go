package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"wayfare/internal/models/domain_models"
	"wayfare/internal/models/response_models"
	"wayfare/pkg/utils"
)

type followUpPhase int

const (
	phaseIdle followUpPhase = iota
	phaseAwaitingResponse
	phaseComparing
)

const (
	assistantUpdateFallback = "I've updated your itinerary based on your request."
	assistantReplyFallback  = "I'm sorry, I couldn't process your request. Please try again."
	assistantFailureMessage = "Sorry, I'm having trouble responding right now. Please try again later."
)

type FollowUpServiceInterface interface {
	// SubmitFollowUp runs one follow-up exchange: optimistic user append,
	// planner call, then either a comparison (itinerary replaced), a plain
	// reply, or a locally-recovered failure message. Upstream failure is not
	// an error to the caller; the transcript carries the failure.
	SubmitFollowUp(ctx context.Context, sessionID string, message string) (*response_models.FollowUpResponse, error)
	SelectOriginal(ctx context.Context, sessionID string) (*domain_models.ItinerarySnapshot, error)
	SelectModified(ctx context.Context, sessionID string) (*domain_models.ItinerarySnapshot, error)
	Comparison(sessionID string) *domain_models.ComparisonState
	Reset(sessionID string)
}

type sessionFollowUpState struct {
	phase      followUpPhase
	comparison domain_models.ComparisonState
}

type FollowUpService struct {
	itineraryService ItineraryServiceInterface
	transcript       TranscriptServiceInterface
	planner          utils.PlannerClientInterface

	mu       sync.Mutex
	sessions map[string]*sessionFollowUpState
}

func NewFollowUpService(
	itineraryService ItineraryServiceInterface,
	transcript TranscriptServiceInterface,
	planner utils.PlannerClientInterface,
) FollowUpServiceInterface {
	return &FollowUpService{
		itineraryService: itineraryService,
		transcript:       transcript,
		planner:          planner,
		sessions:         make(map[string]*sessionFollowUpState),
	}
}

func (f *FollowUpService) state(sessionID string) *sessionFollowUpState {
	s, ok := f.sessions[sessionID]
	if !ok {
		s = &sessionFollowUpState{phase: phaseIdle}
		f.sessions[sessionID] = s
	}
	return s
}

func (f *FollowUpService) SubmitFollowUp(ctx context.Context, sessionID string, message string) (*response_models.FollowUpResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, utils.ErrInvalidInput
	}

	snapshot, err := f.itineraryService.Load(ctx, sessionID, nil)
	if err != nil {
		return nil, err
	}

	// One request in flight per session; a pending comparison must be
	// resolved before the next edit.
	f.mu.Lock()
	state := f.state(sessionID)
	switch state.phase {
	case phaseAwaitingResponse:
		f.mu.Unlock()
		return nil, utils.ErrFollowUpInFlight
	case phaseComparing:
		f.mu.Unlock()
		return nil, utils.ErrComparisonPending
	}
	state.phase = phaseAwaitingResponse
	f.mu.Unlock()

	// User message is appended before the request goes out, so it is on the
	// transcript even if the planner call fails.
	f.transcript.Append(sessionID, domain_models.ChatRoleUser, message, false)

	result, err := f.planner.FollowUp(ctx, message, snapshot.CurrentItinerary)
	if err != nil {
		log.Printf("Follow-up request failed: %v", err)
		assistant := f.transcript.Append(sessionID, domain_models.ChatRoleAssistant, assistantFailureMessage, false)
		f.setPhase(sessionID, phaseIdle)
		return &response_models.FollowUpResponse{Message: assistant}, nil
	}

	if result.HasItineraryUpdate() {
		return f.applyItineraryUpdate(ctx, sessionID, snapshot, result)
	}

	content := result.Response
	if content == "" {
		content = assistantReplyFallback
	}
	assistant := f.transcript.Append(sessionID, domain_models.ChatRoleAssistant, content, false)
	f.setPhase(sessionID, phaseIdle)
	return &response_models.FollowUpResponse{Message: assistant}, nil
}

func (f *FollowUpService) applyItineraryUpdate(
	ctx context.Context,
	sessionID string,
	snapshot *domain_models.ItinerarySnapshot,
	result *utils.FollowUpResult,
) (*response_models.FollowUpResponse, error) {

	comparison := domain_models.ComparisonState{
		Active:       true,
		OriginalText: snapshot.CurrentItinerary,
		ModifiedText: result.ModifiedItinerary,
	}

	updated := *snapshot
	updated.CurrentItinerary = result.ModifiedItinerary
	if err := f.itineraryService.Persist(ctx, sessionID, &updated); err != nil {
		// Could not store the replacement; surface as a failed exchange and
		// leave the session itinerary untouched.
		log.Printf("Persisting modified itinerary failed: %v", err)
		assistant := f.transcript.Append(sessionID, domain_models.ChatRoleAssistant, assistantFailureMessage, false)
		f.setPhase(sessionID, phaseIdle)
		return &response_models.FollowUpResponse{Message: assistant}, nil
	}

	content := result.ChatResponse
	if content == "" {
		content = assistantUpdateFallback
	}
	assistant := f.transcript.Append(sessionID, domain_models.ChatRoleAssistant, content, true)

	f.mu.Lock()
	state := f.state(sessionID)
	state.phase = phaseComparing
	state.comparison = comparison
	f.mu.Unlock()

	return &response_models.FollowUpResponse{
		Message:          assistant,
		ItineraryUpdated: true,
		Comparison:       &comparison,
		Days:             domain_models.ParseItinerary(result.ModifiedItinerary),
	}, nil
}

func (f *FollowUpService) SelectOriginal(ctx context.Context, sessionID string) (*domain_models.ItinerarySnapshot, error) {
	comparison, err := f.takeComparison(sessionID)
	if err != nil {
		return nil, err
	}

	snapshot, err := f.itineraryService.Load(ctx, sessionID, nil)
	if err != nil {
		return nil, err
	}

	snapshot.CurrentItinerary = comparison.OriginalText
	if err := f.itineraryService.Persist(ctx, sessionID, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (f *FollowUpService) SelectModified(ctx context.Context, sessionID string) (*domain_models.ItinerarySnapshot, error) {
	if _, err := f.takeComparison(sessionID); err != nil {
		return nil, err
	}

	// The modified text already is the stored current itinerary.
	return f.itineraryService.Load(ctx, sessionID, nil)
}

// takeComparison atomically consumes the pending comparison and returns the
// session to Idle.
func (f *FollowUpService) takeComparison(sessionID string) (domain_models.ComparisonState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.state(sessionID)
	if state.phase != phaseComparing || !state.comparison.Active {
		return domain_models.ComparisonState{}, utils.ErrComparisonNotActive
	}

	comparison := state.comparison
	state.phase = phaseIdle
	state.comparison = domain_models.ComparisonState{}
	return comparison, nil
}

func (f *FollowUpService) Comparison(sessionID string) *domain_models.ComparisonState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.state(sessionID)
	if state.phase != phaseComparing {
		return nil
	}
	comparison := state.comparison
	return &comparison
}

// Reset drops all follow-up state for a session. Used on logout and
// back-to-booking, together with the transcript clear.
func (f *FollowUpService) Reset(sessionID string) {
	f.mu.Lock()
	delete(f.sessions, sessionID)
	f.mu.Unlock()
}

func (f *FollowUpService) setPhase(sessionID string, phase followUpPhase) {
	f.mu.Lock()
	f.state(sessionID).phase = phase
	f.mu.Unlock()
}
