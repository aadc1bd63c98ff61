package services

import (
	"context"
	"encoding/json"
	"fmt"
	"wayfare/internal/models/domain_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

const snapshotKeyPrefix = "currentItinerary:"

type ItineraryServiceInterface interface {
	// Load resolves the session snapshot: persisted value first, then the
	// one-shot navigation hand-off, otherwise ErrItineraryNotFound (the
	// caller redirects to booking; this is a precondition, not a soft miss).
	Load(ctx context.Context, sessionID string, handoff *request_models.HandoffRequest) (*domain_models.ItinerarySnapshot, error)
	// Persist stamps the snapshot and writes it whole, replacing any prior
	// value for this session.
	Persist(ctx context.Context, sessionID string, snapshot *domain_models.ItinerarySnapshot) error
	Clear(ctx context.Context, sessionID string) error
	ExportText(snapshot domain_models.ItinerarySnapshot) (filename string, body string)
}

type ItineraryService struct {
	sessionStore repositories.SessionStore
}

func NewItineraryService(sessionStore repositories.SessionStore) ItineraryServiceInterface {
	return &ItineraryService{
		sessionStore: sessionStore,
	}
}

func (i *ItineraryService) Load(ctx context.Context, sessionID string, handoff *request_models.HandoffRequest) (*domain_models.ItinerarySnapshot, error) {
	key := snapshotKeyPrefix + sessionID

	raw, found, err := i.sessionStore.Get(ctx, key)
	if err != nil {
		return nil, utils.ErrSessionStore
	}

	if found {
		var snapshot domain_models.ItinerarySnapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
			return nil, utils.ErrSessionStore
		}
		if !snapshot.IsEmpty() {
			return &snapshot, nil
		}
		// Stale empty snapshot: drop it and fall through.
		_ = i.sessionStore.Remove(ctx, key)
	}

	if handoff != nil && handoff.Itinerary != "" {
		snapshot := domain_models.ItinerarySnapshot{
			CurrentItinerary:  handoff.Itinerary,
			OriginalItinerary: handoff.Itinerary,
			TripDetails:       handoff.TripDetails,
		}
		if err := i.Persist(ctx, sessionID, &snapshot); err != nil {
			return nil, err
		}
		return &snapshot, nil
	}

	return nil, utils.ErrItineraryNotFound
}

func (i *ItineraryService) Persist(ctx context.Context, sessionID string, snapshot *domain_models.ItinerarySnapshot) error {
	snapshot.Timestamp = utils.NowRFC3339()

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return utils.ErrSessionStore
	}
	if err := i.sessionStore.Set(ctx, snapshotKeyPrefix+sessionID, string(raw)); err != nil {
		return utils.ErrSessionStore
	}
	return nil
}

func (i *ItineraryService) Clear(ctx context.Context, sessionID string) error {
	if err := i.sessionStore.Remove(ctx, snapshotKeyPrefix+sessionID); err != nil {
		return utils.ErrSessionStore
	}
	return nil
}

func (i *ItineraryService) ExportText(snapshot domain_models.ItinerarySnapshot) (string, string) {
	details := snapshot.TripDetails

	destination := details.Destination
	if destination == "" {
		destination = "Trip"
	}
	filename := destination + "_Itinerary.txt"

	body := fmt.Sprintf("Trip to %s\nBudget: %s INR\nDuration: %s days\n\n%s",
		details.Destination, details.Budget, details.Days, snapshot.CurrentItinerary)

	return filename, body
}
