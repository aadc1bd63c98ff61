package services

import (
	"context"
	"errors"
	"testing"
	"time"
	"wayfare/internal/models/domain_models"
	mem "wayfare/pkg/memcache"
	"wayfare/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanner struct {
	followUp      func(ctx context.Context, message string, originalItinerary string) (*utils.FollowUpResult, error)
	generate      func(ctx context.Context, req utils.GenerateTripRequest) (string, error)
	generateMulti func(ctx context.Context, req utils.GenerateMultiTripRequest) (string, error)
	autocomplete  func(ctx context.Context, query string) ([]utils.PlacePrediction, error)
}

func (s *stubPlanner) FollowUp(ctx context.Context, message string, originalItinerary string) (*utils.FollowUpResult, error) {
	if s.followUp == nil {
		return nil, errors.New("unexpected FollowUp call")
	}
	return s.followUp(ctx, message, originalItinerary)
}

func (s *stubPlanner) GenerateItinerary(ctx context.Context, req utils.GenerateTripRequest) (string, error) {
	if s.generate == nil {
		return "", errors.New("unexpected GenerateItinerary call")
	}
	return s.generate(ctx, req)
}

func (s *stubPlanner) GenerateMultiItinerary(ctx context.Context, req utils.GenerateMultiTripRequest) (string, error) {
	if s.generateMulti == nil {
		return "", errors.New("unexpected GenerateMultiItinerary call")
	}
	return s.generateMulti(ctx, req)
}

func (s *stubPlanner) Autocomplete(ctx context.Context, query string) ([]utils.PlacePrediction, error) {
	if s.autocomplete == nil {
		return nil, errors.New("unexpected Autocomplete call")
	}
	return s.autocomplete(ctx, query)
}

const (
	planA = "Day 1\nMorning: Museum\n"
	planB = "Day 1\nMorning: Aquarium\n"
)

type followUpFixture struct {
	followUp   FollowUpServiceInterface
	itinerary  ItineraryServiceInterface
	transcript TranscriptServiceInterface
}

func newFollowUpFixture(t *testing.T, planner utils.PlannerClientInterface) *followUpFixture {
	t.Helper()

	itinerary := NewItineraryService(mem.NewSessionCache(time.Minute))
	transcript := NewTranscriptService()

	require.NoError(t, itinerary.Persist(context.Background(), "s1", &domain_models.ItinerarySnapshot{
		CurrentItinerary:  planA,
		OriginalItinerary: planA,
	}))

	return &followUpFixture{
		followUp:   NewFollowUpService(itinerary, transcript, planner),
		itinerary:  itinerary,
		transcript: transcript,
	}
}

func (f *followUpFixture) currentItinerary(t *testing.T) string {
	t.Helper()
	snapshot, err := f.itinerary.Load(context.Background(), "s1", nil)
	require.NoError(t, err)
	return snapshot.CurrentItinerary
}

func TestSubmitFollowUpItineraryUpdate(t *testing.T) {
	planner := &stubPlanner{
		followUp: func(_ context.Context, message string, originalItinerary string) (*utils.FollowUpResult, error) {
			assert.Equal(t, "add an aquarium visit", message)
			assert.Equal(t, planA, originalItinerary)
			return &utils.FollowUpResult{
				Type:              "itinerary_update",
				ModifiedItinerary: planB,
				ChatResponse:      "Swapped the museum for the aquarium.",
			}, nil
		},
	}
	f := newFollowUpFixture(t, planner)

	resp, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "add an aquarium visit")
	require.NoError(t, err)

	assert.True(t, resp.ItineraryUpdated)
	require.NotNil(t, resp.Comparison)
	assert.Equal(t, planA, resp.Comparison.OriginalText)
	assert.Equal(t, planB, resp.Comparison.ModifiedText)
	assert.Equal(t, planB, f.currentItinerary(t))

	messages := f.transcript.List("s1")
	require.Len(t, messages, 2)
	assert.Equal(t, domain_models.ChatRoleUser, messages[0].Role)
	assert.Equal(t, "add an aquarium visit", messages[0].Content)
	assert.Equal(t, domain_models.ChatRoleAssistant, messages[1].Role)
	assert.Equal(t, "Swapped the museum for the aquarium.", messages[1].Content)
	assert.True(t, messages[1].HasItineraryUpdate)

	require.NotNil(t, f.followUp.Comparison("s1"))
}

func TestSubmitFollowUpConversationalReply(t *testing.T) {
	planner := &stubPlanner{
		followUp: func(_ context.Context, _ string, _ string) (*utils.FollowUpResult, error) {
			return &utils.FollowUpResult{Response: "I can't help with that"}, nil
		},
	}
	f := newFollowUpFixture(t, planner)

	resp, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "what's the weather like")
	require.NoError(t, err)

	assert.False(t, resp.ItineraryUpdated)
	assert.Nil(t, resp.Comparison)
	assert.Equal(t, planA, f.currentItinerary(t))
	assert.Nil(t, f.followUp.Comparison("s1"))

	messages := f.transcript.List("s1")
	require.Len(t, messages, 2)
	assert.Equal(t, "I can't help with that", messages[1].Content)
	assert.False(t, messages[1].HasItineraryUpdate)

	// Back to Idle: the next submit goes through.
	_, err = f.followUp.SubmitFollowUp(context.Background(), "s1", "another question")
	assert.NoError(t, err)
}

func TestSubmitFollowUpNetworkFailure(t *testing.T) {
	planner := &stubPlanner{
		followUp: func(_ context.Context, _ string, _ string) (*utils.FollowUpResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	f := newFollowUpFixture(t, planner)

	resp, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "please add a beach day")
	require.NoError(t, err)

	assert.False(t, resp.ItineraryUpdated)
	assert.Equal(t, domain_models.ChatRoleAssistant, resp.Message.Role)
	assert.Equal(t, assistantFailureMessage, resp.Message.Content)

	// Itinerary and comparison untouched.
	snapshot, loadErr := f.itinerary.Load(context.Background(), "s1", nil)
	require.NoError(t, loadErr)
	assert.Equal(t, planA, snapshot.CurrentItinerary)
	assert.Equal(t, planA, snapshot.OriginalItinerary)
	assert.Nil(t, f.followUp.Comparison("s1"))

	messages := f.transcript.List("s1")
	require.Len(t, messages, 2)
	assert.Equal(t, domain_models.ChatRoleUser, messages[0].Role)
	assert.Equal(t, assistantFailureMessage, messages[1].Content)
}

func TestSubmitFollowUpEmptyMessage(t *testing.T) {
	f := newFollowUpFixture(t, &stubPlanner{})

	_, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "   ")

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Empty(t, f.transcript.List("s1"))
}

func TestSubmitFollowUpWithoutItinerary(t *testing.T) {
	f := newFollowUpFixture(t, &stubPlanner{})

	_, err := f.followUp.SubmitFollowUp(context.Background(), "other-session", "hello")

	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestSelectOriginalRestoresPreRequestText(t *testing.T) {
	f := newFollowUpFixture(t, updatePlanner())

	_, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "change it")
	require.NoError(t, err)
	require.Equal(t, planB, f.currentItinerary(t))

	snapshot, err := f.followUp.SelectOriginal(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, planA, snapshot.CurrentItinerary)
	assert.Equal(t, planA, f.currentItinerary(t))
	assert.Nil(t, f.followUp.Comparison("s1"))

	_, err = f.followUp.SelectOriginal(context.Background(), "s1")
	assert.ErrorIs(t, err, utils.ErrComparisonNotActive)
}

func TestSelectModifiedKeepsReplacement(t *testing.T) {
	f := newFollowUpFixture(t, updatePlanner())

	_, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "change it")
	require.NoError(t, err)

	snapshot, err := f.followUp.SelectModified(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, planB, snapshot.CurrentItinerary)
	assert.Nil(t, f.followUp.Comparison("s1"))

	_, err = f.followUp.SelectModified(context.Background(), "s1")
	assert.ErrorIs(t, err, utils.ErrComparisonNotActive)
}

func TestSelectWithoutComparison(t *testing.T) {
	f := newFollowUpFixture(t, &stubPlanner{})

	_, err := f.followUp.SelectOriginal(context.Background(), "s1")
	assert.ErrorIs(t, err, utils.ErrComparisonNotActive)

	_, err = f.followUp.SelectModified(context.Background(), "s1")
	assert.ErrorIs(t, err, utils.ErrComparisonNotActive)
}

func TestSubmitFollowUpRejectedWhileInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	planner := &stubPlanner{
		followUp: func(_ context.Context, _ string, _ string) (*utils.FollowUpResult, error) {
			close(entered)
			<-release
			return &utils.FollowUpResult{Response: "done"}, nil
		},
	}
	f := newFollowUpFixture(t, planner)

	done := make(chan error, 1)
	go func() {
		_, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "first")
		done <- err
	}()

	<-entered
	_, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "second")
	assert.ErrorIs(t, err, utils.ErrFollowUpInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestSubmitFollowUpRejectedWhileComparing(t *testing.T) {
	f := newFollowUpFixture(t, updatePlanner())

	_, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "change it")
	require.NoError(t, err)

	_, err = f.followUp.SubmitFollowUp(context.Background(), "s1", "change it again")
	assert.ErrorIs(t, err, utils.ErrComparisonPending)

	// Resolving the comparison unblocks follow-ups.
	_, err = f.followUp.SelectModified(context.Background(), "s1")
	require.NoError(t, err)
	_, err = f.followUp.SubmitFollowUp(context.Background(), "s1", "change it again")
	assert.NoError(t, err)
}

func TestAssistantFallbackMessages(t *testing.T) {
	f := newFollowUpFixture(t, &stubPlanner{
		followUp: func(_ context.Context, _ string, _ string) (*utils.FollowUpResult, error) {
			return &utils.FollowUpResult{Type: "itinerary_update", ModifiedItinerary: planB}, nil
		},
	})

	resp, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "change it")
	require.NoError(t, err)
	assert.Equal(t, assistantUpdateFallback, resp.Message.Content)

	_, err = f.followUp.SelectModified(context.Background(), "s1")
	require.NoError(t, err)

	f2 := newFollowUpFixture(t, &stubPlanner{
		followUp: func(_ context.Context, _ string, _ string) (*utils.FollowUpResult, error) {
			return &utils.FollowUpResult{}, nil
		},
	})

	resp, err = f2.followUp.SubmitFollowUp(context.Background(), "s1", "hm")
	require.NoError(t, err)
	assert.Equal(t, assistantReplyFallback, resp.Message.Content)
}

func TestResetDropsFollowUpState(t *testing.T) {
	f := newFollowUpFixture(t, updatePlanner())

	_, err := f.followUp.SubmitFollowUp(context.Background(), "s1", "change it")
	require.NoError(t, err)
	require.NotNil(t, f.followUp.Comparison("s1"))

	f.followUp.Reset("s1")

	assert.Nil(t, f.followUp.Comparison("s1"))
	_, err = f.followUp.SelectModified(context.Background(), "s1")
	assert.ErrorIs(t, err, utils.ErrComparisonNotActive)
}

func updatePlanner() *stubPlanner {
	return &stubPlanner{
		followUp: func(_ context.Context, _ string, _ string) (*utils.FollowUpResult, error) {
			return &utils.FollowUpResult{
				Type:              "itinerary_update",
				ModifiedItinerary: planB,
				ChatResponse:      "Updated.",
			}, nil
		},
	}
}
