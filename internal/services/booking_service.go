package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"
	"wayfare/internal/models/domain_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

const (
	bookingFormKeyPrefix = "travelBookingForm:"
	multiFormKeyPrefix   = "multiDestinationForm:"
)

type BookingServiceInterface interface {
	SaveForm(ctx context.Context, sessionID string, form request_models.BookingFormRequest) error
	LoadForm(ctx context.Context, sessionID string) (*request_models.BookingFormRequest, bool, error)
	SaveMultiForm(ctx context.Context, sessionID string, form request_models.MultiBookingFormRequest) error
	LoadMultiForm(ctx context.Context, sessionID string) (*request_models.MultiBookingFormRequest, bool, error)
	// ClearForms drops the in-progress forms and the itinerary snapshot,
	// forcing a fresh generation for the next trip.
	ClearForms(ctx context.Context, sessionID string) error
	GenerateItinerary(ctx context.Context, sessionID string, form request_models.BookingFormRequest) (*domain_models.ItinerarySnapshot, error)
	GenerateMultiItinerary(ctx context.Context, sessionID string, form request_models.MultiBookingFormRequest) (*domain_models.ItinerarySnapshot, error)
	Autocomplete(ctx context.Context, query string) ([]utils.PlacePrediction, error)
}

type BookingService struct {
	sessionStore     repositories.SessionStore
	itineraryService ItineraryServiceInterface
	planner          utils.PlannerClientInterface
}

func NewBookingService(
	sessionStore repositories.SessionStore,
	itineraryService ItineraryServiceInterface,
	planner utils.PlannerClientInterface,
) BookingServiceInterface {
	return &BookingService{
		sessionStore:     sessionStore,
		itineraryService: itineraryService,
		planner:          planner,
	}
}

func (b *BookingService) SaveForm(ctx context.Context, sessionID string, form request_models.BookingFormRequest) error {
	return b.saveJSON(ctx, bookingFormKeyPrefix+sessionID, form)
}

func (b *BookingService) LoadForm(ctx context.Context, sessionID string) (*request_models.BookingFormRequest, bool, error) {
	var form request_models.BookingFormRequest
	found, err := b.loadJSON(ctx, bookingFormKeyPrefix+sessionID, &form)
	if err != nil || !found {
		return nil, found, err
	}
	return &form, true, nil
}

func (b *BookingService) SaveMultiForm(ctx context.Context, sessionID string, form request_models.MultiBookingFormRequest) error {
	return b.saveJSON(ctx, multiFormKeyPrefix+sessionID, form)
}

func (b *BookingService) LoadMultiForm(ctx context.Context, sessionID string) (*request_models.MultiBookingFormRequest, bool, error) {
	var form request_models.MultiBookingFormRequest
	found, err := b.loadJSON(ctx, multiFormKeyPrefix+sessionID, &form)
	if err != nil || !found {
		return nil, found, err
	}
	return &form, true, nil
}

func (b *BookingService) ClearForms(ctx context.Context, sessionID string) error {
	if err := b.sessionStore.Remove(ctx, bookingFormKeyPrefix+sessionID); err != nil {
		return utils.ErrSessionStore
	}
	if err := b.sessionStore.Remove(ctx, multiFormKeyPrefix+sessionID); err != nil {
		return utils.ErrSessionStore
	}
	return b.itineraryService.Clear(ctx, sessionID)
}

func (b *BookingService) GenerateItinerary(ctx context.Context, sessionID string, form request_models.BookingFormRequest) (*domain_models.ItinerarySnapshot, error) {
	if err := validateBookingForm(form.Source, form.Destination, form.NumberOfPersons, form.Budget, form.Days); err != nil {
		return nil, err
	}

	text, err := b.planner.GenerateItinerary(ctx, utils.GenerateTripRequest{
		Source:             form.Source,
		Destination:        form.Destination,
		NumberOfPersons:    form.NumberOfPersons,
		TransportMode:      form.TransportMode,
		Budget:             form.Budget,
		Days:               form.Days,
		StartDate:          form.StartDate,
		EndDate:            form.EndDate,
		Interests:          form.Interests,
		FoodPreference:     form.FoodPreference,
		AccessibilityNeeds: form.AccessibilityNeeds,
	})
	if err != nil {
		return nil, utils.ErrPlannerUnavailable
	}

	snapshot := domain_models.ItinerarySnapshot{
		CurrentItinerary:  text,
		OriginalItinerary: text,
		TripDetails: domain_models.TripDetails{
			Source:          form.Source,
			Destination:     form.Destination,
			NumberOfPersons: form.NumberOfPersons,
			TransportMode:   form.TransportMode,
			Budget:          form.Budget,
			Days:            form.Days,
			StartDate:       form.StartDate,
			EndDate:         form.EndDate,
			FoodPreference:  form.FoodPreference,
			JourneyType:     domain_models.JourneyTypeSingle,
		},
	}

	if err := b.itineraryService.Persist(ctx, sessionID, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (b *BookingService) GenerateMultiItinerary(ctx context.Context, sessionID string, form request_models.MultiBookingFormRequest) (*domain_models.ItinerarySnapshot, error) {
	destination := strings.Join(form.Destinations, ", ")
	if err := validateBookingForm(form.Source, destination, form.NumberOfPersons, form.Budget, form.TotalDays); err != nil {
		return nil, err
	}

	text, err := b.planner.GenerateMultiItinerary(ctx, utils.GenerateMultiTripRequest{
		Source:             form.Source,
		Destinations:       form.Destinations,
		NumberOfPersons:    form.NumberOfPersons,
		TransportMode:      form.TransportMode,
		Budget:             form.Budget,
		TotalDays:          form.TotalDays,
		StartDate:          form.StartDate,
		EndDate:            form.EndDate,
		Interests:          form.Interests,
		FoodPreference:     form.FoodPreference,
		AccessibilityNeeds: form.AccessibilityNeeds,
	})
	if err != nil {
		return nil, utils.ErrPlannerUnavailable
	}

	snapshot := domain_models.ItinerarySnapshot{
		CurrentItinerary:  text,
		OriginalItinerary: text,
		TripDetails: domain_models.TripDetails{
			Source:          form.Source,
			Destination:     destination,
			Destinations:    form.Destinations,
			NumberOfPersons: form.NumberOfPersons,
			TransportMode:   form.TransportMode,
			Budget:          form.Budget,
			Days:            form.TotalDays,
			StartDate:       form.StartDate,
			EndDate:         form.EndDate,
			FoodPreference:  form.FoodPreference,
			JourneyType:     domain_models.JourneyTypeMulti,
		},
	}

	if err := b.itineraryService.Persist(ctx, sessionID, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (b *BookingService) Autocomplete(ctx context.Context, query string) ([]utils.PlacePrediction, error) {
	// Short queries never reach the upstream places API. Counted in runes,
	// not bytes, so a single multi-byte character still short-circuits.
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 2 {
		return []utils.PlacePrediction{}, nil
	}

	predictions, err := b.planner.Autocomplete(ctx, query)
	if err != nil {
		return nil, utils.ErrPlannerUnavailable
	}
	if len(predictions) > 5 {
		predictions = predictions[:5]
	}
	return predictions, nil
}

func validateBookingForm(source, destination, persons, budget, days string) error {
	if source == "" || destination == "" {
		return utils.ErrInvalidInput
	}
	if n, err := strconv.Atoi(persons); err != nil || n <= 0 || n > 20 {
		return utils.ErrInvalidInput
	}
	if n, err := strconv.Atoi(budget); err != nil || n <= 0 {
		return utils.ErrInvalidInput
	}
	if n, err := strconv.Atoi(days); err != nil || n <= 0 {
		return utils.ErrInvalidInput
	}
	return nil
}

func (b *BookingService) saveJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return utils.ErrSessionStore
	}
	if err := b.sessionStore.Set(ctx, key, string(raw)); err != nil {
		return utils.ErrSessionStore
	}
	return nil
}

func (b *BookingService) loadJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, found, err := b.sessionStore.Get(ctx, key)
	if err != nil {
		return false, utils.ErrSessionStore
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, utils.ErrSessionStore
	}
	return true, nil
}
