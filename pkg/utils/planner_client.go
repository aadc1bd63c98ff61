package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PlannerClientInterface wraps the external planner API: itinerary generation,
// place autocomplete and the conversational follow-up endpoint. All three are
// opaque HTTP calls; this client only handles transport and JSON shapes.
type PlannerClientInterface interface {
	GenerateItinerary(ctx context.Context, req GenerateTripRequest) (string, error)
	GenerateMultiItinerary(ctx context.Context, req GenerateMultiTripRequest) (string, error)
	FollowUp(ctx context.Context, message string, originalItinerary string) (*FollowUpResult, error)
	Autocomplete(ctx context.Context, query string) ([]PlacePrediction, error)
}

// GenerateTripRequest mirrors the planner's single-destination payload.
// String-typed numerics are the upstream contract, not a choice.
type GenerateTripRequest struct {
	Source             string   `json:"source"`
	Destination        string   `json:"destination"`
	NumberOfPersons    string   `json:"numberOfPersons"`
	TransportMode      string   `json:"transportMode"`
	Budget             string   `json:"budget"`
	Days               string   `json:"days"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	Interests          []string `json:"interests"`
	FoodPreference     string   `json:"foodPreference"`
	AccessibilityNeeds []string `json:"accessibilityNeeds"`
}

type GenerateMultiTripRequest struct {
	Source             string   `json:"source"`
	Destinations       []string `json:"destinations"`
	NumberOfPersons    string   `json:"numberOfPersons"`
	TransportMode      string   `json:"transportMode"`
	Budget             string   `json:"budget"`
	TotalDays          string   `json:"totalDays"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	Interests          []string `json:"interests"`
	FoodPreference     string   `json:"foodPreference"`
	AccessibilityNeeds []string `json:"accessibilityNeeds"`
}

// FollowUpResult covers both follow-up response shapes: an itinerary update
// ({type, modified_itinerary, chat_response}) or a plain reply ({response}).
type FollowUpResult struct {
	Type              string `json:"type"`
	ModifiedItinerary string `json:"modified_itinerary"`
	ChatResponse      string `json:"chat_response"`
	Response          string `json:"response"`
}

func (r *FollowUpResult) HasItineraryUpdate() bool {
	return r.Type == "itinerary_update" && r.ModifiedItinerary != ""
}

type PlacePrediction struct {
	PlaceID       string `json:"place_id"`
	Description   string `json:"description"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

type PlannerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPlannerClient(baseURL string, timeout time.Duration) PlannerClientInterface {
	return &PlannerClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *PlannerClient) GenerateItinerary(ctx context.Context, req GenerateTripRequest) (string, error) {
	var out struct {
		Itinerary string `json:"itinerary"`
	}
	if err := p.postJSON(ctx, "/routers/generate-itinerary", req, &out); err != nil {
		return "", err
	}
	if out.Itinerary == "" {
		return "", fmt.Errorf("planner returned empty itinerary")
	}
	return out.Itinerary, nil
}

func (p *PlannerClient) GenerateMultiItinerary(ctx context.Context, req GenerateMultiTripRequest) (string, error) {
	var out struct {
		Itinerary string `json:"itinerary"`
	}
	if err := p.postJSON(ctx, "/routers/generate-multi-itinerary", req, &out); err != nil {
		return "", err
	}
	if out.Itinerary == "" {
		return "", fmt.Errorf("planner returned empty itinerary")
	}
	return out.Itinerary, nil
}

func (p *PlannerClient) FollowUp(ctx context.Context, message string, originalItinerary string) (*FollowUpResult, error) {
	body := map[string]string{
		"message":           message,
		"originalItinerary": originalItinerary,
	}
	var out FollowUpResult
	if err := p.postJSON(ctx, "/chat/followup", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PlannerClient) Autocomplete(ctx context.Context, query string) ([]PlacePrediction, error) {
	endpoint := p.baseURL + "/places/autocomplete?query=" + url.QueryEscape(query)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("autocomplete failed with status %d", resp.StatusCode)
	}

	var out struct {
		Predictions []PlacePrediction `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Predictions, nil
}

func (p *PlannerClient) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s failed with status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
