package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrFollowUpInFlight    = errors.New("follow-up request already in flight")
	ErrComparisonNotActive = errors.New("no comparison pending")
	ErrComparisonPending   = errors.New("comparison awaiting resolution")
	ErrPlannerUnavailable  = errors.New("planner service unavailable")
	ErrSessionStore        = errors.New("session store error")
)
