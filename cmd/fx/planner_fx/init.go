package planner_fx

import (
	"log"
	"os"
	"strconv"
	"time"
	"wayfare/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(ProvidePlannerClient)

// ProvidePlannerClient builds the client for the external planner API
// (itinerary generation, autocomplete, conversational follow-up).
func ProvidePlannerClient() utils.PlannerClientInterface {
	baseURL := os.Getenv("PLANNER_API_URL")
	if baseURL == "" {
		log.Fatal("PLANNER_API_URL is required")
	}

	timeout := 60 * time.Second
	if raw := os.Getenv("PLANNER_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	log.Printf("Initializing planner client for %s (timeout %s)", baseURL, timeout)
	return utils.NewPlannerClient(baseURL, timeout)
}
