package domain_models

import (
	"regexp"
	"strings"
)

// Day is one parsed day block of an itinerary.
type Day struct {
	Title         string   `json:"title"`
	Morning       string   `json:"morning"`
	Afternoon     string   `json:"afternoon"`
	Evening       string   `json:"evening"`
	Meals         string   `json:"meals"`
	Accommodation string   `json:"accommodation"`
	Activities    []string `json:"activities"`
}

var dayHeadingRe = regexp.MustCompile(`(?i)^Day \d+`)

// sectionLabels in match order. Repeated labels within a day overwrite (last write wins).
var sectionLabels = []struct {
	prefix string
	assign func(d *Day, value string)
}{
	{"Morning:", func(d *Day, v string) { d.Morning = v }},
	{"Afternoon:", func(d *Day, v string) { d.Afternoon = v }},
	{"Evening:", func(d *Day, v string) { d.Evening = v }},
	{"Meals:", func(d *Day, v string) { d.Meals = v }},
	{"Accommodation:", func(d *Day, v string) { d.Accommodation = v }},
}

// ParseItinerary converts free-form itinerary text into ordered Day records.
// Blank lines are skipped, anything before the first "Day N" heading is dropped,
// and lines that match none of the section labels land in Activities.
// Malformed input degrades to a partial or empty result; it never fails.
func ParseItinerary(text string) []Day {
	days := []Day{}
	var current *Day

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if dayHeadingRe.MatchString(trimmed) {
			if current != nil {
				days = append(days, *current)
			}
			current = &Day{Title: trimmed, Activities: []string{}}
			continue
		}

		if current == nil {
			continue
		}

		matched := false
		for _, label := range sectionLabels {
			if strings.HasPrefix(trimmed, label.prefix) {
				label.assign(current, strings.TrimSpace(strings.TrimPrefix(trimmed, label.prefix)))
				matched = true
				break
			}
		}
		if !matched {
			current.Activities = append(current.Activities, trimmed)
		}
	}

	if current != nil {
		days = append(days, *current)
	}

	return days
}
