package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"restaurant-backend/internal/llm"
	"restaurant-backend/internal/places"
	"restaurant-backend/internal/profiles"
	"restaurant-backend/internal/shared/telemetry"
)

// llmVenueLimit caps how many venues the model ever sees; the rule-based
// fallback still scores the full fetched list.
const llmVenueLimit = 10

// VenueSource abstracts the places client for the service.
type VenueSource interface {
	SearchNearby(ctx context.Context, latitude, longitude float64, cuisines []string) ([]places.Venue, error)
	SearchNear(ctx context.Context, locationName string, cuisines []string) ([]places.Venue, error)
}

// Service orchestrates a suggestion request: health profile, venue search,
// model ranking, rule-based fallback.
type Service struct {
	Profiles profiles.Provider
	Venues   VenueSource
	LLM      llm.Client
}

// NewService constructs a Service.
func NewService(provider profiles.Provider, venues VenueSource, model llm.Client) *Service {
	return &Service{Profiles: provider, Venues: venues, LLM: model}
}

// SuggestNearby returns ranked suggestions for a coordinate pair.
func (s *Service) SuggestNearby(ctx context.Context, userID string, latitude, longitude float64) ([]Suggestion, error) {
	profile, err := s.Profiles.HealthProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch health profile: %w", err)
	}

	venues, err := s.Venues.SearchNearby(ctx, latitude, longitude, profile.Cuisines)
	if err != nil {
		return nil, err
	}

	return s.rank(ctx, profile, venues), nil
}

// SuggestForLocation returns ranked suggestions for a named location.
func (s *Service) SuggestForLocation(ctx context.Context, userID, locationName string) ([]Suggestion, error) {
	profile, err := s.Profiles.HealthProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch health profile: %w", err)
	}

	venues, err := s.Venues.SearchNear(ctx, locationName, profile.Cuisines)
	if err != nil {
		return nil, err
	}

	return s.rank(ctx, profile, venues), nil
}

// rank tries the hosted model first and falls back to the rule-based scorer
// on any model failure. Model failures never surface to the caller.
func (s *Service) rank(ctx context.Context, profile profiles.HealthProfile, venues []places.Venue) []Suggestion {
	if len(venues) == 0 {
		return []Suggestion{}
	}

	ranked, err := s.rankWithModel(ctx, profile, venues)
	if err != nil {
		telemetry.Warn("suggestions.model_fallback", map[string]any{
			"error":  err.Error(),
			"venues": len(venues),
		})
		return rankByRules(profile, venues)
	}
	return ranked
}

func (s *Service) rankWithModel(ctx context.Context, profile profiles.HealthProfile, venues []places.Venue) ([]Suggestion, error) {
	raw, err := s.LLM.RankVenues(ctx, llm.RankInput{
		PrimaryGoal:  profile.PrimaryGoal,
		Restrictions: profile.Restrictions,
		Allergies:    profile.Allergies,
		Cuisines:     profile.Cuisines,
		Venues:       summarizeVenues(venues),
	})
	if err != nil {
		return nil, err
	}
	return parseSuggestions(raw)
}

// parseSuggestions validates the model reply. A reply that is not a JSON
// array, is empty, or has entries without a name or address counts as a
// model failure.
func parseSuggestions(raw json.RawMessage) ([]Suggestion, error) {
	var out []Suggestion
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse model reply: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model reply contained no suggestions")
	}
	for i, sg := range out {
		if strings.TrimSpace(sg.Name) == "" || strings.TrimSpace(sg.Address) == "" {
			return nil, fmt.Errorf("model reply entry %d missing required fields", i)
		}
	}
	return out, nil
}

// summarizeVenues projects the first venues into the compact view shown to
// the model. Only input order decides which venues make the cut.
func summarizeVenues(venues []places.Venue) []llm.VenueSummary {
	limit := len(venues)
	if limit > llmVenueLimit {
		limit = llmVenueLimit
	}

	summaries := make([]llm.VenueSummary, 0, limit)
	for _, v := range venues[:limit] {
		summaries = append(summaries, llm.VenueSummary{
			Name:    v.Name,
			Address: v.Location.FormattedAddress,
			Cuisine: joinCategories(v.Categories),
			Rating:  v.Rating,
			Price:   priceDisplay(v.Price),
			Hours:   hoursDisplay(v.Hours),
		})
	}
	return summaries
}

func priceDisplay(price int) string {
	if price <= 0 {
		return "N/A"
	}
	return strings.Repeat("$", price)
}

func hoursDisplay(hours *places.Hours) string {
	if hours == nil || hours.Display == "" {
		return "Hours not available"
	}
	return hours.Display
}
