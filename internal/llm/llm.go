package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts hosted language models for restaurant ranking. The raw
// reply is returned unparsed; the caller validates its shape and falls back
// to rule-based ranking on any failure.
type Client interface {
	RankVenues(ctx context.Context, input RankInput) (json.RawMessage, error)
}

// VenueSummary is the compact per-venue view shown to the model.
type VenueSummary struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Cuisine string  `json:"cuisine"`
	Rating  float64 `json:"rating"`
	Price   string  `json:"price"`
	Hours   string  `json:"hours"`
}

// RankInput captures the profile and candidate venues for a ranking call.
type RankInput struct {
	PrimaryGoal  string
	Restrictions []string
	Allergies    []string
	Cuisines     []string
	Venues       []VenueSummary
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is wired when no model credentials are configured; every
// call fails so the caller degrades to rule-based ranking.
type PlaceholderClient struct{}

// RankVenues returns ErrNotConfigured.
func (PlaceholderClient) RankVenues(ctx context.Context, input RankInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}
