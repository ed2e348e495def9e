package suggestions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"restaurant-backend/internal/llm"
	"restaurant-backend/internal/places"
	"restaurant-backend/internal/profiles"
)

type stubProvider struct {
	profile profiles.HealthProfile
}

func (s stubProvider) HealthProfile(ctx context.Context, userID string) (profiles.HealthProfile, error) {
	return s.profile, nil
}

type stubVenueSource struct {
	venues       []places.Venue
	err          error
	gotCuisines  []string
	gotLocation  string
	nearbyCalled bool
}

func (s *stubVenueSource) SearchNearby(ctx context.Context, latitude, longitude float64, cuisines []string) ([]places.Venue, error) {
	s.nearbyCalled = true
	s.gotCuisines = cuisines
	return s.venues, s.err
}

func (s *stubVenueSource) SearchNear(ctx context.Context, locationName string, cuisines []string) ([]places.Venue, error) {
	s.gotLocation = locationName
	s.gotCuisines = cuisines
	return s.venues, s.err
}

type stubLLM struct {
	raw      json.RawMessage
	err      error
	called   bool
	gotInput llm.RankInput
}

func (s *stubLLM) RankVenues(ctx context.Context, input llm.RankInput) (json.RawMessage, error) {
	s.called = true
	s.gotInput = input
	return s.raw, s.err
}

func TestSuggestNearbyEmptyVenuesSkipsModel(t *testing.T) {
	model := &stubLLM{}
	svc := NewService(stubProvider{}, &stubVenueSource{}, model)

	got, err := svc.SuggestNearby(context.Background(), "user-1", 45.0, -122.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d suggestions", len(got))
	}
	if model.called {
		t.Fatalf("model must not be called for an empty venue list")
	}
}

func TestSuggestNearbyModelFailureFallsBack(t *testing.T) {
	source := &stubVenueSource{venues: []places.Venue{
		venue("Alpha", 4.2, "Restaurant"),
		venue("Beta", 3.9, "Restaurant"),
	}}
	model := &stubLLM{err: errors.New("upstream 500")}
	svc := NewService(stubProvider{}, source, model)

	got, err := svc.SuggestNearby(context.Background(), "user-1", 45.0, -122.0)
	if err != nil {
		t.Fatalf("model failure must not surface: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 fallback suggestions, got %d", len(got))
	}
	if got[0].Name != "Alpha" {
		t.Fatalf("expected rule-based ranking, got %q first", got[0].Name)
	}
}

func TestSuggestNearbyModelReplyReturnedAsIs(t *testing.T) {
	source := &stubVenueSource{venues: []places.Venue{venue("Alpha", 4.2, "Restaurant")}}
	model := &stubLLM{raw: json.RawMessage(`[
		{"name":"Alpha","address":"Alpha Street 1","cuisine":"Restaurant","justification":"Fits your goals","suggestedDish":"Grilled salmon"}
	]`)}
	svc := NewService(stubProvider{}, source, model)

	got, err := svc.SuggestNearby(context.Background(), "user-1", 45.0, -122.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].SuggestedDish != "Grilled salmon" {
		t.Fatalf("expected model suggestions, got %+v", got)
	}
}

func TestSuggestNearbyInvalidModelShapeFallsBack(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not_an_array", `{"name":"Alpha"}`},
		{"empty_array", `[]`},
		{"missing_name", `[{"address":"Somewhere 1"}]`},
		{"missing_address", `[{"name":"Alpha"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := &stubVenueSource{venues: []places.Venue{venue("Alpha", 4.2, "Restaurant")}}
			model := &stubLLM{raw: json.RawMessage(tc.raw)}
			svc := NewService(stubProvider{}, source, model)

			got, err := svc.SuggestNearby(context.Background(), "user-1", 45.0, -122.0)
			if err != nil {
				t.Fatalf("shape mismatch must not surface: %v", err)
			}
			if len(got) != 1 || got[0].Name != "Alpha" {
				t.Fatalf("expected rule-based fallback, got %+v", got)
			}
		})
	}
}

func TestSuggestNearbyModelSeesAtMostTenVenues(t *testing.T) {
	venues := make([]places.Venue, 0, 12)
	for i := 0; i < 12; i++ {
		venues = append(venues, venue("Venue"+string(rune('A'+i)), 3.5, "Restaurant"))
	}
	source := &stubVenueSource{venues: venues}
	model := &stubLLM{err: errors.New("unreachable")}
	svc := NewService(stubProvider{}, source, model)

	got, err := svc.SuggestNearby(context.Background(), "user-1", 45.0, -122.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.gotInput.Venues) != 10 {
		t.Fatalf("expected model to see 10 venues, got %d", len(model.gotInput.Venues))
	}
	// The fallback still scores all 12 but output is capped at five.
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(got))
	}
}

func TestSuggestNearbyPassesProfileCuisines(t *testing.T) {
	source := &stubVenueSource{}
	svc := NewService(stubProvider{profile: profiles.HealthProfile{Cuisines: []string{"italian", "indian"}}}, source, &stubLLM{})

	if _, err := svc.SuggestNearby(context.Background(), "user-1", 45.0, -122.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !source.nearbyCalled {
		t.Fatalf("expected coordinate search")
	}
	if len(source.gotCuisines) != 2 || source.gotCuisines[0] != "italian" {
		t.Fatalf("expected profile cuisines passed through, got %v", source.gotCuisines)
	}
}

func TestSuggestForLocationVenueFetchErrorPropagates(t *testing.T) {
	source := &stubVenueSource{err: places.ErrUnavailable}
	svc := NewService(stubProvider{}, source, &stubLLM{})

	_, err := svc.SuggestForLocation(context.Background(), "user-1", "Hong Kong")
	if !errors.Is(err, places.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if source.gotLocation != "Hong Kong" {
		t.Fatalf("expected location passed through, got %q", source.gotLocation)
	}
}
