package profiles

import (
	"context"

	"restaurant-backend/internal/shared/telemetry"
)

// Primary goal values.
const (
	GoalWeightLoss    = "weight_loss"
	GoalMuscleGain    = "muscle_gain"
	GoalGeneralHealth = "general_health"
)

// Dietary restriction values.
const (
	RestrictionVegetarian = "vegetarian"
	RestrictionVegan      = "vegan"
	RestrictionGlutenFree = "gluten_free"
	RestrictionDairyFree  = "dairy_free"
)

// Allergy values.
const (
	AllergyNuts  = "nuts"
	AllergyDairy = "dairy"
	AllergyEggs  = "eggs"
	AllergySoy   = "soy"
	AllergyFish  = "fish"
)

// HealthProfile is a user's dietary and lifestyle profile. It is produced
// fresh per request and never mutated afterwards.
type HealthProfile struct {
	PrimaryGoal  string   `json:"primaryGoal,omitempty"`
	Restrictions []string `json:"restrictions"`
	Allergies    []string `json:"allergies"`
	Cuisines     []string `json:"cuisines"`
}

// Provider returns the health profile for a user.
type Provider interface {
	HealthProfile(ctx context.Context, userID string) (HealthProfile, error)
}

// MockProvider returns a static profile for any user. It stands in for a
// real datastore lookup.
type MockProvider struct{}

// NewMockProvider constructs a MockProvider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// HealthProfile returns the static mock profile.
func (p *MockProvider) HealthProfile(ctx context.Context, userID string) (HealthProfile, error) {
	telemetry.Info("profiles.fetch", map[string]any{"user_id": userID})
	return HealthProfile{
		PrimaryGoal:  GoalWeightLoss,
		Restrictions: []string{RestrictionVegetarian},
		Allergies:    []string{AllergyNuts},
		Cuisines:     []string{"italian", "indian"},
	}, nil
}
