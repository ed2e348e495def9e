package suggestions

import (
	"sort"
	"strconv"
	"strings"

	"restaurant-backend/internal/places"
	"restaurant-backend/internal/profiles"
)

const maxSuggestions = 5

// scoredCandidate is engine-internal; it is discarded once the top venues
// are projected to Suggestions.
type scoredCandidate struct {
	venue         places.Venue
	score         float64
	justification string
	suggestedDish string
}

// rankByRules is the deterministic fallback ranking policy: a single pass of
// additive score adjustments over every venue, a stable descending sort, and
// a top-five projection. Rules are independent and compound.
func rankByRules(profile profiles.HealthProfile, venues []places.Venue) []Suggestion {
	scored := make([]scoredCandidate, 0, len(venues))
	for _, venue := range venues {
		scored = append(scored, scoreVenue(profile, venue))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := len(scored)
	if top > maxSuggestions {
		top = maxSuggestions
	}

	out := make([]Suggestion, 0, top)
	for _, candidate := range scored[:top] {
		out = append(out, Suggestion{
			Name:          candidate.venue.Name,
			Address:       candidate.venue.Location.FormattedAddress,
			Cuisine:       joinCategories(candidate.venue.Categories),
			Justification: candidate.justification,
			SuggestedDish: candidate.suggestedDish,
		})
	}
	return out
}

func scoreVenue(profile profiles.HealthProfile, venue places.Venue) scoredCandidate {
	candidate := scoredCandidate{
		venue:         venue,
		suggestedDish: "Ask for healthy options",
	}

	if venue.Rating > 0 {
		candidate.score = venue.Rating
		candidate.justification = "Highly rated (" + strconv.FormatFloat(venue.Rating, 'f', -1, 64) + "/5) restaurant"
	} else {
		candidate.score = 3
		candidate.justification = "Popular restaurant"
	}

	goal := strings.ToLower(profile.PrimaryGoal)
	categories := lowerCategoryNames(venue.Categories)
	name := strings.ToLower(venue.Name)

	if strings.Contains(goal, "weight loss") || strings.Contains(goal, "healthy") {
		if anyContains(categories, "salad", "health", "vegetarian") {
			candidate.score += 1
			candidate.justification += " with healthy options perfect for weight management"
			candidate.suggestedDish = "Try their fresh salads or grilled proteins"
		}
	}

	if strings.Contains(goal, "muscle") || strings.Contains(goal, "fitness") {
		if anyContains(categories, "protein", "grill") {
			candidate.score += 1
			candidate.justification += " offering high-protein options for fitness goals"
			candidate.suggestedDish = "Order grilled chicken, fish, or lean meats"
		}
	}

	if contains(profile.Restrictions, profiles.RestrictionVegetarian) || contains(profile.Restrictions, profiles.RestrictionVegan) {
		if anyContains(categories, "vegetarian", "vegan") {
			candidate.score += 1.5
			candidate.justification += " with excellent vegetarian/vegan options"
			candidate.suggestedDish = "Try their plant-based dishes"
		}
	}

	if contains(profile.Allergies, profiles.AllergyNuts) {
		if strings.Contains(name, "bakery") || strings.Contains(name, "dessert") {
			candidate.score -= 0.5
			candidate.justification += " (check for nut-free options)"
		}
	}

	if len(profile.Cuisines) > 0 && matchesCuisine(categories, profile.Cuisines) {
		candidate.score += 0.5
		candidate.justification += " matching your cuisine preferences"
	}

	return candidate
}

func joinCategories(categories []places.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func lowerCategoryNames(categories []places.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, strings.ToLower(c.Name))
	}
	return names
}

func anyContains(values []string, substrings ...string) bool {
	for _, value := range values {
		for _, sub := range substrings {
			if strings.Contains(value, sub) {
				return true
			}
		}
	}
	return false
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func matchesCuisine(categories []string, preferred []string) bool {
	for _, category := range categories {
		for _, pref := range preferred {
			if strings.Contains(category, strings.ToLower(pref)) {
				return true
			}
		}
	}
	return false
}
