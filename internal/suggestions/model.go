package suggestions

// Suggestion is the per-restaurant recommendation returned to the caller.
// It is the only type crossing the service boundary.
type Suggestion struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Cuisine       string `json:"cuisine"`
	Justification string `json:"justification"`
	SuggestedDish string `json:"suggestedDish"`
}
