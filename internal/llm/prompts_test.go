package llm

import (
	"strings"
	"testing"
)

func TestBuildRankPromptFillsPlaceholders(t *testing.T) {
	prompt := BuildRankPrompt(RankInput{
		PrimaryGoal:  "weight_loss",
		Restrictions: []string{"vegetarian"},
		Allergies:    []string{"nuts"},
		Cuisines:     []string{"italian", "indian"},
		Venues: []VenueSummary{
			{Name: "Roma", Address: "Via 1", Cuisine: "Italian Restaurant", Rating: 4.5, Price: "$$", Hours: "Mon-Sun"},
		},
	})

	if strings.Contains(prompt, "{{") {
		t.Fatalf("unfilled placeholder in prompt:\n%s", prompt)
	}
	for _, want := range []string{"weight_loss", "vegetarian", "nuts", "italian, indian", `"Roma"`} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildRankPromptDefaults(t *testing.T) {
	prompt := BuildRankPrompt(RankInput{})

	for _, want := range []string{
		"Primary Goal: general_health",
		"Dietary Restrictions: None",
		"Allergies: None",
		"Preferred Cuisines: Any",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}
