package llm

import (
	"encoding/json"
	"strings"

	_ "embed"
)

//go:embed prompts/rank_v1.txt
var rankPromptV1 string

// BuildRankPrompt renders the ranking prompt for the given input.
func BuildRankPrompt(input RankInput) string {
	venues, err := json.MarshalIndent(input.Venues, "", "  ")
	if err != nil {
		venues = []byte("[]")
	}

	replacer := strings.NewReplacer(
		"{{GOAL}}", orDefault(input.PrimaryGoal, "general_health"),
		"{{RESTRICTIONS}}", joinOrDefault(input.Restrictions, "None"),
		"{{ALLERGIES}}", joinOrDefault(input.Allergies, "None"),
		"{{CUISINES}}", joinOrDefault(input.Cuisines, "Any"),
		"{{RESTAURANTS}}", string(venues),
	)
	return replacer.Replace(rankPromptV1)
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

func joinOrDefault(values []string, def string) string {
	if len(values) == 0 {
		return def
	}
	return strings.Join(values, ", ")
}
