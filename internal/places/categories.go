package places

import "strings"

// generalCategoryID is the fallback Foursquare category used when a cuisine
// filter was requested but none of the words mapped.
const generalCategoryID = "13065"

// categoryIDs translates the small fixed cuisine vocabulary into Foursquare
// category IDs. Unknown words are dropped, never an error.
var categoryIDs = map[string]string{
	"italian":    "13236",
	"mexican":    "13303",
	"chinese":    "13145",
	"indian":     "13199",
	"vegetarian": "13377",
	"vegan":      "13377",
	"healthy":    "13065",
	"general":    generalCategoryID,
}

// categoriesParam builds the comma-joined category-ID filter for the given
// cuisine words. An empty input yields an empty filter (no parameter); a
// non-empty input that maps to nothing falls back to the general category.
func categoriesParam(cuisines []string) string {
	if len(cuisines) == 0 {
		return ""
	}
	var ids []string
	for _, cuisine := range cuisines {
		if id, ok := categoryIDs[strings.ToLower(strings.TrimSpace(cuisine))]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return generalCategoryID
	}
	return strings.Join(ids, ",")
}
