package normalize

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Similarity thresholds on the 0-100 token-sort-ratio scale. Menu item names are
// longer and more variable than place or airline names, so they match looser.
const (
	PlaceThreshold = 68
	MenuThreshold  = 65
)

// Match scores the input against each candidate name and returns the index of the
// best single match at or above the threshold. Ties go to the first highest-scoring
// candidate in list order. Returns (-1, false) when nothing clears the threshold.
func Match(input string, names []string, threshold int) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return -1, false
	}

	best := -1
	bestScore := 0
	for i, name := range names {
		score := fuzzy.TokenSortRatio(needle, strings.ToLower(name))
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 || bestScore < threshold {
		return -1, false
	}
	return best, true
}
